package app

import "maturity-assessment-service/internal/domain"

// CalculateScores averages scorable answers per category and across the whole catalog.
// "NA", missing and malformed answers are skipped. The overall score is the mean of every
// scorable answer, so categories with more answered questions weigh more.
func CalculateScores(catalog domain.Catalog, responses domain.ResponseSet) domain.ScoreSet {
	scores := domain.ScoreSet{Categories: make(map[string]*float64, len(catalog.Categories))}
	var pool []float64

	for _, category := range catalog.Categories {
		var values []float64
		for _, q := range category.Questions {
			answer, ok := responses[q.ID]
			if !ok {
				continue
			}
			if v, ok := answer.Score(q.Type); ok {
				values = append(values, v)
			}
		}
		scores.Categories[category.ID] = mean(values)
		pool = append(pool, values...)
	}
	scores.Overall = mean(pool)
	return scores
}

func mean(values []float64) *float64 {
	if len(values) == 0 {
		return nil
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	m := sum / float64(len(values))
	return &m
}
