package app

import (
	"sort"

	"maturity-assessment-service/internal/domain"
)

const (
	strengthMin = 4
	weaknessMax = 2
)

// ResponseDistribution lists every scorable answer in catalog order.
func ResponseDistribution(catalog domain.Catalog, responses domain.ResponseSet) []domain.QuestionScore {
	out := make([]domain.QuestionScore, 0, len(responses))
	for _, category := range catalog.Categories {
		for _, q := range category.Questions {
			answer, ok := responses[q.ID]
			if !ok {
				continue
			}
			v, ok := answer.Score(q.Type)
			if !ok {
				continue
			}
			out = append(out, domain.QuestionScore{
				CategoryID:   category.ID,
				CategoryName: category.Name,
				QuestionID:   q.ID,
				QuestionText: q.Text,
				Score:        v,
			})
		}
	}
	return out
}

// StrengthWeakness splits scored answers into strengths (>= 4, highest first) and
// weaknesses (<= 2, lowest first).
func StrengthWeakness(catalog domain.Catalog, responses domain.ResponseSet) (strengths, weaknesses []domain.QuestionScore) {
	strengths = []domain.QuestionScore{}
	weaknesses = []domain.QuestionScore{}
	for _, qs := range ResponseDistribution(catalog, responses) {
		switch {
		case qs.Score >= strengthMin:
			strengths = append(strengths, qs)
		case qs.Score <= weaknessMax:
			weaknesses = append(weaknesses, qs)
		}
	}
	sort.SliceStable(strengths, func(i, j int) bool { return strengths[i].Score > strengths[j].Score })
	sort.SliceStable(weaknesses, func(i, j int) bool { return weaknesses[i].Score < weaknesses[j].Score })
	return strengths, weaknesses
}

// Maturity maps an overall score to its truncated level and description.
func Maturity(catalog domain.Catalog, overall *float64) (domain.MaturityLevel, bool) {
	if overall == nil {
		return domain.MaturityLevel{}, false
	}
	level := int(*overall)
	if level < 0 {
		level = 0
	}
	if level > 5 {
		level = 5
	}
	return domain.MaturityLevel{Level: level, Description: catalog.MaturityLevels[level]}, true
}

// BuildScoreReport assembles everything the rendering layer shows for a response set.
func BuildScoreReport(catalog domain.Catalog, date string, responses domain.ResponseSet) domain.ScoreReport {
	scores := CalculateScores(catalog, responses)
	strengths, weaknesses := StrengthWeakness(catalog, responses)
	report := domain.ScoreReport{
		Date:         date,
		Scores:       scores,
		Strengths:    strengths,
		Weaknesses:   weaknesses,
		Distribution: ResponseDistribution(catalog, responses),
	}
	if m, ok := Maturity(catalog, scores.Overall); ok {
		report.Maturity = &m
	}
	return report
}
