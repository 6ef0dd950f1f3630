package app

import (
	"sort"

	"maturity-assessment-service/internal/domain"
)

// TrendThreshold is the minimum absolute score change treated as significant.
const TrendThreshold = 0.5

// ImprovementAnalysis compares the last two assessments in insertion order, not by date.
// Callers that need date order must sort first. Fewer than two assessments yield an
// insufficient report with empty lists.
func ImprovementAnalysis(catalog domain.Catalog, assessments []domain.Assessment) domain.TrendReport {
	report := domain.TrendReport{
		Improved: []domain.CategoryDelta{},
		Declined: []domain.CategoryDelta{},
	}
	if len(assessments) < 2 {
		return report
	}
	report.Sufficient = true

	latest := assessments[len(assessments)-1].Scores
	previous := assessments[len(assessments)-2].Scores

	for _, category := range catalog.Categories {
		l, p := latest.Category(category.ID), previous.Category(category.ID)
		if l == nil || p == nil {
			continue
		}
		d := domain.CategoryDelta{
			CategoryID: category.ID,
			Name:       category.Name,
			Previous:   *p,
			Latest:     *l,
			Delta:      *l - *p,
		}
		switch {
		case d.Delta > TrendThreshold:
			report.Improved = append(report.Improved, d)
		case d.Delta < -TrendThreshold:
			report.Declined = append(report.Declined, d)
		}
	}

	sort.SliceStable(report.Improved, func(i, j int) bool {
		return report.Improved[i].Delta > report.Improved[j].Delta
	})
	sort.SliceStable(report.Declined, func(i, j int) bool {
		return report.Declined[i].Delta < report.Declined[j].Delta
	})
	return report
}
