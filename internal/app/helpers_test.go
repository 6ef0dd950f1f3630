package app_test

import (
	"maturity-assessment-service/internal/domain"
)

func testCatalog() domain.Catalog {
	return domain.Catalog{
		Version: "test",
		MaturityLevels: map[int]string{
			0: "Initial", 1: "Managed", 2: "Defined", 3: "Quantitative", 4: "Optimizing", 5: "Excellence",
		},
		Categories: []domain.Category{
			{
				ID:   "people",
				Name: "People",
				Questions: []domain.Question{
					{ID: "p1", Text: "How are skills developed?", Type: domain.QuestionLikert, Weight: 1},
					{ID: "p2", Text: "How is knowledge shared, if at all?", Type: domain.QuestionLikert, Weight: 1},
					{ID: "p3", Text: "Are career paths defined?", Type: domain.QuestionBinary, Weight: 1},
				},
			},
			{
				ID:   "process",
				Name: "Process",
				Questions: []domain.Question{
					{ID: "pr1", Text: "Are processes documented?", Type: domain.QuestionLikert, Weight: 1},
					{ID: "pr2", Text: "Are metrics used?", Type: domain.QuestionBinary, Weight: 1},
				},
			},
		},
	}
}

func ptr(v float64) *float64 {
	return &v
}
