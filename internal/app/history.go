package app

import (
	"sort"

	"maturity-assessment-service/internal/domain"
)

// History is the ordered list of finalized assessments for one session.
// Insertion order is entry order and is not necessarily sorted by date.
type History struct {
	catalog     domain.Catalog
	assessments []domain.Assessment
}

func NewHistory(catalog domain.Catalog) *History {
	return &History{catalog: catalog}
}

// RestoreHistory rebuilds a history from stored assessments, e.g. a session snapshot.
func RestoreHistory(catalog domain.Catalog, assessments []domain.Assessment) *History {
	h := NewHistory(catalog)
	for _, a := range assessments {
		h.Append(a.Responses, a.Scores, a.Date)
	}
	return h
}

// Append stores a copy of responses so later edits to the live set do not leak into history.
func (h *History) Append(responses domain.ResponseSet, scores domain.ScoreSet, date string) {
	h.assessments = append(h.assessments, domain.Assessment{
		Date:      date,
		Responses: responses.Clone(),
		Scores:    cloneScores(scores),
	})
}

// List returns the assessments in insertion order.
func (h *History) List() []domain.Assessment {
	out := make([]domain.Assessment, len(h.assessments))
	copy(out, h.assessments)
	return out
}

func (h *History) Len() int {
	return len(h.assessments)
}

// Series returns per-assessment scores ordered by date; entries with equal dates keep
// their insertion order.
func (h *History) Series() []domain.SeriesPoint {
	points := make([]domain.SeriesPoint, 0, len(h.assessments))
	for _, a := range h.assessments {
		s := cloneScores(a.Scores)
		points = append(points, domain.SeriesPoint{
			Date:       a.Date,
			Overall:    s.Overall,
			Categories: s.Categories,
		})
	}
	sort.SliceStable(points, func(i, j int) bool {
		return points[i].Date < points[j].Date
	})
	return points
}

func (h *History) replace(assessments []domain.Assessment) {
	h.assessments = assessments
}

func cloneScores(s domain.ScoreSet) domain.ScoreSet {
	out := domain.ScoreSet{Overall: clonePtr(s.Overall)}
	if s.Categories != nil {
		out.Categories = make(map[string]*float64, len(s.Categories))
		for k, v := range s.Categories {
			out.Categories[k] = clonePtr(v)
		}
	}
	return out
}

func clonePtr(v *float64) *float64 {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}
