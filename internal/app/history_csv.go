package app

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"maturity-assessment-service/internal/domain"
)

// NotAvailable marks a score cell for a category without scorable answers.
const NotAvailable = "N/A"

// FormatScore renders a score with two decimals, or N/A when nil.
func FormatScore(v *float64) string {
	if v == nil {
		return NotAvailable
	}
	return strconv.FormatFloat(*v, 'f', 2, 64)
}

// Header returns the export column names in catalog order.
func (h *History) Header() []string {
	return h.catalog.HistoryHeader()
}

// Export writes one CSV row per assessment. Unanswered questions are left empty.
func (h *History) Export(w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(h.Header()); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for _, a := range h.assessments {
		row := []string{a.Date, FormatScore(a.Scores.Overall)}
		for _, category := range h.catalog.Categories {
			row = append(row, FormatScore(a.Scores.Category(category.ID)))
		}
		for _, category := range h.catalog.Categories {
			for _, q := range category.Questions {
				row = append(row, string(a.Responses[q.ID]))
			}
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write row %s: %w", a.Date, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// Import replaces the history with the assessments in a CSV table. The whole table is
// parsed first and the live history only changes when every row is valid. Score columns
// are ignored and recomputed from the answers.
func (h *History) Import(r io.Reader) error {
	candidate, err := h.parse(r)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrImportFailed, err)
	}
	h.replace(candidate)
	return nil
}

func (h *History) parse(r io.Reader) ([]domain.Assessment, error) {
	cr := csv.NewReader(r)
	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, errors.New("empty table")
	}
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}

	columns := make(map[string]int, len(header))
	for i, name := range header {
		name = strings.TrimSpace(strings.TrimPrefix(name, "\ufeff"))
		if name == "" {
			continue
		}
		if _, dup := columns[name]; dup {
			return nil, fmt.Errorf("duplicate column %q", name)
		}
		columns[name] = i
	}
	dateIdx, ok := columns[domain.DateColumn]
	if !ok {
		return nil, errors.New("missing Date column")
	}

	assessments := make([]domain.Assessment, 0)
	for line := 2; ; line++ {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row: %w", err)
		}

		date, err := domain.ParseDate(record[dateIdx])
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}

		responses := make(domain.ResponseSet)
		for _, category := range h.catalog.Categories {
			for _, q := range category.Questions {
				idx, ok := columns[category.QuestionColumn(q)]
				if !ok || strings.TrimSpace(record[idx]) == "" {
					continue
				}
				answer, err := domain.ParseAnswer(q.Type, record[idx])
				if err != nil {
					return nil, fmt.Errorf("line %d, question %s: %w", line, q.ID, err)
				}
				responses[q.ID] = answer
			}
		}

		assessments = append(assessments, domain.Assessment{
			Date:      date,
			Responses: responses,
			Scores:    CalculateScores(h.catalog, responses),
		})
	}
	return assessments, nil
}
