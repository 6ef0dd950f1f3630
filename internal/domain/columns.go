package domain

// Fixed columns of the history table.
const (
	DateColumn    = "Date"
	OverallColumn = "Overall Score"
)

// ScoreColumn is the history table header for the category score.
func (c Category) ScoreColumn() string {
	return c.Name + " Score"
}

// QuestionColumn is the history table header for a question's raw answer.
func (c Category) QuestionColumn(q Question) string {
	return c.Name + " - " + q.Text
}

// HistoryHeader returns the history table columns in catalog order. A valid catalog
// never produces the same column twice, so each column maps back to one question.
func (c Catalog) HistoryHeader() []string {
	header := []string{DateColumn, OverallColumn}
	for _, category := range c.Categories {
		header = append(header, category.ScoreColumn())
	}
	for _, category := range c.Categories {
		for _, q := range category.Questions {
			header = append(header, category.QuestionColumn(q))
		}
	}
	return header
}
