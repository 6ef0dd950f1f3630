package domain

// QuestionType distinguishes how an answer is collected and scored.
type QuestionType string

const (
	QuestionLikert QuestionType = "likert"
	QuestionBinary QuestionType = "binary"
)

// Question is a single catalog entry. Weight is reserved and currently unused by scoring.
type Question struct {
	ID            string            `json:"id" yaml:"id"`
	Text          string            `json:"text" yaml:"text"`
	Type          QuestionType      `json:"type" yaml:"type"`
	Weight        float64           `json:"weight" yaml:"weight"`
	MaturityHints map[string]string `json:"maturityHints,omitempty" yaml:"maturity_hints"`
}

// Category groups related questions.
type Category struct {
	ID          string     `json:"id" yaml:"id"`
	Name        string     `json:"name" yaml:"name"`
	Description string     `json:"description" yaml:"description"`
	Questions   []Question `json:"questions" yaml:"questions"`
}

// Catalog is the static questionnaire definition consumed at startup.
type Catalog struct {
	Version        string         `json:"version" yaml:"version"`
	Categories     []Category     `json:"categories" yaml:"categories"`
	MaturityLevels map[int]string `json:"maturityLevels" yaml:"maturity_levels"`
}

// Question returns the question with the given id and the category that owns it.
func (c Catalog) Question(id string) (Question, Category, bool) {
	for _, category := range c.Categories {
		for _, q := range category.Questions {
			if q.ID == id {
				return q, category, true
			}
		}
	}
	return Question{}, Category{}, false
}

// QuestionIDs lists every question id in catalog order.
func (c Catalog) QuestionIDs() []string {
	ids := make([]string, 0)
	for _, category := range c.Categories {
		for _, q := range category.Questions {
			ids = append(ids, q.ID)
		}
	}
	return ids
}

// ResponseSet maps question ids to raw answers.
type ResponseSet map[string]Answer

// Clone returns an independent copy of the set.
func (r ResponseSet) Clone() ResponseSet {
	out := make(ResponseSet, len(r))
	for k, v := range r {
		out[k] = v
	}
	return out
}

// ScoreSet holds per-category and overall scores. A nil score means no scorable answers.
type ScoreSet struct {
	Overall    *float64            `json:"overall"`
	Categories map[string]*float64 `json:"categories"`
}

// Category returns the score for a category id, nil when missing or unscored.
func (s ScoreSet) Category(id string) *float64 {
	if s.Categories == nil {
		return nil
	}
	return s.Categories[id]
}

// Assessment is one finalized, dated snapshot of responses and their computed scores.
type Assessment struct {
	Date      string      `json:"date"`
	Responses ResponseSet `json:"responses"`
	Scores    ScoreSet    `json:"scores"`
}

// CategoryDelta records a score change for one category between two assessments.
type CategoryDelta struct {
	CategoryID string  `json:"categoryId"`
	Name       string  `json:"name"`
	Previous   float64 `json:"previous"`
	Latest     float64 `json:"latest"`
	Delta      float64 `json:"delta"`
}

// TrendReport is the outcome of comparing the two newest assessments.
type TrendReport struct {
	Sufficient bool            `json:"sufficient"`
	Improved   []CategoryDelta `json:"improved"`
	Declined   []CategoryDelta `json:"declined"`
}

// QuestionScore is a scored answer together with its display context.
type QuestionScore struct {
	CategoryID   string  `json:"categoryId"`
	CategoryName string  `json:"categoryName"`
	QuestionID   string  `json:"questionId"`
	QuestionText string  `json:"questionText"`
	Score        float64 `json:"score"`
}

// MaturityLevel interprets an overall score.
type MaturityLevel struct {
	Level       int    `json:"level"`
	Description string `json:"description"`
}

// ScoreReport is what the rendering layer needs to present the current assessment.
type ScoreReport struct {
	Date         string          `json:"date"`
	Scores       ScoreSet        `json:"scores"`
	Maturity     *MaturityLevel  `json:"maturity"`
	Strengths    []QuestionScore `json:"strengths"`
	Weaknesses   []QuestionScore `json:"weaknesses"`
	Distribution []QuestionScore `json:"distribution"`
}

// SeriesPoint is one assessment's scores, used for time-ordered charts.
type SeriesPoint struct {
	Date       string              `json:"date"`
	Overall    *float64            `json:"overall"`
	Categories map[string]*float64 `json:"categories"`
}
