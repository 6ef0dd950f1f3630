package domain

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Answer is a raw answer value: "NA", "0".."5" for likert or "Yes"/"No" for binary.
type Answer string

const (
	AnswerNA  Answer = "NA"
	AnswerYes Answer = "Yes"
	AnswerNo  Answer = "No"
)

// DateLayout is the ISO calendar date format used for assessment dates.
const DateLayout = "2006-01-02"

// Score converts the answer to its numeric value for a question type.
// ok is false for "NA" and for values outside the type's domain.
func (a Answer) Score(t QuestionType) (float64, bool) {
	if a == AnswerNA {
		return 0, false
	}
	switch t {
	case QuestionBinary:
		switch a {
		case AnswerYes:
			return 5, true
		case AnswerNo:
			return 0, true
		}
		return 0, false
	case QuestionLikert:
		n, err := strconv.Atoi(string(a))
		if err != nil || n < 0 || n > 5 {
			return 0, false
		}
		return float64(n), true
	}
	return 0, false
}

// ParseAnswer validates a raw value against the question type and returns its canonical form.
func ParseAnswer(t QuestionType, raw string) (Answer, error) {
	value := strings.TrimSpace(raw)
	if strings.EqualFold(value, string(AnswerNA)) {
		return AnswerNA, nil
	}
	switch t {
	case QuestionBinary:
		switch strings.ToLower(value) {
		case "yes":
			return AnswerYes, nil
		case "no":
			return AnswerNo, nil
		}
	case QuestionLikert:
		if n, err := strconv.Atoi(value); err == nil && n >= 0 && n <= 5 {
			return Answer(strconv.Itoa(n)), nil
		}
	}
	return "", fmt.Errorf("%w: %q for %s question", ErrInvalidAnswer, raw, t)
}

// ParseDate checks that s is a YYYY-MM-DD calendar date.
func ParseDate(s string) (string, error) {
	d, err := time.Parse(DateLayout, strings.TrimSpace(s))
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	return d.Format(DateLayout), nil
}
