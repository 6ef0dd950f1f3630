package domain

import "errors"

var (
	// ErrSessionNotFound is returned when an assessment session does not exist or expired.
	ErrSessionNotFound = errors.New("assessment session not found")
	// ErrCatalogNotFound indicates the questionnaire could not be loaded.
	ErrCatalogNotFound = errors.New("catalog not found")
	// ErrInvalidCatalog is returned when a catalog definition is inconsistent.
	ErrInvalidCatalog = errors.New("invalid catalog")
	// ErrQuestionNotFound indicates a submitted question ID is not in the catalog.
	ErrQuestionNotFound = errors.New("question not found")
	// ErrInvalidAnswer indicates a value that does not fit the question type.
	ErrInvalidAnswer = errors.New("invalid answer")
	// ErrInvalidDate indicates an assessment date that is not YYYY-MM-DD.
	ErrInvalidDate = errors.New("invalid assessment date")
	// ErrNoResponses is returned when saving an assessment with nothing answered.
	ErrNoResponses = errors.New("no responses to save")
	// ErrImportFailed wraps every history import failure.
	ErrImportFailed = errors.New("history import failed")
)
