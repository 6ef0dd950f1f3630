package app

import (
	"context"
	"fmt"
	"io"

	"github.com/google/uuid"
	"maturity-assessment-service/internal/domain"
)

// SessionRepository abstracts how assessment sessions are stored (in-memory, Redis, etc).
type SessionRepository interface {
	Add(ctx context.Context, session *Session) error
	Get(ctx context.Context, sessionID string) (*Session, error)
	Save(ctx context.Context, session *Session) error
	Delete(ctx context.Context, sessionID string) error
}

// CatalogRepository loads the questionnaire (from cache/backing store).
type CatalogRepository interface {
	GetCatalog(ctx context.Context) (domain.Catalog, error)
}

// AssessmentService contains the assessment use cases exposed to the presentation layer.
type AssessmentService struct {
	sessions SessionRepository
	catalogs CatalogRepository
	newID    func() string
}

func NewAssessmentService(sessions SessionRepository, catalogs CatalogRepository) *AssessmentService {
	return &AssessmentService{sessions: sessions, catalogs: catalogs, newID: uuid.NewString}
}

// Catalog returns the questionnaire currently in use.
func (s *AssessmentService) Catalog(ctx context.Context) (domain.Catalog, error) {
	return s.catalogs.GetCatalog(ctx)
}

// CreateSession starts an empty assessment dated today.
func (s *AssessmentService) CreateSession(ctx context.Context) (SessionView, error) {
	catalog, err := s.catalogs.GetCatalog(ctx)
	if err != nil {
		return SessionView{}, err
	}
	session := NewSession(s.newID(), catalog)
	if err := s.sessions.Add(ctx, session); err != nil {
		return SessionView{}, fmt.Errorf("add session: %w", err)
	}
	return session.view(), nil
}

// Session returns a summary of the session state.
func (s *AssessmentService) Session(ctx context.Context, sessionID string) (SessionView, error) {
	session, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return SessionView{}, err
	}
	return session.view(), nil
}

// SetAnswer validates and records an answer, returning the recalculated report.
func (s *AssessmentService) SetAnswer(ctx context.Context, sessionID, questionID, value string) (domain.ScoreReport, error) {
	catalog, err := s.catalogs.GetCatalog(ctx)
	if err != nil {
		return domain.ScoreReport{}, err
	}
	q, _, ok := catalog.Question(questionID)
	if !ok {
		return domain.ScoreReport{}, fmt.Errorf("%w: %s", domain.ErrQuestionNotFound, questionID)
	}
	answer, err := domain.ParseAnswer(q.Type, value)
	if err != nil {
		return domain.ScoreReport{}, err
	}

	session, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return domain.ScoreReport{}, err
	}
	before := session.Snapshot()
	report := session.setAnswer(questionID, answer)
	if err := s.persist(ctx, session, before); err != nil {
		return domain.ScoreReport{}, err
	}
	return report, nil
}

// SetDate changes the assessment date of the in-progress assessment.
func (s *AssessmentService) SetDate(ctx context.Context, sessionID, date string) (SessionView, error) {
	parsed, err := domain.ParseDate(date)
	if err != nil {
		return SessionView{}, err
	}
	session, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return SessionView{}, err
	}
	before := session.Snapshot()
	session.setDate(parsed)
	if err := s.persist(ctx, session, before); err != nil {
		return SessionView{}, err
	}
	return session.view(), nil
}

// CurrentScores scores the in-progress answers without saving them.
func (s *AssessmentService) CurrentScores(ctx context.Context, sessionID string) (domain.ScoreReport, error) {
	session, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return domain.ScoreReport{}, err
	}
	return session.report(), nil
}

// SaveAssessment appends the current answers to history and starts a new assessment.
func (s *AssessmentService) SaveAssessment(ctx context.Context, sessionID string) (domain.Assessment, error) {
	session, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return domain.Assessment{}, err
	}
	before := session.Snapshot()
	saved, err := session.save()
	if err != nil {
		return domain.Assessment{}, err
	}
	if err := s.persist(ctx, session, before); err != nil {
		return domain.Assessment{}, err
	}
	return saved, nil
}

// ClearAssessment discards the in-progress answers and resets the date to today.
func (s *AssessmentService) ClearAssessment(ctx context.Context, sessionID string) (domain.ScoreReport, error) {
	session, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return domain.ScoreReport{}, err
	}
	before := session.Snapshot()
	report := session.clear()
	if err := s.persist(ctx, session, before); err != nil {
		return domain.ScoreReport{}, err
	}
	return report, nil
}

// History lists finalized assessments in insertion order.
func (s *AssessmentService) History(ctx context.Context, sessionID string) ([]domain.Assessment, error) {
	session, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return session.assessments(), nil
}

// Series lists assessment scores ordered by date for charting.
func (s *AssessmentService) Series(ctx context.Context, sessionID string) ([]domain.SeriesPoint, error) {
	session, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return session.series(), nil
}

// ExportHistory writes the history as CSV.
func (s *AssessmentService) ExportHistory(ctx context.Context, sessionID string, w io.Writer) error {
	session, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return err
	}
	return session.exportHistory(w)
}

// ImportHistory replaces the history with a CSV table. On failure the previous history is kept.
func (s *AssessmentService) ImportHistory(ctx context.Context, sessionID string, r io.Reader) (int, error) {
	session, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return 0, err
	}
	before := session.Snapshot()
	n, err := session.importHistory(r)
	if err != nil {
		return 0, err
	}
	if err := s.persist(ctx, session, before); err != nil {
		return 0, err
	}
	return n, nil
}

// Trend compares the two most recently entered assessments.
func (s *AssessmentService) Trend(ctx context.Context, sessionID string) (domain.TrendReport, error) {
	session, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return domain.TrendReport{}, err
	}
	return session.trend(), nil
}

// Subscribe returns a channel that receives score reports whenever the session's answers change.
// The caller must invoke the returned cancel function to avoid leaks.
func (s *AssessmentService) Subscribe(ctx context.Context, sessionID string) (<-chan domain.ScoreReport, func(), error) {
	session, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, nil, err
	}
	ch, cancel := session.subscribe()
	return ch, cancel, nil
}

// EndSession drops a session and its history.
func (s *AssessmentService) EndSession(ctx context.Context, sessionID string) error {
	return s.sessions.Delete(ctx, sessionID)
}

// persist stores a mutated session. When the store rejects it the session is rolled
// back to before, so the live state never runs ahead of what was stored and the
// caller can retry the same operation.
func (s *AssessmentService) persist(ctx context.Context, session *Session, before SessionSnapshot) error {
	if err := s.sessions.Save(ctx, session); err != nil {
		session.rollback(before)
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}
