package app

import (
	"io"
	"sync"
	"time"

	"maturity-assessment-service/internal/domain"
)

// Session owns the state of one user's assessment work: the in-progress answers, the
// assessment date and the finalized history. Sessions never share state.
type Session struct {
	id        string
	createdAt time.Time
	now       func() time.Time
	catalog   domain.Catalog

	mu          sync.RWMutex
	date        string
	responses   domain.ResponseSet
	history     *History
	subscribers map[chan domain.ScoreReport]struct{}
}

// SessionSnapshot is the serializable form of a session.
type SessionSnapshot struct {
	ID        string              `json:"id"`
	CreatedAt time.Time           `json:"createdAt"`
	Date      string              `json:"date"`
	Responses domain.ResponseSet  `json:"responses"`
	History   []domain.Assessment `json:"history"`
}

// SessionView is a read-only summary returned to callers.
type SessionView struct {
	ID             string             `json:"id"`
	Date           string             `json:"date"`
	Responses      domain.ResponseSet `json:"responses"`
	Assessments    int                `json:"assessments"`
	CatalogVersion string             `json:"catalogVersion"`
	CreatedAt      time.Time          `json:"createdAt"`
}

func NewSession(id string, catalog domain.Catalog) *Session {
	return NewSessionWithClock(id, catalog, time.Now)
}

// NewSessionWithClock allows deterministic dates in tests.
func NewSessionWithClock(id string, catalog domain.Catalog, now func() time.Time) *Session {
	return &Session{
		id:          id,
		createdAt:   now(),
		now:         now,
		catalog:     catalog,
		date:        now().Format(domain.DateLayout),
		responses:   make(domain.ResponseSet),
		history:     NewHistory(catalog),
		subscribers: make(map[chan domain.ScoreReport]struct{}),
	}
}

// RestoreSession rebuilds a session from a snapshot.
func RestoreSession(snap SessionSnapshot, catalog domain.Catalog) *Session {
	s := NewSession(snap.ID, catalog)
	s.createdAt = snap.CreatedAt
	if snap.Date != "" {
		s.date = snap.Date
	}
	if snap.Responses != nil {
		s.responses = snap.Responses.Clone()
	}
	s.history = RestoreHistory(catalog, snap.History)
	return s
}

func (s *Session) ID() string {
	return s.id
}

// Snapshot captures the current state for persistence.
func (s *Session) Snapshot() SessionSnapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return SessionSnapshot{
		ID:        s.id,
		CreatedAt: s.createdAt,
		Date:      s.date,
		Responses: s.responses.Clone(),
		History:   s.history.List(),
	}
}

func (s *Session) view() SessionView {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return SessionView{
		ID:             s.id,
		Date:           s.date,
		Responses:      s.responses.Clone(),
		Assessments:    s.history.Len(),
		CatalogVersion: s.catalog.Version,
		CreatedAt:      s.createdAt,
	}
}

func (s *Session) setAnswer(questionID string, answer domain.Answer) domain.ScoreReport {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.responses[questionID] = answer
	return s.broadcastLocked()
}

func (s *Session) setDate(date string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.date = date
}

func (s *Session) clear() domain.ScoreReport {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.clearLocked()
	return s.broadcastLocked()
}

func (s *Session) clearLocked() {
	s.responses = make(domain.ResponseSet)
	s.date = s.now().Format(domain.DateLayout)
}

// save finalizes the current responses into history and starts a fresh assessment.
func (s *Session) save() (domain.Assessment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.responses) == 0 {
		return domain.Assessment{}, domain.ErrNoResponses
	}
	scores := CalculateScores(s.catalog, s.responses)
	s.history.Append(s.responses, scores, s.date)
	saved := s.history.List()[s.history.Len()-1]
	s.clearLocked()
	s.broadcastLocked()
	return saved, nil
}

// rollback restores the state captured by Snapshot and tells subscribers about it.
func (s *Session) rollback(snap SessionSnapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.date = snap.Date
	s.responses = snap.Responses.Clone()
	s.history = RestoreHistory(s.catalog, snap.History)
	s.broadcastLocked()
}

func (s *Session) report() domain.ScoreReport {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.reportLocked()
}

func (s *Session) reportLocked() domain.ScoreReport {
	return BuildScoreReport(s.catalog, s.date, s.responses)
}

func (s *Session) assessments() []domain.Assessment {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.history.List()
}

func (s *Session) series() []domain.SeriesPoint {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.history.Series()
}

func (s *Session) exportHistory(w io.Writer) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.history.Export(w)
}

func (s *Session) importHistory(r io.Reader) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.history.Import(r); err != nil {
		return 0, err
	}
	return s.history.Len(), nil
}

func (s *Session) trend() domain.TrendReport {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return ImprovementAnalysis(s.catalog, s.history.List())
}

func (s *Session) subscribe() (<-chan domain.ScoreReport, func()) {
	ch := make(chan domain.ScoreReport, 8)

	// the initial report is queued before any broadcast can reach the channel
	s.mu.Lock()
	s.subscribers[ch] = struct{}{}
	ch <- s.reportLocked()
	s.mu.Unlock()

	cancel := func() {
		s.mu.Lock()
		if _, ok := s.subscribers[ch]; ok {
			delete(s.subscribers, ch)
			close(ch)
		}
		s.mu.Unlock()
	}
	return ch, cancel
}

func (s *Session) broadcastLocked() domain.ScoreReport {
	report := s.reportLocked()
	for ch := range s.subscribers {
		select {
		case ch <- report:
		default:
			// drop the stale update so a slow reader never blocks writers
			select {
			case <-ch:
			default:
			}
			ch <- report
		}
	}
	return report
}
