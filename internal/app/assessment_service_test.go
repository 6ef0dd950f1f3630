package app_test

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"maturity-assessment-service/internal/app"
	"maturity-assessment-service/internal/catalog"
	"maturity-assessment-service/internal/domain"
	"maturity-assessment-service/internal/infra/memory"
)

func TestAnswerAndSaveFlow(t *testing.T) {
	ctx := context.Background()
	service := newTestService()

	view, err := service.CreateSession(ctx)
	require.NoError(t, err)
	assert.NotEmpty(t, view.ID)
	assert.Equal(t, time.Now().Format(domain.DateLayout), view.Date)

	_, err = service.SetDate(ctx, view.ID, "2024-01-10")
	require.NoError(t, err)
	for q, v := range map[string]string{"p1": "3", "p2": "5", "p3": "NA", "pr1": "2"} {
		_, err := service.SetAnswer(ctx, view.ID, q, v)
		require.NoError(t, err, q)
	}

	report, err := service.CurrentScores(ctx, view.ID)
	require.NoError(t, err)
	assert.Equal(t, 4.0, *report.Scores.Category("people"))
	require.NotNil(t, report.Maturity)
	assert.Equal(t, 3, report.Maturity.Level)

	saved, err := service.SaveAssessment(ctx, view.ID)
	require.NoError(t, err)
	assert.Equal(t, "2024-01-10", saved.Date)
	assert.Len(t, saved.Responses, 4)

	after, err := service.Session(ctx, view.ID)
	require.NoError(t, err)
	assert.Empty(t, after.Responses)
	assert.Equal(t, 1, after.Assessments)
	assert.Equal(t, time.Now().Format(domain.DateLayout), after.Date)
}

func TestSaveRequiresResponses(t *testing.T) {
	ctx := context.Background()
	service := newTestService()
	view, _ := service.CreateSession(ctx)

	_, err := service.SaveAssessment(ctx, view.ID)
	assert.ErrorIs(t, err, domain.ErrNoResponses)
}

func TestSetAnswerValidation(t *testing.T) {
	ctx := context.Background()
	service := newTestService()
	view, _ := service.CreateSession(ctx)

	_, err := service.SetAnswer(ctx, view.ID, "nope", "3")
	assert.ErrorIs(t, err, domain.ErrQuestionNotFound)
	_, err = service.SetAnswer(ctx, view.ID, "p1", "Yes")
	assert.ErrorIs(t, err, domain.ErrInvalidAnswer)
	_, err = service.SetAnswer(ctx, "missing", "p1", "3")
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
	_, err = service.SetDate(ctx, view.ID, "tomorrow")
	assert.ErrorIs(t, err, domain.ErrInvalidDate)
}

func TestTrendAfterTwoAssessments(t *testing.T) {
	ctx := context.Background()
	service := newTestService()
	view, _ := service.CreateSession(ctx)

	trend, err := service.Trend(ctx, view.ID)
	require.NoError(t, err)
	assert.False(t, trend.Sufficient)

	saveWith(t, service, view.ID, "2024-01-01", map[string]string{"p1": "2", "pr1": "3"})
	saveWith(t, service, view.ID, "2024-02-01", map[string]string{"p1": "3", "pr1": "3"})

	trend, err = service.Trend(ctx, view.ID)
	require.NoError(t, err)
	assert.True(t, trend.Sufficient)
	require.Len(t, trend.Improved, 1)
	assert.Equal(t, "people", trend.Improved[0].CategoryID)
	assert.Empty(t, trend.Declined)
}

func TestExportImportThroughService(t *testing.T) {
	ctx := context.Background()
	service := newTestService()
	source, _ := service.CreateSession(ctx)
	saveWith(t, service, source.ID, "2024-01-01", map[string]string{"p1": "2", "p4": "Yes"})
	saveWith(t, service, source.ID, "2024-02-01", map[string]string{"p1": "4", "p4": "No"})

	var buf bytes.Buffer
	require.NoError(t, service.ExportHistory(ctx, source.ID, &buf))

	target, _ := service.CreateSession(ctx)
	n, err := service.ImportHistory(ctx, target.ID, &buf)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	want, _ := service.History(ctx, source.ID)
	got, _ := service.History(ctx, target.ID)
	assert.Equal(t, want, got)

	_, err = service.ImportHistory(ctx, target.ID, strings.NewReader("Date\nnot-a-date\n"))
	assert.ErrorIs(t, err, domain.ErrImportFailed)
	kept, _ := service.History(ctx, target.ID)
	assert.Len(t, kept, 2)
}

func TestSubscribeReceivesScoreUpdates(t *testing.T) {
	ctx := context.Background()
	service := newTestService()
	view, _ := service.CreateSession(ctx)

	ch, cancel, err := service.Subscribe(ctx, view.ID)
	require.NoError(t, err)
	defer cancel()

	initial := <-ch
	assert.Nil(t, initial.Scores.Overall)

	_, err = service.SetAnswer(ctx, view.ID, "p1", "4")
	require.NoError(t, err)
	update := <-ch
	require.NotNil(t, update.Scores.Overall)
	assert.Equal(t, 4.0, *update.Scores.Overall)
}

func TestSubscribeNeverEndsOnStaleReport(t *testing.T) {
	ctx := context.Background()
	service := newTestService()

	for i := 0; i < 50; i++ {
		view, _ := service.CreateSession(ctx)
		_, err := service.SetAnswer(ctx, view.ID, "p1", "1")
		require.NoError(t, err)

		var wg sync.WaitGroup
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = service.SetAnswer(ctx, view.ID, "p1", "5")
		}()
		ch, cancel, err := service.Subscribe(ctx, view.ID)
		require.NoError(t, err)
		wg.Wait()

		last := drain(ch)
		cancel()
		require.NotNil(t, last.Scores.Overall)
		assert.Equal(t, 5.0, *last.Scores.Overall, "iteration %d", i)
	}
}

func TestFailedPersistRollsBackSession(t *testing.T) {
	ctx := context.Background()
	store := &flakySessionStore{SessionStore: memory.NewSessionStore()}
	service := app.NewAssessmentService(store, memory.NewCatalogRepository(catalog.NewStaticLoader(catalog.Default()), time.Minute))
	view, _ := service.CreateSession(ctx)

	_, err := service.SetAnswer(ctx, view.ID, "p1", "3")
	require.NoError(t, err)

	store.failSaves = true
	_, err = service.SaveAssessment(ctx, view.ID)
	require.ErrorIs(t, err, errStoreDown)

	after, _ := service.Session(ctx, view.ID)
	assert.Equal(t, domain.ResponseSet{"p1": "3"}, after.Responses)
	assert.Equal(t, 0, after.Assessments)

	_, err = service.SetAnswer(ctx, view.ID, "p2", "5")
	require.ErrorIs(t, err, errStoreDown)
	report, _ := service.CurrentScores(ctx, view.ID)
	assert.Equal(t, 3.0, *report.Scores.Overall)

	_, err = service.ClearAssessment(ctx, view.ID)
	require.ErrorIs(t, err, errStoreDown)
	after, _ = service.Session(ctx, view.ID)
	assert.Len(t, after.Responses, 1)

	// the same save succeeds once the store recovers
	store.failSaves = false
	saved, err := service.SaveAssessment(ctx, view.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.ResponseSet{"p1": "3"}, saved.Responses)
}

func TestSessionsAreIndependent(t *testing.T) {
	ctx := context.Background()
	service := newTestService()
	a, _ := service.CreateSession(ctx)
	b, _ := service.CreateSession(ctx)

	_, _ = service.SetAnswer(ctx, a.ID, "p1", "5")
	report, _ := service.CurrentScores(ctx, b.ID)
	assert.Nil(t, report.Scores.Overall)

	require.NoError(t, service.EndSession(ctx, a.ID))
	_, err := service.Session(ctx, a.ID)
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
}

var errStoreDown = errors.New("session store unavailable")

// flakySessionStore fails Save on demand.
type flakySessionStore struct {
	*memory.SessionStore
	failSaves bool
}

func (s *flakySessionStore) Save(ctx context.Context, session *app.Session) error {
	if s.failSaves {
		return errStoreDown
	}
	return s.SessionStore.Save(ctx, session)
}

func drain(ch <-chan domain.ScoreReport) domain.ScoreReport {
	var last domain.ScoreReport
	for {
		select {
		case report := <-ch:
			last = report
		default:
			return last
		}
	}
}

func saveWith(t *testing.T, service *app.AssessmentService, sessionID, date string, answers map[string]string) {
	t.Helper()
	ctx := context.Background()
	_, err := service.SetDate(ctx, sessionID, date)
	require.NoError(t, err)
	for q, v := range answers {
		_, err := service.SetAnswer(ctx, sessionID, q, v)
		require.NoError(t, err, q)
	}
	_, err = service.SaveAssessment(ctx, sessionID)
	require.NoError(t, err)
}

func newTestService() *app.AssessmentService {
	sessionStore := memory.NewSessionStore()
	catalogRepo := memory.NewCatalogRepository(catalog.NewStaticLoader(catalog.Default()), 5*time.Minute)
	return app.NewAssessmentService(sessionStore, catalogRepo)
}
