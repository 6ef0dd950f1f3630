package app_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"maturity-assessment-service/internal/app"
	"maturity-assessment-service/internal/domain"
)

func TestStrengthWeakness(t *testing.T) {
	responses := domain.ResponseSet{"p1": "4", "p2": "1", "p3": "Yes", "pr1": "3", "pr2": "No"}
	strengths, weaknesses := app.StrengthWeakness(testCatalog(), responses)

	require.Len(t, strengths, 2)
	assert.Equal(t, "p3", strengths[0].QuestionID)
	assert.Equal(t, 5.0, strengths[0].Score)
	assert.Equal(t, "p1", strengths[1].QuestionID)

	require.Len(t, weaknesses, 2)
	assert.Equal(t, "pr2", weaknesses[0].QuestionID)
	assert.Equal(t, "Process", weaknesses[0].CategoryName)
	assert.Equal(t, "p2", weaknesses[1].QuestionID)
}

func TestResponseDistributionSkipsNA(t *testing.T) {
	dist := app.ResponseDistribution(testCatalog(), domain.ResponseSet{"pr1": "2", "p1": "NA", "p2": "3"})
	require.Len(t, dist, 2)
	assert.Equal(t, "p2", dist[0].QuestionID)
	assert.Equal(t, "pr1", dist[1].QuestionID)
	assert.Equal(t, "Are processes documented?", dist[1].QuestionText)
}

func TestMaturity(t *testing.T) {
	_, ok := app.Maturity(testCatalog(), nil)
	assert.False(t, ok)

	m, ok := app.Maturity(testCatalog(), ptr(3.99))
	require.True(t, ok)
	assert.Equal(t, 3, m.Level)
	assert.Equal(t, "Quantitative", m.Description)

	m, _ = app.Maturity(testCatalog(), ptr(5))
	assert.Equal(t, 5, m.Level)
}

func TestBuildScoreReport(t *testing.T) {
	report := app.BuildScoreReport(testCatalog(), "2024-04-01", domain.ResponseSet{"p1": "NA"})
	assert.Equal(t, "2024-04-01", report.Date)
	assert.Nil(t, report.Scores.Overall)
	assert.Nil(t, report.Maturity)
	assert.Empty(t, report.Distribution)

	report = app.BuildScoreReport(testCatalog(), "2024-04-01", domain.ResponseSet{"p1": "2", "p2": "4"})
	require.NotNil(t, report.Maturity)
	assert.Equal(t, 3, report.Maturity.Level)
	assert.Len(t, report.Strengths, 1)
	assert.Len(t, report.Weaknesses, 1)
}
