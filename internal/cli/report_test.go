package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"maturity-assessment-service/internal/app"
	"maturity-assessment-service/internal/catalog"
	"maturity-assessment-service/internal/domain"
)

func exportedHistory(t *testing.T) string {
	t.Helper()
	c := catalog.Default()
	history := app.NewHistory(c)

	first := domain.ResponseSet{"p1": "2", "p2": "2", "pr1": "3"}
	history.Append(first, app.CalculateScores(c, first), "2024-01-01")
	second := domain.ResponseSet{"p1": "4", "p2": "4", "pr1": "1"}
	history.Append(second, app.CalculateScores(c, second), "2024-06-01")

	var buf bytes.Buffer
	require.NoError(t, history.Export(&buf))
	return buf.String()
}

func TestWriteReportRendersHistoryAndTrend(t *testing.T) {
	var out bytes.Buffer
	err := writeReport(&out, catalog.Default(), strings.NewReader(exportedHistory(t)))
	require.NoError(t, err)

	text := out.String()
	assert.Contains(t, text, "ASSESSMENT HISTORY")
	assert.Contains(t, text, "2024-01-01")
	assert.Contains(t, text, "2024-06-01")
	assert.Contains(t, text, "N/A")
	assert.Contains(t, text, "Latest maturity: level 3")
	assert.Contains(t, text, "▲ People +2.00")
	assert.Contains(t, text, "▼ Process -2.00")
}

func TestWriteReportSingleAssessment(t *testing.T) {
	csv := "Date,Overall Score\n2024-01-01,N/A\n"
	var out bytes.Buffer
	require.NoError(t, writeReport(&out, catalog.Default(), strings.NewReader(csv)))
	assert.Contains(t, out.String(), "At least two assessments")
}

func TestWriteReportRejectsBadCSV(t *testing.T) {
	var out bytes.Buffer
	err := writeReport(&out, catalog.Default(), strings.NewReader("Overall Score\n3\n"))
	assert.ErrorIs(t, err, domain.ErrImportFailed)
}

func TestReportCommand(t *testing.T) {
	dir := t.TempDir()
	historyPath := filepath.Join(dir, "history.csv")
	require.NoError(t, os.WriteFile(historyPath, []byte(exportedHistory(t)), 0o644))

	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetArgs([]string{"report", "--config", filepath.Join(dir, "missing.yaml"), "--history", historyPath})
	require.NoError(t, root.Execute())
	assert.Contains(t, out.String(), "TREND")
}

func TestRenderTableAlignsColumns(t *testing.T) {
	table := renderTable([]string{"A", "Long header"}, [][]string{{"wide cell", "x"}})
	lines := strings.Split(strings.TrimRight(table, "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[2], "wide cell  x")
}

func TestRootRegistersCommands(t *testing.T) {
	root := newRootCmd()
	names := map[string]bool{}
	for _, c := range root.Commands() {
		names[c.Name()] = true
	}
	for _, want := range []string{"start", "migrate", "report"} {
		assert.True(t, names[want], want)
	}
}
