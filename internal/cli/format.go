package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"maturity-assessment-service/internal/app"
	"maturity-assessment-service/internal/domain"
)

var (
	colorGreen  = lipgloss.Color("#8ec07c")
	colorRed    = lipgloss.Color("#fb4934")
	colorDim    = lipgloss.Color("#928374")
	colorHeader = lipgloss.Color("#fe8019")

	styleGreen  = lipgloss.NewStyle().Foreground(colorGreen)
	styleRed    = lipgloss.NewStyle().Foreground(colorRed)
	styleDim    = lipgloss.NewStyle().Foreground(colorDim)
	styleHeader = lipgloss.NewStyle().Foreground(colorHeader).Bold(true)
)

const colGap = 2

// renderSection renders an upper-cased title with an underline.
func renderSection(title string) string {
	upper := strings.ToUpper(title)
	return fmt.Sprintf("%s\n%s", styleHeader.Render(upper), styleDim.Render(strings.Repeat("─", len(upper))))
}

// renderTable pads columns to their widest visible cell.
func renderTable(headers []string, rows [][]string) string {
	if len(headers) == 0 {
		return ""
	}
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range rows {
		for i := 0; i < len(headers) && i < len(row); i++ {
			if w := lipgloss.Width(row[i]); w > widths[i] {
				widths[i] = w
			}
		}
	}

	var b strings.Builder
	writeRow := func(cells []string, style func(string) string) {
		for i := range headers {
			cell := ""
			if i < len(cells) {
				cell = cells[i]
			}
			b.WriteString(style(cell))
			if i < len(headers)-1 {
				b.WriteString(strings.Repeat(" ", widths[i]-lipgloss.Width(cell)+colGap))
			}
		}
		b.WriteString("\n")
	}

	writeRow(headers, func(s string) string { return styleHeader.Render(s) })
	separators := make([]string, len(widths))
	for i, w := range widths {
		separators[i] = strings.Repeat("─", w)
	}
	writeRow(separators, func(s string) string { return styleDim.Render(s) })
	for _, row := range rows {
		writeRow(row, func(s string) string { return s })
	}
	return b.String()
}

func renderHistory(catalog domain.Catalog, assessments []domain.Assessment) string {
	headers := []string{"Date", "Overall"}
	for _, c := range catalog.Categories {
		headers = append(headers, c.Name)
	}
	rows := make([][]string, 0, len(assessments))
	for _, a := range assessments {
		row := []string{a.Date, app.FormatScore(a.Scores.Overall)}
		for _, c := range catalog.Categories {
			row = append(row, app.FormatScore(a.Scores.Category(c.ID)))
		}
		rows = append(rows, row)
	}
	return renderTable(headers, rows)
}

func renderTrend(trend domain.TrendReport) string {
	if !trend.Sufficient {
		return styleDim.Render("At least two assessments are needed for trend analysis.") + "\n"
	}
	if len(trend.Improved) == 0 && len(trend.Declined) == 0 {
		return styleDim.Render("No category moved by more than the trend threshold.") + "\n"
	}

	var b strings.Builder
	for _, d := range trend.Improved {
		b.WriteString(styleGreen.Render(fmt.Sprintf("▲ %s %+.2f", d.Name, d.Delta)))
		b.WriteString(styleDim.Render(fmt.Sprintf(" (%.2f → %.2f)", d.Previous, d.Latest)))
		b.WriteString("\n")
	}
	for _, d := range trend.Declined {
		b.WriteString(styleRed.Render(fmt.Sprintf("▼ %s %+.2f", d.Name, d.Delta)))
		b.WriteString(styleDim.Render(fmt.Sprintf(" (%.2f → %.2f)", d.Previous, d.Latest)))
		b.WriteString("\n")
	}
	return b.String()
}
