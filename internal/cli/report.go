package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"maturity-assessment-service/internal/app"
	"maturity-assessment-service/internal/catalog"
	"maturity-assessment-service/internal/config"
	"maturity-assessment-service/internal/domain"
)

// NewReportCmd renders an exported history CSV as a table with the latest trend.
func NewReportCmd(configPath *string) *cobra.Command {
	var historyPath string
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Summarize an exported assessment history",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(*configPath)
			if err != nil {
				return err
			}
			c := catalog.Default()
			if cfg.Catalog.Path != "" {
				if c, err = catalog.LoadFile(cfg.Catalog.Path); err != nil {
					return err
				}
			}
			f, err := os.Open(historyPath)
			if err != nil {
				return err
			}
			defer f.Close()
			return writeReport(cmd.OutOrStdout(), c, f)
		},
	}
	cmd.Flags().StringVar(&historyPath, "history", "", "path to a history CSV export")
	_ = cmd.MarkFlagRequired("history")
	return cmd
}

func writeReport(w io.Writer, c domain.Catalog, r io.Reader) error {
	history := app.NewHistory(c)
	if err := history.Import(r); err != nil {
		return err
	}
	assessments := history.List()

	fmt.Fprintln(w, renderSection("Assessment history"))
	if len(assessments) == 0 {
		fmt.Fprintln(w, styleDim.Render("No assessments recorded."))
		return nil
	}
	fmt.Fprint(w, renderHistory(c, assessments))

	latest := assessments[len(assessments)-1]
	if level, ok := app.Maturity(c, latest.Scores.Overall); ok {
		fmt.Fprintf(w, "\nLatest maturity: level %d, %s\n", level.Level, level.Description)
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, renderSection("Trend"))
	fmt.Fprint(w, renderTrend(app.ImprovementAnalysis(c, assessments)))
	return nil
}
