package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// reportCmd represents the report command
var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Report reference coverage of the article collection",
	Long: `Compares the article collection against the editorial reference table.

Reports articles without any review row (these would fail the record
stream) and reference rows pointing at articles that are no longer part
of the collection.`,
	RunE: runReport,
}

func init() {
	RootCmd.AddCommand(reportCmd)
}

func runReport(cmd *cobra.Command, args []string) error {
	svc, logg, err := newArticlesService()
	if err != nil {
		return err
	}

	report, err := svc.Report()
	if err != nil {
		return fmt.Errorf("coverage report failed: %w", err)
	}

	// Always display metrics
	fmt.Println("\n=== Reference Coverage ===")
	fmt.Printf("Documents: %d\n", report.TotalDocuments)
	fmt.Printf("Matched: %d\n", report.MatchedDocuments)
	fmt.Printf("Unmatched Articles: %d\n", len(report.UnmatchedArticles))
	fmt.Printf("Reference Rows: %d\n", report.ReferenceRows)
	fmt.Printf("Distinct Articles: %d\n", report.DistinctArticles)
	fmt.Printf("Stale Articles: %d\n", len(report.StaleArticles))

	for _, id := range report.UnmatchedArticles {
		fmt.Printf("  unmatched: %s\n", id)
	}
	for _, id := range report.StaleArticles {
		fmt.Printf("  stale: %s\n", id)
	}

	if report.Covered() {
		logg.Info("Every document has a reference row")
	} else {
		logg.Warn("Documents without reference rows would fail the record stream",
			zap.Int("unmatched", len(report.UnmatchedArticles)))
	}
	return nil
}
