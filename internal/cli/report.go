package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/terraincognita07/habitual/internal/services"
)

func newReportCommand(st *state) *cobra.Command {
	return &cobra.Command{
		Use:   "report",
		Short: "Summarize all check-ins and show today's insight and quote",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return st.withSession(cmd, func(ctx context.Context, s *session, out io.Writer) error {
				snapshot, err := s.checkIns.Snapshot(ctx, st.ownerID, s.today)
				if err != nil {
					return err
				}

				report := services.BuildReport(snapshot)
				fmt.Fprintf(out, "Check-ins: %d  Success: %d%%\n", report.TotalCheckIns, report.SuccessRate)
				printTagCounts(out, "Execution", report.ExecutionBalance)
				printTagCounts(out, "Missed by time of day", report.MissedByTimeOfDay)
				printTagCounts(out, "Sabotage patterns", report.SabotagePatterns)
				printTagCounts(out, "Motivations", report.Motivations)
				printTagCounts(out, "Challenges", report.Challenges)

				fmt.Fprintf(out, "\nInsight: %s\n", s.insights.Insight(ctx, snapshot).Text)
				fmt.Fprintf(out, "Quote:   %s\n", s.quotes.Today(ctx, st.ownerID, s.today).Content)
				return nil
			})
		},
	}
}

func printTagCounts(out io.Writer, title string, counts []services.TagCount) {
	if len(counts) == 0 {
		return
	}
	fmt.Fprintf(out, "%s:\n", title)
	for _, count := range counts {
		fmt.Fprintf(out, "  %-20s %d\n", count.Name, count.Count)
	}
}
