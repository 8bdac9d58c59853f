package cli

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/terraincognita07/habitual/internal/models"
	"github.com/terraincognita07/habitual/internal/services"
)

func newStatsCommand(st *state) *cobra.Command {
	var month string

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show streak, success rate and a month calendar",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return st.withSession(cmd, func(ctx context.Context, s *session, out io.Writer) error {
				shown := services.MonthStart(s.today)
				if strings.TrimSpace(month) != "" {
					parsed, err := time.Parse("2006-01", strings.TrimSpace(month))
					if err != nil {
						return fmt.Errorf("invalid --month %q: want YYYY-MM", month)
					}
					shown = services.MonthStart(parsed)
				}

				snapshot, err := s.checkIns.Snapshot(ctx, st.ownerID, s.today)
				if err != nil {
					return err
				}
				habit := snapshot.Active()
				if habit == nil {
					fmt.Fprintln(out, "No active habit.")
					return nil
				}

				adherence := snapshot.Adherence()
				summary := adherence.Summary()
				fmt.Fprintf(out, "%s\n", habit.Name)
				fmt.Fprintf(out, "Streak: %d  Success: %d%%  Day %d of %d  Check-ins: %d\n\n",
					summary.Streak, summary.SuccessRate, summary.DaysActive, habit.TargetDurationDays, summary.CheckIns)
				renderCalendar(out, shown, adherence)
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&month, "month", "", "month to show as YYYY-MM (default current)")
	return cmd
}

// renderCalendar prints a Sunday-first month grid. Markers: * completed, ~ partial,
// x missed, . scheduled without a check-in.
func renderCalendar(out io.Writer, month time.Time, adherence services.Adherence) {
	fmt.Fprintf(out, "%s\n", month.Format("January 2006"))
	fmt.Fprintln(out, " Su  Mo  Tu  We  Th  Fr  Sa")

	column := 0
	for day := range adherence.CalendarGrid(month) {
		cell := "    "
		if day.InMonth {
			cell = fmt.Sprintf("%3d%s", day.Day, calendarMarker(day))
		}
		fmt.Fprint(out, cell)
		column++
		if column == 7 {
			fmt.Fprintln(out)
			column = 0
		}
	}
}

func calendarMarker(day services.CalendarDayState) string {
	switch {
	case day.HasCheckIn && day.Status == models.StatusCompleted:
		return "*"
	case day.HasCheckIn && day.Status == models.StatusPartial:
		return "~"
	case day.HasCheckIn:
		return "x"
	case day.IsScheduled:
		return "."
	default:
		return " "
	}
}
