package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/terraincognita07/habitual/internal/models"
	"github.com/terraincognita07/habitual/internal/services"
)

func newCheckInCommand(st *state) *cobra.Command {
	var (
		date             string
		status           string
		challenges       []string
		motivations      []string
		sabotagePatterns []string
		timeOfDay        string
		energy           int
		satisfaction     int
		mood             int
		reflection       string
	)

	cmd := &cobra.Command{
		Use:   "checkin",
		Short: "Record how today (or --date) went for the active habit",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			input := services.CheckInInput{
				Date:             date,
				Status:           models.CheckInStatus(status),
				Challenges:       challenges,
				Motivations:      motivations,
				SabotagePatterns: sabotagePatterns,
				TimeOfDay:        timeOfDay,
				Reflection:       reflection,
			}
			if cmd.Flags().Changed("energy") {
				input.EnergyLevel = &energy
			}
			if cmd.Flags().Changed("satisfaction") {
				input.Satisfaction = &satisfaction
			}
			if cmd.Flags().Changed("mood") {
				input.Mood = &mood
			}

			return st.withSession(cmd, func(ctx context.Context, s *session, out io.Writer) error {
				checkIn, err := s.checkIns.Record(ctx, st.ownerID, input, s.today)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "Checked in %s as %s.\n", checkIn.Date, checkIn.Status)
				return nil
			})
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&date, "date", "", "day YYYY-MM-DD (default today)")
	flags.StringVar(&status, "status", "", "completed, partial or missed")
	flags.StringSliceVar(&challenges, "challenge", nil, "challenge tag, repeatable")
	flags.StringSliceVar(&motivations, "motivation", nil, "motivation tag, repeatable")
	flags.StringSliceVar(&sabotagePatterns, "sabotage", nil, "sabotage pattern tag, repeatable")
	flags.StringVar(&timeOfDay, "time-of-day", "", "morning, afternoon or evening")
	flags.IntVar(&energy, "energy", 0, "energy level 1-10")
	flags.IntVar(&satisfaction, "satisfaction", 0, "satisfaction 1-10")
	flags.IntVar(&mood, "mood", 0, "mood 1-10")
	flags.StringVar(&reflection, "reflection", "", "free-form note")
	_ = cmd.MarkFlagRequired("status")
	return cmd
}
