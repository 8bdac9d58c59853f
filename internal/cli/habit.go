package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/terraincognita07/habitual/internal/models"
	"github.com/terraincognita07/habitual/internal/services"
)

func newHabitCommand(st *state) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "habit",
		Short: "Manage habits",
	}
	cmd.AddCommand(
		newHabitShowCommand(st),
		newHabitListCommand(st),
		newHabitCreateCommand(st),
		newHabitArchiveCommand(st),
		newHabitDeleteCommand(st),
	)
	return cmd
}

func newHabitShowCommand(st *state) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the active habit",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return st.withSession(cmd, func(ctx context.Context, s *session, out io.Writer) error {
				habit, found, err := s.habits.GetActive(ctx, st.ownerID)
				if err != nil {
					return err
				}
				if !found {
					fmt.Fprintln(out, "No active habit. Create one with `habitual habit create`.")
					return nil
				}
				printHabit(out, habit)
				return nil
			})
		},
	}
}

func newHabitListCommand(st *state) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all habits, active first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return st.withSession(cmd, func(ctx context.Context, s *session, out io.Writer) error {
				habits, err := s.habits.List(ctx, st.ownerID)
				if err != nil {
					return err
				}
				if len(habits) == 0 {
					fmt.Fprintln(out, "No habits yet.")
					return nil
				}
				for _, habit := range habits {
					marker := " "
					if habit.IsActive {
						marker = "*"
					}
					fmt.Fprintf(out, "%s %s  %-30s  since %s  [%s]\n", marker, habit.ID, habit.Name, habit.StartDate, formatWeekdays(habit.ScheduledWeekdays))
				}
				return nil
			})
		},
	}
}

func newHabitCreateCommand(st *state) *cobra.Command {
	var (
		name       string
		motivation string
		days       string
		duration   int
		startDate  string
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Start a new habit, archiving the current one",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			weekdays, err := parseWeekdays(days)
			if err != nil {
				return err
			}
			return st.withSession(cmd, func(ctx context.Context, s *session, out io.Writer) error {
				habit, err := s.habits.Create(ctx, st.ownerID, services.HabitInput{
					Name:               name,
					Motivation:         motivation,
					ScheduledWeekdays:  weekdays,
					TargetDurationDays: duration,
					StartDate:          startDate,
				}, s.today)
				if err != nil {
					return err
				}
				fmt.Fprintln(out, "Habit created.")
				printHabit(out, habit)
				return nil
			})
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&name, "name", "", "habit name")
	flags.StringVar(&motivation, "motivation", "", "why this habit matters")
	flags.StringVar(&days, "days", "mon,tue,wed,thu,fri", "scheduled weekdays, e.g. mon,wed,fri")
	flags.IntVar(&duration, "duration", models.DurationMedium, "target duration in days (15, 30 or 45)")
	flags.StringVar(&startDate, "start", "", "start date YYYY-MM-DD (default today)")
	_ = cmd.MarkFlagRequired("name")
	return cmd
}

func newHabitArchiveCommand(st *state) *cobra.Command {
	return &cobra.Command{
		Use:   "archive <habit-id>",
		Short: "Deactivate a habit and keep its history",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return st.withSession(cmd, func(ctx context.Context, s *session, out io.Writer) error {
				habit, err := s.habits.Archive(ctx, st.ownerID, args[0])
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "Archived %q.\n", habit.Name)
				return nil
			})
		},
	}
}

func newHabitDeleteCommand(st *state) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <habit-id>",
		Short: "Delete a habit and all of its check-ins",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return st.withSession(cmd, func(ctx context.Context, s *session, out io.Writer) error {
				if err := s.habits.Delete(ctx, st.ownerID, args[0]); err != nil {
					return err
				}
				fmt.Fprintln(out, "Habit deleted.")
				return nil
			})
		},
	}
}

func printHabit(out io.Writer, habit models.Habit) {
	fmt.Fprintf(out, "ID:         %s\n", habit.ID)
	fmt.Fprintf(out, "Name:       %s\n", habit.Name)
	if habit.Motivation != "" {
		fmt.Fprintf(out, "Motivation: %s\n", habit.Motivation)
	}
	fmt.Fprintf(out, "Schedule:   %s\n", formatWeekdays(habit.ScheduledWeekdays))
	fmt.Fprintf(out, "Duration:   %d days from %s\n", habit.TargetDurationDays, habit.StartDate)
}
