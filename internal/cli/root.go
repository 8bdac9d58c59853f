package cli

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/terraincognita07/habitual/internal/config"
	"github.com/terraincognita07/habitual/internal/db"
	"github.com/terraincognita07/habitual/internal/insight"
	"github.com/terraincognita07/habitual/internal/logger"
	"github.com/terraincognita07/habitual/internal/services"
)

const defaultOwnerID = "local"

// nowFunc is the clock every command reads "today" from.
var nowFunc = time.Now

type state struct {
	config  config.Config
	dbPath  string
	ownerID string
	debug   bool
}

// session bundles the services one command invocation works with.
type session struct {
	habits   *services.HabitService
	checkIns *services.CheckInService
	insights *services.InsightService
	quotes   *services.QuoteService
	today    time.Time
	close    func()
}

func Execute() error {
	return NewRootCommand().Execute()
}

func NewRootCommand() *cobra.Command {
	st := &state{}

	root := &cobra.Command{
		Use:           "habitual",
		Short:         "Track one habit at a time and see how well you keep it",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			bootLevel := "warn"
			if st.debug {
				bootLevel = "debug"
			}
			logger.Bootstrap(cmd.ErrOrStderr(), bootLevel)

			st.config = config.Load()
			if strings.TrimSpace(st.dbPath) == "" {
				st.dbPath = st.config.DBPath
			}
			if strings.TrimSpace(st.ownerID) == "" {
				return fmt.Errorf("--owner must not be empty")
			}

			level := st.config.LogLevel
			if st.debug {
				level = "debug"
			}
			return logger.Init(logger.Config{
				Level: level,
				Dir:   st.config.LogDir,
				JSON:  st.config.LogJSON,
			})
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&st.dbPath, "db", "", "path to the sqlite database (default $DB_PATH)")
	flags.StringVar(&st.ownerID, "owner", defaultOwnerID, "owner id the command acts for")
	flags.BoolVar(&st.debug, "debug", false, "enable debug logging")

	root.AddCommand(
		newServeCommand(st),
		newHabitCommand(st),
		newCheckInCommand(st),
		newStatsCommand(st),
		newReportCommand(st),
		newTokenCommand(st),
		newSecretCommand(),
	)
	return root
}

func (st *state) open() (*session, error) {
	database, err := db.OpenSQLite(st.dbPath)
	if err != nil {
		return nil, fmt.Errorf("database init failed: %w", err)
	}
	sqlDB, err := database.DB()
	if err != nil {
		return nil, fmt.Errorf("database init failed: %w", err)
	}

	repositories := db.NewRepositories(database)
	generator := insight.NewGenerator(st.config.Insight)
	return &session{
		habits:   services.NewHabitService(repositories.Habits),
		checkIns: services.NewCheckInService(repositories.Habits, repositories.CheckIns),
		insights: services.NewInsightService(generator, 0, st.config.RecentWindowDays),
		quotes:   services.NewQuoteService(repositories.Quotes, generator),
		today:    services.TodayAt(nowFunc(), st.config.Location),
		close: func() {
			_ = sqlDB.Close()
		},
	}, nil
}

// withSession opens the database for the duration of run.
func (st *state) withSession(cmd *cobra.Command, run func(ctx context.Context, s *session, out io.Writer) error) error {
	s, err := st.open()
	if err != nil {
		return err
	}
	defer s.close()
	return run(cmd.Context(), s, cmd.OutOrStdout())
}
