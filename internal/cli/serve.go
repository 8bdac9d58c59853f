package cli

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/spf13/cobra"
	"github.com/terraincognita07/habitual/internal/api"
	"github.com/terraincognita07/habitual/internal/config"
	"github.com/terraincognita07/habitual/internal/db"
	"github.com/terraincognita07/habitual/internal/insight"
	"github.com/terraincognita07/habitual/internal/jobs"
	"github.com/terraincognita07/habitual/internal/logger"
	"github.com/terraincognita07/habitual/internal/services"
)

const shutdownTimeout = 10 * time.Second

func newServeCommand(st *state) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the JSON API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServer(cmd.Context(), st)
		},
	}
}

func runServer(ctx context.Context, st *state) error {
	cfg := st.config
	secretKey, err := config.ResolveSecretKey()
	if err != nil {
		return err
	}
	port, err := config.ResolvePort(cfg.Port)
	if err != nil {
		return err
	}

	database, err := db.OpenSQLite(st.dbPath)
	if err != nil {
		return fmt.Errorf("database init failed: %w", err)
	}

	generator := insight.NewGenerator(cfg.Insight)
	handler, err := api.NewHandler(database, api.Options{
		SecretKey:        secretKey,
		Location:         cfg.Location,
		Generator:        generator,
		InsightCacheTTL:  cfg.InsightCacheTTL,
		RecentWindowDays: cfg.RecentWindowDays,
	})
	if err != nil {
		return fmt.Errorf("handler init failed: %w", err)
	}

	app := fiber.New(fiber.Config{
		AppName:               "Habitual",
		DisableStartupMessage: true,
	})
	app.Use(recover.New())
	app.Use(fiberlogger.New())
	app.Use(compress.New())

	prometheus := fiberprometheus.New("habitual")
	prometheus.RegisterAt(app, "/metrics")
	app.Use(prometheus.Middleware)

	api.RegisterRoutes(app, handler)

	scheduler, err := jobs.NewScheduler(cfg.Location)
	if err != nil {
		return err
	}
	quotes := services.NewQuoteService(db.NewQuoteRepository(database), generator)
	if err := scheduler.RegisterQuoteRetention(quotes, cfg.QuoteRetentionDays); err != nil {
		return err
	}
	scheduler.Start()
	defer func() {
		if err := scheduler.Shutdown(); err != nil {
			logger.Warn("scheduler shutdown failed", "err", err)
		}
	}()

	if ctx == nil {
		ctx = context.Background()
	}
	sigCtx, stopSignals := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	go func() {
		<-sigCtx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := app.ShutdownWithContext(shutdownCtx); err != nil {
			logger.Error("server shutdown failed", "err", err)
		}
	}()

	logger.Info("habitual listening", "addr", "0.0.0.0:"+port, "db", st.dbPath, "tz", cfg.Location.String())
	if err := app.Listen(":" + port); err != nil {
		return fmt.Errorf("server exited: %w", err)
	}
	return nil
}
