package jobs

import (
	"context"
	"fmt"
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/terraincognita07/habitual/internal/logger"
	"github.com/terraincognita07/habitual/internal/metrics"
)

const quoteRetentionTimeout = time.Minute

type QuotePruner interface {
	PruneBefore(ctx context.Context, cutoff time.Time) (int64, error)
}

type Scheduler struct {
	scheduler gocron.Scheduler
	location  *time.Location
}

func NewScheduler(location *time.Location) (*Scheduler, error) {
	if location == nil {
		location = time.UTC
	}
	scheduler, err := gocron.NewScheduler(gocron.WithLocation(location))
	if err != nil {
		return nil, fmt.Errorf("create scheduler: %w", err)
	}
	return &Scheduler{scheduler: scheduler, location: location}, nil
}

// RegisterQuoteRetention prunes quotes older than retentionDays every night at 03:00.
func (s *Scheduler) RegisterQuoteRetention(pruner QuotePruner, retentionDays int) error {
	if retentionDays <= 0 {
		logger.Info("quote retention disabled")
		return nil
	}

	_, err := s.scheduler.NewJob(
		gocron.DailyJob(1, gocron.NewAtTimes(gocron.NewAtTime(3, 0, 0))),
		gocron.NewTask(func() {
			ctx, cancel := context.WithTimeout(context.Background(), quoteRetentionTimeout)
			defer cancel()
			if _, err := PruneQuotes(ctx, pruner, retentionDays, time.Now().In(s.location)); err != nil {
				logger.Error("quote retention failed", "err", err)
			}
		}),
		gocron.WithName("quote_retention"),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	)
	if err != nil {
		return fmt.Errorf("register quote retention job: %w", err)
	}
	return nil
}

func (s *Scheduler) Start() {
	s.scheduler.Start()
	logger.Info("scheduler started")
}

func (s *Scheduler) Shutdown() error {
	return s.scheduler.Shutdown()
}

// PruneQuotes deletes quotes dated more than retentionDays before now's calendar day.
func PruneQuotes(ctx context.Context, pruner QuotePruner, retentionDays int, now time.Time) (int64, error) {
	year, month, day := now.Date()
	cutoff := time.Date(year, month, day, 0, 0, 0, 0, time.UTC).AddDate(0, 0, -retentionDays)

	removed, err := pruner.PruneBefore(ctx, cutoff)
	if err != nil {
		return 0, err
	}
	metrics.QuotesPruned.Add(float64(removed))
	logger.Info("pruned daily quotes", "removed", removed, "cutoff", cutoff.Format("2006-01-02"))
	return removed, nil
}
