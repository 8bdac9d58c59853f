package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/terraincognita07/habitual/internal/logger"
	"github.com/terraincognita07/habitual/internal/metrics"
	"github.com/terraincognita07/habitual/internal/models"
)

type QuoteRepository interface {
	FindByOwnerAndDate(ctx context.Context, ownerID string, date string) (models.DailyQuote, bool, error)
	Create(ctx context.Context, quote *models.DailyQuote) error
	DeleteBefore(ctx context.Context, cutoff string) (int64, error)
}

type QuoteService struct {
	quotes    QuoteRepository
	generator InsightGenerator
}

func NewQuoteService(quotes QuoteRepository, generator InsightGenerator) *QuoteService {
	return &QuoteService{
		quotes:    quotes,
		generator: generator,
	}
}

// Today returns the owner's quote for today, generating and storing one on first use.
// It never fails: generator errors yield the fallback text and storage errors are logged.
func (service *QuoteService) Today(ctx context.Context, ownerID string, today time.Time) models.DailyQuote {
	date := FormatDay(CalendarDay(today))

	stored, found, err := service.quotes.FindByOwnerAndDate(ctx, ownerID, date)
	if err != nil {
		logger.Warn("load daily quote failed", "owner", ownerID, "err", err)
	}
	if found {
		return stored
	}

	content := ""
	if service.generator != nil {
		content, err = service.generator.GenerateDailyQuote(ctx)
		content = strings.TrimSpace(content)
	}
	if err != nil || content == "" {
		metrics.InsightFailures.WithLabelValues("quote").Inc()
		logger.Warn("daily quote generation failed", "owner", ownerID, "err", err)
		return models.DailyQuote{OwnerID: ownerID, Date: date, Content: DailyQuoteFallbackText}
	}

	quote := models.DailyQuote{
		ID:      uuid.NewString(),
		OwnerID: ownerID,
		Date:    date,
		Content: content,
	}
	if err := service.quotes.Create(ctx, &quote); err != nil {
		if errors.Is(err, models.ErrDuplicateRecord) {
			if winner, ok, loadErr := service.quotes.FindByOwnerAndDate(ctx, ownerID, date); loadErr == nil && ok {
				return winner
			}
		}
		logger.Warn("save daily quote failed", "owner", ownerID, "err", err)
	}
	return quote
}

// PruneBefore deletes stored quotes dated before cutoff.
func (service *QuoteService) PruneBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	return service.quotes.DeleteBefore(ctx, FormatDay(CalendarDay(cutoff)))
}
