package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/patrickmn/go-cache"
	"github.com/terraincognita07/habitual/internal/logger"
	"github.com/terraincognita07/habitual/internal/metrics"
	"github.com/terraincognita07/habitual/internal/models"
)

const (
	MinCheckInsForInsight    = 3
	DefaultRecentWindowDays  = 7
	InsightPlaceholderText   = "Keep checking in to receive your first personalized insight!"
	InsightFallbackText      = "We had a problem generating your insight. Please try again later, and meanwhile stay firm on your habit!"
	DailyQuoteFallbackText   = "The biggest obstacle is always the inertia of the first move. Once you are moving, physics is on your side. Keep going!"
	insightCacheCleanupRatio = 2
)

// InsightGenerator produces short narrative text. Implementations may fail for network or
// quota reasons; callers replace failures with fixed text.
type InsightGenerator interface {
	GenerateInsight(ctx context.Context, recent []models.CheckIn) (string, error)
	GenerateDailyQuote(ctx context.Context) (string, error)
}

type Insight struct {
	Text        string `json:"text"`
	Placeholder bool   `json:"placeholder"`
	Fallback    bool   `json:"fallback"`
}

type InsightService struct {
	generator  InsightGenerator
	cache      *cache.Cache
	windowDays int
}

// NewInsightService caches generated insights per owner, habit, day and check-in count for
// cacheTTL. A non-positive TTL disables the cache.
func NewInsightService(generator InsightGenerator, cacheTTL time.Duration, windowDays int) *InsightService {
	if windowDays <= 0 {
		windowDays = DefaultRecentWindowDays
	}
	service := &InsightService{
		generator:  generator,
		windowDays: windowDays,
	}
	if cacheTTL > 0 {
		service.cache = cache.New(cacheTTL, cacheTTL*insightCacheCleanupRatio)
	}
	return service
}

func (service *InsightService) Insight(ctx context.Context, snapshot Snapshot) Insight {
	habit := snapshot.Active()
	activeCheckIns := snapshot.ActiveCheckIns()
	if habit == nil || len(activeCheckIns) < MinCheckInsForInsight || service.generator == nil {
		return Insight{Text: InsightPlaceholderText, Placeholder: true}
	}

	cacheKey := fmt.Sprintf("%s|%s|%s|%d", snapshot.OwnerID, habit.ID, FormatDay(snapshot.Today), len(activeCheckIns))
	if service.cache != nil {
		if cached, ok := service.cache.Get(cacheKey); ok {
			return Insight{Text: cached.(string)}
		}
	}

	text, err := service.generator.GenerateInsight(ctx, snapshot.FindRecent(service.windowDays))
	text = strings.TrimSpace(text)
	if err != nil || text == "" {
		metrics.InsightFailures.WithLabelValues("insight").Inc()
		logger.Warn("insight generation failed", "owner", snapshot.OwnerID, "err", err)
		return Insight{Text: InsightFallbackText, Fallback: true}
	}

	if service.cache != nil {
		service.cache.SetDefault(cacheKey, text)
	}
	return Insight{Text: text}
}
