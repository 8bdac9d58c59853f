package api

import (
	"errors"
	"strings"
	"time"

	"github.com/terraincognita07/habitual/internal/db"
	"github.com/terraincognita07/habitual/internal/services"
	"gorm.io/gorm"
)

const (
	contextOwnerKey = "owner_id"

	authFailureLimit  = 10
	authFailureWindow = 15 * time.Minute
)

type Handler struct {
	secretKey        []byte
	location         *time.Location
	now              func() time.Time
	recentWindowDays int

	habits   *services.HabitService
	checkIns *services.CheckInService
	insights *services.InsightService
	quotes   *services.QuoteService

	authFailures *attemptLimiter
}

type Options struct {
	SecretKey        string
	Location         *time.Location
	Now              func() time.Time
	Generator        services.InsightGenerator
	InsightCacheTTL  time.Duration
	RecentWindowDays int
}

func NewHandler(database *gorm.DB, options Options) (*Handler, error) {
	if database == nil {
		return nil, errors.New("database is required")
	}
	if strings.TrimSpace(options.SecretKey) == "" {
		return nil, errors.New("secret key is required")
	}
	if options.Location == nil {
		options.Location = time.UTC
	}
	if options.Now == nil {
		options.Now = time.Now
	}
	if options.RecentWindowDays <= 0 {
		options.RecentWindowDays = services.DefaultRecentWindowDays
	}

	repositories := db.NewRepositories(database)
	return &Handler{
		secretKey:        []byte(options.SecretKey),
		location:         options.Location,
		now:              options.Now,
		recentWindowDays: options.RecentWindowDays,
		habits:           services.NewHabitService(repositories.Habits),
		checkIns:         services.NewCheckInService(repositories.Habits, repositories.CheckIns),
		insights:         services.NewInsightService(options.Generator, options.InsightCacheTTL, options.RecentWindowDays),
		quotes:           services.NewQuoteService(repositories.Quotes, options.Generator),
		authFailures:     newAttemptLimiter(),
	}, nil
}

// today is the calendar day the handler's clock shows in its configured location.
func (handler *Handler) today() time.Time {
	return services.TodayAt(handler.now(), handler.location)
}
