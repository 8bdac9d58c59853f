package api

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/terraincognita07/habitual/internal/services"
)

const maxRecentWindowDays = 366

func parseDayParam(raw string) (time.Time, error) {
	if strings.TrimSpace(raw) == "" {
		return time.Time{}, errors.New("date is required")
	}
	return services.ParseDay(raw)
}

func parseMonthQuery(raw string, today time.Time) (time.Time, error) {
	if strings.TrimSpace(raw) == "" {
		return services.MonthStart(today), nil
	}
	parsed, err := time.Parse("2006-01", strings.TrimSpace(raw))
	if err != nil {
		return time.Time{}, err
	}
	return services.MonthStart(parsed), nil
}

func parseWindowQuery(raw string, fallback int) (int, error) {
	if strings.TrimSpace(raw) == "" {
		return fallback, nil
	}
	days, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, err
	}
	if days > maxRecentWindowDays {
		days = maxRecentWindowDays
	}
	return days, nil
}
