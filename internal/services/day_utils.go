package services

import (
	"slices"
	"strings"
	"time"
)

const DateLayout = "2006-01-02"

func DateAtLocation(value time.Time, location *time.Location) time.Time {
	if location == nil {
		location = time.UTC
	}
	localized := value.In(location)
	year, month, day := localized.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, location)
}

// CalendarDay keeps only the calendar date shown by value and returns it as UTC midnight.
func CalendarDay(value time.Time) time.Time {
	year, month, day := value.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// TodayAt returns the calendar day that now falls on in location.
func TodayAt(now time.Time, location *time.Location) time.Time {
	return CalendarDay(DateAtLocation(now, location))
}

func ParseDay(raw string) (time.Time, error) {
	return time.Parse(DateLayout, strings.TrimSpace(raw))
}

func FormatDay(day time.Time) string {
	return day.Format(DateLayout)
}

func AddDays(day time.Time, days int) time.Time {
	return day.AddDate(0, 0, days)
}

const secondsPerDay = 24 * 60 * 60

// DaysBetween counts whole calendar days from from to to; negative when to is earlier.
// It works on Unix seconds of UTC midnights so distant dates do not saturate a Duration.
func DaysBetween(from time.Time, to time.Time) int {
	return int((CalendarDay(to).Unix() - CalendarDay(from).Unix()) / secondsPerDay)
}

func MonthStart(value time.Time) time.Time {
	return time.Date(value.Year(), value.Month(), 1, 0, 0, 0, 0, time.UTC)
}

// NormalizeTags trims tags, drops blanks and keeps the first occurrence of each value.
func NormalizeTags(values []string) []string {
	if len(values) == 0 {
		return nil
	}
	normalized := make([]string, 0, len(values))
	for _, value := range values {
		trimmed := strings.TrimSpace(value)
		if trimmed == "" || slices.Contains(normalized, trimmed) {
			continue
		}
		normalized = append(normalized, trimmed)
	}
	if len(normalized) == 0 {
		return nil
	}
	return normalized
}

// NormalizeWeekdays sorts and de-duplicates a weekly schedule. It reports false when the
// schedule is empty or holds a value outside Sunday..Saturday.
func NormalizeWeekdays(values []time.Weekday) ([]time.Weekday, bool) {
	if len(values) == 0 {
		return nil, false
	}
	normalized := make([]time.Weekday, 0, len(values))
	for _, value := range values {
		if value < time.Sunday || value > time.Saturday {
			return nil, false
		}
		if !slices.Contains(normalized, value) {
			normalized = append(normalized, value)
		}
	}
	slices.Sort(normalized)
	return normalized, true
}
