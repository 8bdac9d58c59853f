package cli

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

var weekdayNames = map[string]time.Weekday{
	"sun": time.Sunday,
	"mon": time.Monday,
	"tue": time.Tuesday,
	"wed": time.Wednesday,
	"thu": time.Thursday,
	"fri": time.Friday,
	"sat": time.Saturday,
}

// parseWeekdays accepts a comma separated list of weekday names ("mon", "Monday") or
// numbers with 0 for Sunday.
func parseWeekdays(raw string) ([]time.Weekday, error) {
	weekdays := make([]time.Weekday, 0, 7)
	for _, part := range strings.Split(raw, ",") {
		token := strings.ToLower(strings.TrimSpace(part))
		if token == "" {
			continue
		}
		if number, err := strconv.Atoi(token); err == nil {
			weekdays = append(weekdays, time.Weekday(number))
			continue
		}
		if len(token) >= 3 {
			if weekday, ok := weekdayNames[token[:3]]; ok && strings.HasPrefix(strings.ToLower(weekday.String()), token) {
				weekdays = append(weekdays, weekday)
				continue
			}
		}
		return nil, fmt.Errorf("unknown weekday %q", strings.TrimSpace(part))
	}
	return weekdays, nil
}

func formatWeekdays(weekdays []time.Weekday) string {
	names := make([]string, 0, len(weekdays))
	for _, weekday := range weekdays {
		names = append(names, weekday.String()[:3])
	}
	return strings.Join(names, ",")
}
