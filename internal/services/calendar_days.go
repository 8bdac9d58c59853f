package services

import (
	"time"

	"github.com/terraincognita07/habitual/internal/models"
)

type CalendarDayState struct {
	Date        time.Time
	DateString  string
	Day         int
	InMonth     bool
	IsToday     bool
	IsScheduled bool
	Status      models.CheckInStatus
	HasCheckIn  bool
}

// CalendarGridBounds returns the Sunday on or before the first of month and the Saturday
// on or after its last day.
func CalendarGridBounds(month time.Time) (time.Time, time.Time) {
	monthStart := MonthStart(month)
	monthEnd := monthStart.AddDate(0, 1, -1)
	gridStart := AddDays(monthStart, -int(monthStart.Weekday()))
	gridEnd := AddDays(monthEnd, 6-int(monthEnd.Weekday()))
	return gridStart, gridEnd
}

func (adherence Adherence) dayState(day time.Time, month time.Month) CalendarDayState {
	key := FormatDay(day)
	state := CalendarDayState{
		Date:        day,
		DateString:  key,
		Day:         day.Day(),
		InMonth:     day.Month() == month,
		IsToday:     day.Equal(adherence.today),
		IsScheduled: adherence.habit.IsScheduledOn(day.Weekday()),
	}
	if checkIn, ok := adherence.byDate[key]; ok {
		state.Status = checkIn.Status
		state.HasCheckIn = true
	}
	return state
}
