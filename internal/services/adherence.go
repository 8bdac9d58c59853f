package services

import (
	"iter"
	"time"

	"github.com/terraincognita07/habitual/internal/models"
)

// maxStreakLookbackDays bounds the backward walk in Streak.
const maxStreakLookbackDays = 365

// Adherence answers streak, success rate and calendar questions for one habit from an
// in-memory set of check-ins. The zero value and a nil habit report zero for everything.
type Adherence struct {
	habit    *models.Habit
	start    time.Time
	today    time.Time
	byDate   map[string]models.CheckIn
	checkIns []models.CheckIn
}

type AdherenceSummary struct {
	Streak      int `json:"streak"`
	SuccessRate int `json:"success_rate"`
	DaysActive  int `json:"days_active"`
	CheckIns    int `json:"check_ins"`
}

// NewAdherence keeps the check-ins that belong to habit and indexes them by date. A habit
// whose start date cannot be parsed is treated as absent.
func NewAdherence(habit *models.Habit, checkIns []models.CheckIn, today time.Time) Adherence {
	adherence := Adherence{today: CalendarDay(today)}
	if habit == nil {
		return adherence
	}
	start, err := ParseDay(habit.StartDate)
	if err != nil {
		return adherence
	}

	adherence.habit = habit
	adherence.start = start
	adherence.byDate = make(map[string]models.CheckIn, len(checkIns))
	adherence.checkIns = make([]models.CheckIn, 0, len(checkIns))
	for _, checkIn := range checkIns {
		if checkIn.HabitID != habit.ID {
			continue
		}
		adherence.checkIns = append(adherence.checkIns, checkIn)

		existing, exists := adherence.byDate[checkIn.Date]
		if !exists || checkIn.CreatedAt.After(existing.CreatedAt) ||
			(checkIn.CreatedAt.Equal(existing.CreatedAt) && checkIn.ID > existing.ID) {
			adherence.byDate[checkIn.Date] = checkIn
		}
	}
	return adherence
}

func (adherence Adherence) HasHabit() bool {
	return adherence.habit != nil
}

func (adherence Adherence) Lookup(day time.Time) (models.CheckIn, bool) {
	if adherence.habit == nil {
		return models.CheckIn{}, false
	}
	checkIn, ok := adherence.byDate[FormatDay(CalendarDay(day))]
	return checkIn, ok
}

func (adherence Adherence) Streak() int {
	if adherence.habit == nil {
		return 0
	}

	streak := 0
	yesterday := AddDays(adherence.today, -1)
	cursor := yesterday
	todayCheckIn, checkedToday := adherence.byDate[FormatDay(adherence.today)]
	switch {
	case checkedToday && todayCheckIn.Status != models.StatusMissed:
		streak = 1
	case !checkedToday && adherence.today.Equal(adherence.start):
		return 0
	}

	for !cursor.Before(adherence.start) && DaysBetween(cursor, adherence.today) <= maxStreakLookbackDays {
		if adherence.habit.IsScheduledOn(cursor.Weekday()) {
			checkIn, ok := adherence.byDate[FormatDay(cursor)]
			if !ok || checkIn.Status == models.StatusMissed {
				break
			}
			streak++
		}
		cursor = AddDays(cursor, -1)
	}
	return streak
}

// SuccessRate is the share of scheduled days since the start that have a completed or
// partial check-in, rounded half up and capped at 100.
func (adherence Adherence) SuccessRate() int {
	if adherence.habit == nil || adherence.start.After(adherence.today) {
		return 0
	}

	expected := adherence.scheduledDays(adherence.start, adherence.today)
	if expected == 0 {
		return 0
	}

	successful := 0
	for _, checkIn := range adherence.checkIns {
		if checkIn.Status.Succeeded() {
			successful++
		}
	}

	rate := (successful*200 + expected) / (2 * expected)
	return min(rate, 100)
}

// DaysActive counts days from the start through today inclusive. It is zero or negative
// while the start date is still in the future.
func (adherence Adherence) DaysActive() int {
	if adherence.habit == nil {
		return 0
	}
	return DaysBetween(adherence.start, adherence.today) + 1
}

// CalendarGrid yields every day of the Sunday-to-Saturday weeks covering month. Each
// iteration recomputes the states from the indexed check-ins.
func (adherence Adherence) CalendarGrid(month time.Time) iter.Seq[CalendarDayState] {
	if adherence.habit == nil {
		return func(func(CalendarDayState) bool) {}
	}

	gridStart, gridEnd := CalendarGridBounds(month)
	inMonth := MonthStart(month).Month()
	return func(yield func(CalendarDayState) bool) {
		for day := gridStart; !day.After(gridEnd); day = AddDays(day, 1) {
			if !yield(adherence.dayState(day, inMonth)) {
				return
			}
		}
	}
}

func (adherence Adherence) Summary() AdherenceSummary {
	return AdherenceSummary{
		Streak:      adherence.Streak(),
		SuccessRate: adherence.SuccessRate(),
		DaysActive:  adherence.DaysActive(),
		CheckIns:    len(adherence.checkIns),
	}
}

// scheduledDays counts scheduled weekdays in [from, to]. Whole weeks are counted at once and
// only the trailing partial week is walked.
func (adherence Adherence) scheduledDays(from time.Time, to time.Time) int {
	total := DaysBetween(from, to) + 1
	if total <= 0 {
		return 0
	}

	perWeek := 0
	for weekday := time.Sunday; weekday <= time.Saturday; weekday++ {
		if adherence.habit.IsScheduledOn(weekday) {
			perWeek++
		}
	}

	weeks := total / 7
	count := weeks * perWeek
	for day := AddDays(from, weeks*7); !day.After(to); day = AddDays(day, 1) {
		if adherence.habit.IsScheduledOn(day.Weekday()) {
			count++
		}
	}
	return count
}
