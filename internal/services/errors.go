package services

import "errors"

var (
	ErrInvalidSchedule  = errors.New("habit schedule must contain at least one weekday between Sunday and Saturday")
	ErrInvalidDuration  = errors.New("habit duration must be 15, 30 or 45 days")
	ErrInvalidHabit     = errors.New("invalid habit")
	ErrInvalidCheckIn   = errors.New("invalid check-in")
	ErrDuplicateCheckIn = errors.New("check-in already recorded for this date")
	ErrNoActiveHabit    = errors.New("no active habit")
	ErrNotFound         = errors.New("habit not found")

	ErrHabitLoadFailed   = errors.New("load habits failed")
	ErrHabitSaveFailed   = errors.New("save habit failed")
	ErrCheckInLoadFailed = errors.New("load check-ins failed")
	ErrCheckInSaveFailed = errors.New("save check-in failed")
)
