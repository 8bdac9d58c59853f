package models

import "time"

const (
	DurationShort  = 15
	DurationMedium = 30
	DurationLong   = 45
)

type Habit struct {
	ID                 string         `gorm:"primaryKey" json:"id"`
	OwnerID            string         `gorm:"not null;index" json:"owner_id"`
	Name               string         `gorm:"not null" json:"name"`
	Motivation         string         `json:"motivation"`
	ScheduledWeekdays  []time.Weekday `gorm:"serializer:json;not null" json:"scheduled_weekdays"`
	TargetDurationDays int            `gorm:"not null" json:"target_duration_days"`
	StartDate          string         `gorm:"not null" json:"start_date"`
	IsActive           bool           `gorm:"not null" json:"is_active"`
	CreatedAt          time.Time      `json:"created_at"`
	UpdatedAt          time.Time      `json:"updated_at"`
}

func IsValidDuration(days int) bool {
	switch days {
	case DurationShort, DurationMedium, DurationLong:
		return true
	default:
		return false
	}
}

// IsScheduledOn reports whether weekday belongs to the habit's weekly schedule.
func (habit Habit) IsScheduledOn(weekday time.Weekday) bool {
	for _, scheduled := range habit.ScheduledWeekdays {
		if scheduled == weekday {
			return true
		}
	}
	return false
}
