package models

import "time"

type CheckInStatus string

const (
	StatusCompleted CheckInStatus = "completed"
	StatusPartial   CheckInStatus = "partial"
	StatusMissed    CheckInStatus = "missed"
)

const (
	TimeOfDayMorning   = "morning"
	TimeOfDayAfternoon = "afternoon"
	TimeOfDayEvening   = "evening"
)

const (
	MinLevel = 1
	MaxLevel = 10
)

type CheckIn struct {
	ID               string        `gorm:"primaryKey" json:"id"`
	HabitID          string        `gorm:"not null;uniqueIndex:uidx_checkins_habit_date" json:"habit_id"`
	OwnerID          string        `gorm:"not null;index" json:"owner_id"`
	Date             string        `gorm:"not null;uniqueIndex:uidx_checkins_habit_date" json:"date"`
	Status           CheckInStatus `gorm:"not null" json:"status"`
	Challenges       []string      `gorm:"serializer:json" json:"challenges,omitempty"`
	Motivations      []string      `gorm:"serializer:json" json:"motivations,omitempty"`
	SabotagePatterns []string      `gorm:"serializer:json" json:"sabotage_patterns,omitempty"`
	TimeOfDay        string        `json:"time_of_day,omitempty"`
	EnergyLevel      *int          `json:"energy_level,omitempty"`
	Satisfaction     *int          `json:"satisfaction,omitempty"`
	Mood             *int          `json:"mood,omitempty"`
	Reflection       string        `json:"reflection,omitempty"`
	CreatedAt        time.Time     `json:"created_at"`
}

func (CheckIn) TableName() string {
	return "checkins"
}

func IsValidStatus(status CheckInStatus) bool {
	switch status {
	case StatusCompleted, StatusPartial, StatusMissed:
		return true
	default:
		return false
	}
}

// Succeeded reports whether the check-in counts toward adherence.
func (status CheckInStatus) Succeeded() bool {
	return status == StatusCompleted || status == StatusPartial
}

func IsValidTimeOfDay(value string) bool {
	switch value {
	case "", TimeOfDayMorning, TimeOfDayAfternoon, TimeOfDayEvening:
		return true
	default:
		return false
	}
}
