package db

import "gorm.io/gorm"

// Repositories groups the persistence gateway for habits, check-ins and daily quotes.
type Repositories struct {
	Habits   *HabitRepository
	CheckIns *CheckInRepository
	Quotes   *QuoteRepository
}

func NewRepositories(database *gorm.DB) *Repositories {
	return &Repositories{
		Habits:   NewHabitRepository(database),
		CheckIns: NewCheckInRepository(database),
		Quotes:   NewQuoteRepository(database),
	}
}
