package models

import "time"

type DailyQuote struct {
	ID        string    `gorm:"primaryKey" json:"-"`
	OwnerID   string    `gorm:"not null;uniqueIndex:uidx_daily_quotes_owner_date" json:"owner_id"`
	Date      string    `gorm:"not null;uniqueIndex:uidx_daily_quotes_owner_date" json:"date"`
	Content   string    `gorm:"not null" json:"content"`
	CreatedAt time.Time `json:"created_at"`
}
