package model

import "time"

// Event is a plain calendar entry; it has no relation to other entities.
type Event struct {
	ID          int       `gorm:"primaryKey" json:"id"`
	Title       string    `gorm:"not null" json:"title"`
	Description string    `json:"description"`
	Date        Date      `gorm:"not null" json:"date"`
	CreatedAt   time.Time `json:"-"`
}
