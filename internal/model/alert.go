package model

import "time"

// Alert kinds. The evaluator maintains at most one alert per (item, kind).
const (
	AlertLowStock = "Low Stock"
	AlertExpiry   = "Expiry"
)

// Alert is a derived notification record. Item-bound alerts are created and
// cleared by the alert evaluator; free-form alerts (no item reference) can be
// created directly through the API.
type Alert struct {
	ID        int       `gorm:"primaryKey" json:"id"`
	Kind      string    `gorm:"column:type;index;not null" json:"type"`
	Title     string    `gorm:"not null" json:"title"`
	Message   string    `json:"message"`
	ItemID    *int      `gorm:"index" json:"itemId"`
	CreatedAt time.Time `json:"-"`

	Item *Item `gorm:"foreignKey:ItemID" json:"-"`
}
