package model

import "time"

// Item is a tracked stock-keeping unit. Quantity is mutated exclusively by
// transaction postings and item updates; it is allowed to go negative so that
// oversold stock stays visible instead of being silently clamped.
type Item struct {
	ID                int       `gorm:"primaryKey" json:"id"`
	Name              string    `gorm:"index;not null" json:"itemName"`
	Category          string    `json:"category"`
	Quantity          int       `gorm:"not null" json:"quantity"`
	Unit              string    `json:"unit"`
	SupplierID        *int      `gorm:"index" json:"supplierId"`
	LastRestocked     *Date     `json:"lastRestocked"`
	ExpiryDate        *Date     `json:"expiryDate"`
	LowStockThreshold int       `gorm:"not null;default:0" json:"lowStockThreshold"`
	CreatedAt         time.Time `json:"-"`
	UpdatedAt         time.Time `json:"-"`

	Supplier *Supplier `gorm:"foreignKey:SupplierID" json:"-"`
}

// LowOnStock reports whether the item is at or below its reorder threshold.
func (i *Item) LowOnStock() bool { return i.Quantity <= i.LowStockThreshold }

// Expired reports whether the item's expiry date is on or before today.
func (i *Item) Expired(today Date) bool {
	return i.ExpiryDate != nil && !i.ExpiryDate.After(today.Time)
}
