package model

import "time"

// Supplier represents a vendor providing one or more items.
type Supplier struct {
	ID            int       `gorm:"primaryKey" json:"id"`
	Name          string    `gorm:"index;not null" json:"supplierName"`
	ContactPerson string    `gorm:"default:'Not specified'" json:"contactPerson"`
	Email         string    `gorm:"default:'No email'" json:"email"`
	PhoneNumber   string    `gorm:"default:'No phone'" json:"phoneNumber"`
	Address       string    `gorm:"default:'Address not provided'" json:"address"`
	ItemsProvided string    `gorm:"default:'Various items'" json:"itemsProvided"`
	Rating        float64   `gorm:"not null;default:0" json:"rating"`
	Status        string    `gorm:"not null;default:'Active'" json:"status"`
	CreatedAt     time.Time `json:"-"`
	UpdatedAt     time.Time `json:"-"`

	Items []Item `gorm:"foreignKey:SupplierID" json:"-"`
}
