package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction types recognized by the inventory mutator. Comparison is
// case-insensitive; any other type string is recorded but moves no stock.
const (
	TransactionPurchase = "purchase"
	TransactionSale     = "sale"
)

// Transaction records a purchase or sale. Posting one with an item reference
// moves that item's quantity; deleting one later does NOT move it back.
type Transaction struct {
	ID          int             `gorm:"primaryKey" json:"id"`
	Date        Date            `gorm:"not null" json:"date"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"amount"`
	Quantity    int             `gorm:"not null;default:0" json:"quantity"`
	Type        string          `gorm:"not null" json:"type"`
	Category    string          `gorm:"default:'General'" json:"category"`
	Status      string          `gorm:"default:'Completed'" json:"status"`
	// ItemID is a plain indexed column, deliberately without a foreign key:
	// a transaction referencing an unknown item is still persisted.
	ItemID    *int      `gorm:"index" json:"itemId"`
	CreatedAt time.Time `json:"-"`
}
