package dto

import (
	"github.com/shopspring/decimal"

	"invtrack/internal/model"
)

// CreateTransactionRequest posts a purchase or sale. The type string is
// matched case-insensitively; unknown types are stored but move no stock.
// ItemID is optional — a transaction without one (or with an unknown item id)
// is persisted as-is and mutates nothing.
type CreateTransactionRequest struct {
	Date        model.Date      `json:"date"        validate:"required"`
	Description string          `json:"description" validate:"required"`
	Amount      decimal.Decimal `json:"amount"      validate:"required"`
	Quantity    int             `json:"quantity"    validate:"min=0"`
	Type        string          `json:"type"        validate:"required"`
	Category    *string         `json:"category"`
	Status      *string         `json:"status"`
	ItemID      *int            `json:"itemId"`
}
