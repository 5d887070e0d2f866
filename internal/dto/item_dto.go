package dto

import "invtrack/internal/model"

// ─── Request DTOs ────────────────────────────────────────────────────────────

// CreateItemRequest requires the full field set; there is no partial create.
type CreateItemRequest struct {
	Name              string      `json:"itemName"          validate:"required,min=1,max=120"`
	Category          string      `json:"category"          validate:"required"`
	Quantity          int         `json:"quantity"`
	Unit              string      `json:"unit"              validate:"required"`
	SupplierID        *int        `json:"supplierId"`
	LastRestocked     *model.Date `json:"lastRestocked"`
	ExpiryDate        *model.Date `json:"expiryDate"`
	LowStockThreshold int         `json:"lowStockThreshold" validate:"min=0"`
}

// UpdateItemRequest carries PATCH semantics: only non-nil fields are applied,
// everything absent from the request body is left untouched.
type UpdateItemRequest struct {
	Name              *string     `json:"itemName"          validate:"omitempty,min=1,max=120"`
	Category          *string     `json:"category"`
	Quantity          *int        `json:"quantity"`
	Unit              *string     `json:"unit"`
	SupplierID        *int        `json:"supplierId"`
	LastRestocked     *model.Date `json:"lastRestocked"`
	ExpiryDate        *model.Date `json:"expiryDate"`
	LowStockThreshold *int        `json:"lowStockThreshold" validate:"omitempty,min=0"`
}
