package dto

import "invtrack/internal/model"

// CreateAlertRequest creates a free-form alert through the API. Item-bound
// low-stock and expiry alerts are derived by the evaluator, not posted here.
type CreateAlertRequest struct {
	Kind    string `json:"type"    validate:"required"`
	Title   string `json:"title"   validate:"required"`
	Message string `json:"message"`
	ItemID  *int   `json:"itemId"`
}

// CreateEventRequest adds a calendar entry.
type CreateEventRequest struct {
	Title       string     `json:"title"       validate:"required"`
	Description string     `json:"description"`
	Date        model.Date `json:"date"        validate:"required"`
}
