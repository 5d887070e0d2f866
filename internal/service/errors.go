package service

import "errors"

// Sentinel errors mapped to client-visible statuses at the handler layer.
var (
	ErrItemNotFound        = errors.New("item not found")
	ErrTransactionNotFound = errors.New("transaction not found")
)
