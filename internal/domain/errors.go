package domain

import "errors"

var (
	// Validation errors
	ErrMissingProduct  = errors.New("product name is required")
	ErrMissingModel    = errors.New("model number is required")
	ErrInvalidQuantity = errors.New("quantity must be positive")
	ErrInvalidPrice    = errors.New("unit price must not be negative")
	ErrInvalidDate     = errors.New("effective date must be a calendar date (YYYY-MM-DD)")

	// Lookup errors
	ErrMovementNotFound = errors.New("movement not found")

	// Reversal errors
	ErrAlreadyUndone = errors.New("movement is already undone")
	ErrNotUndone     = errors.New("movement is not undone")

	// Reconciliation errors
	ErrMissingColumn    = errors.New("required column missing")
	ErrNothingToExport  = errors.New("no movements to export")
	ErrUnknownDirection = errors.New("type must be Inbound or Outbound")
)
