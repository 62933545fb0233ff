package domain

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// DateLayout is the calendar-date format used for effective dates.
const DateLayout = "2006-01-02"

// Movement represents a single ledger entry: one recorded inbound or
// outbound stock movement. Quantity is signed; positive means inbound,
// negative means outbound.
type Movement struct {
	CreatedAt     time.Time
	EffectiveDate time.Time
	ProductName   string
	ModelNumber   string
	Unit          string
	Notes         string
	Buyer         string
	Seller        string
	UnitPrice     decimal.Decimal
	TotalAmount   decimal.Decimal
	ID            int64
	Quantity      int64
	IsUndone      bool
}

// Direction returns the movement direction derived from the quantity sign.
func (m *Movement) Direction() Direction {
	if m.Quantity > 0 {
		return DirectionInbound
	}

	return DirectionOutbound
}

// Magnitude returns the unsigned quantity as entered by the user.
func (m *Movement) Magnitude() int64 {
	if m.Quantity < 0 {
		return -m.Quantity
	}

	return m.Quantity
}

// StatusLabel returns the human-readable lifecycle state.
func (m *Movement) StatusLabel() string {
	if m.IsUndone {
		return StatusUndone
	}

	return StatusActive
}

// Lifecycle state labels.
const (
	StatusActive = "Active"
	StatusUndone = "Undone"
)

// Validate checks the caller-supplied fields of a movement request.
// The quantity here is the unsigned user-entered count; the recorder
// applies the directional sign after validation.
func Validate(productName, modelNumber string, quantity int64, unitPrice decimal.Decimal) error {
	if strings.TrimSpace(productName) == "" {
		return ErrMissingProduct
	}

	if strings.TrimSpace(modelNumber) == "" {
		return ErrMissingModel
	}

	if quantity <= 0 {
		return ErrInvalidQuantity
	}

	if unitPrice.IsNegative() {
		return ErrInvalidPrice
	}

	return nil
}

// ParseEffectiveDate parses a user-supplied business date. Malformed
// input is a validation error, never silently coerced.
func ParseEffectiveDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}

	return t, nil
}
