package dto

import (
	"github.com/shopspring/decimal"

	"github.com/MuchMorePower/Inventory-Management-System/internal/usecase"
)

// RecordMovementRequest represents a request to record a movement. The
// quantity is unsigned; Type selects the direction.
type RecordMovementRequest struct {
	Type          string          `json:"type"`
	ProductName   string          `json:"product_name"`
	ModelNumber   string          `json:"model_number"`
	Unit          string          `json:"unit,omitempty"`
	Quantity      int64           `json:"quantity"`
	UnitPrice     decimal.Decimal `json:"unit_price"`
	EffectiveDate string          `json:"effective_date"`
	Notes         string          `json:"notes,omitempty"`
	Buyer         string          `json:"buyer,omitempty"`
	Seller        string          `json:"seller,omitempty"`
}

// ToUseCaseInput converts to use case input.
func (r *RecordMovementRequest) ToUseCaseInput() usecase.RecordInput {
	return usecase.RecordInput{
		ProductName:   r.ProductName,
		ModelNumber:   r.ModelNumber,
		Unit:          r.Unit,
		Quantity:      r.Quantity,
		UnitPrice:     r.UnitPrice,
		EffectiveDate: r.EffectiveDate,
		Notes:         r.Notes,
		Buyer:         r.Buyer,
		Seller:        r.Seller,
	}
}

// SumSelectedRequest represents a request to total selected movements.
type SumSelectedRequest struct {
	IDs []int64 `json:"ids"`
}
