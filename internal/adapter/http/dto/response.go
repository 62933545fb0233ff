package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/MuchMorePower/Inventory-Management-System/internal/domain"
	"github.com/MuchMorePower/Inventory-Management-System/internal/usecase"
)

// MovementResponse represents a movement in API responses. Quantity is
// the unsigned magnitude; Type carries the direction.
type MovementResponse struct {
	ID            int64           `json:"id"`
	EffectiveDate string          `json:"effective_date"`
	ProductName   string          `json:"product_name"`
	ModelNumber   string          `json:"model_number"`
	Unit          string          `json:"unit,omitempty"`
	Type          string          `json:"type"`
	Quantity      int64           `json:"quantity"`
	UnitPrice     decimal.Decimal `json:"unit_price"`
	TotalAmount   decimal.Decimal `json:"total_amount"`
	Status        string          `json:"status"`
	IsUndone      bool            `json:"is_undone"`
	Notes         string          `json:"notes,omitempty"`
	Buyer         string          `json:"buyer,omitempty"`
	Seller        string          `json:"seller,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
}

// MovementFromDomain converts a domain movement to a response.
func MovementFromDomain(m *domain.Movement) *MovementResponse {
	return &MovementResponse{
		ID:            m.ID,
		EffectiveDate: m.EffectiveDate.Format(domain.DateLayout),
		ProductName:   m.ProductName,
		ModelNumber:   m.ModelNumber,
		Unit:          m.Unit,
		Type:          m.Direction().String(),
		Quantity:      m.Magnitude(),
		UnitPrice:     m.UnitPrice,
		TotalAmount:   m.TotalAmount,
		Status:        m.StatusLabel(),
		IsUndone:      m.IsUndone,
		Notes:         m.Notes,
		Buyer:         m.Buyer,
		Seller:        m.Seller,
		CreatedAt:     m.CreatedAt,
	}
}

// MovementsFromDomain converts domain movements to responses.
func MovementsFromDomain(movements []*domain.Movement) []*MovementResponse {
	result := make([]*MovementResponse, len(movements))
	for i, m := range movements {
		result[i] = MovementFromDomain(m)
	}
	return result
}

// StockSummaryResponse represents one stock group in API responses.
type StockSummaryResponse struct {
	ProductName  string `json:"product_name"`
	ModelNumber  string `json:"model_number"`
	Unit         string `json:"unit,omitempty"`
	CurrentStock int64  `json:"current_stock"`
}

// StockSummaryFromDomain converts a domain stock summary to responses.
func StockSummaryFromDomain(summary []domain.StockSummary) []StockSummaryResponse {
	result := make([]StockSummaryResponse, len(summary))
	for i, s := range summary {
		result[i] = StockSummaryResponse{
			ProductName:  s.ProductName,
			ModelNumber:  s.ModelNumber,
			Unit:         s.Unit,
			CurrentStock: s.CurrentStock,
		}
	}
	return result
}

// SelectionTotalResponse represents a selection total in API responses.
type SelectionTotalResponse struct {
	TotalAmount    decimal.Decimal `json:"total_amount"`
	CountedEntries int             `json:"counted_entries"`
}

// SelectionTotalFromDomain converts a domain selection total.
func SelectionTotalFromDomain(t domain.SelectionTotal) SelectionTotalResponse {
	return SelectionTotalResponse{
		TotalAmount:    t.TotalAmount,
		CountedEntries: t.CountedEntries,
	}
}

// ImportReportResponse represents a bulk import outcome. Messages are
// capped; the counts are not. Error is set when a store failure
// aborted the import mid-way.
type ImportReportResponse struct {
	BatchID      string   `json:"batch_id"`
	SuccessCount int      `json:"success_count"`
	FailCount    int      `json:"fail_count"`
	Messages     []string `json:"messages,omitempty"`
	Error        string   `json:"error,omitempty"`
}

// ImportReportFromUseCase converts an import report to a response.
func ImportReportFromUseCase(report *usecase.ImportReport) *ImportReportResponse {
	return &ImportReportResponse{
		BatchID:      report.BatchID,
		SuccessCount: report.SuccessCount,
		FailCount:    report.FailCount,
		Messages:     report.LimitedMessages(),
	}
}

// ErrorResponse represents an error in API responses.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
