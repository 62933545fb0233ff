package handler

import (
	"encoding/json"
	"net/http"

	"github.com/MuchMorePower/Inventory-Management-System/internal/adapter/http/dto"
	"github.com/MuchMorePower/Inventory-Management-System/internal/usecase"
)

// StockHandler handles stock aggregation requests.
type StockHandler struct {
	stockUC *usecase.StockUseCase
}

// NewStockHandler creates a new StockHandler.
func NewStockHandler(stockUC *usecase.StockUseCase) *StockHandler {
	return &StockHandler{stockUC: stockUC}
}

// Summary returns current stock per (product, model, unit) group.
func (h *StockHandler) Summary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.stockUC.Summarize(r.Context())
	if err != nil {
		writeError(w, mapDomainError(err), "failed to summarize stock", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.StockSummaryFromDomain(summary))
}

// CurrentStock returns the stock level of one (product, model) pair.
func (h *StockHandler) CurrentStock(w http.ResponseWriter, r *http.Request) {
	product := r.URL.Query().Get("product")
	model := r.URL.Query().Get("model")
	if product == "" {
		writeError(w, http.StatusBadRequest, "missing product", "")
		return
	}

	stock, err := h.stockUC.CurrentStockFor(r.Context(), product, model)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to get current stock", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.StockSummaryResponse{
		ProductName:  product,
		ModelNumber:  model,
		CurrentStock: stock,
	})
}

// SumSelected totals the active movements among the selected ids.
func (h *StockHandler) SumSelected(w http.ResponseWriter, r *http.Request) {
	var req dto.SumSelectedRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	total, err := h.stockUC.SumSelected(r.Context(), req.IDs)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to sum movements", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.SelectionTotalFromDomain(total))
}
