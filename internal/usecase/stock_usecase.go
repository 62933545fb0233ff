package usecase

import (
	"context"
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"

	"github.com/MuchMorePower/Inventory-Management-System/internal/domain"
)

// StockUseCase derives current-stock summaries from the ledger.
type StockUseCase struct {
	movementRepo MovementRepository
	cache        Cache
	cacheTTL     time.Duration
}

// NewStockUseCase creates a new StockUseCase.
func NewStockUseCase(movementRepo MovementRepository) *StockUseCase {
	return &StockUseCase{movementRepo: movementRepo}
}

// WithCache attaches a cache for the summary view.
func (uc *StockUseCase) WithCache(cache Cache, ttl time.Duration) *StockUseCase {
	uc.cache = cache
	uc.cacheTTL = ttl
	return uc
}

// Summarize groups all non-undone movements by (product, model, unit)
// with currentStock = sum(quantity). Zero-stock groups stay visible.
func (uc *StockUseCase) Summarize(ctx context.Context) ([]domain.StockSummary, error) {
	if uc.cache != nil {
		if cached, err := uc.cache.Get(ctx, summaryCacheKey); err == nil && cached != "" {
			var summary []domain.StockSummary
			if err := json.Unmarshal([]byte(cached), &summary); err == nil {
				return summary, nil
			}
		}
	}

	summary, err := uc.movementRepo.Summarize(ctx)
	if err != nil {
		return nil, err
	}

	if uc.cache != nil {
		if encoded, err := json.Marshal(summary); err == nil {
			_ = uc.cache.Set(ctx, summaryCacheKey, string(encoded), uc.cacheTTL)
		}
	}

	return summary, nil
}

// CurrentStockFor looks up the current stock of a (product, model)
// pair within the summary. A pair with no entries yields 0, never an
// error.
func (uc *StockUseCase) CurrentStockFor(ctx context.Context, productName, modelNumber string) (int64, error) {
	summary, err := uc.Summarize(ctx)
	if err != nil {
		return 0, err
	}

	for _, row := range summary {
		if row.ProductName == productName && row.ModelNumber == modelNumber {
			return row.CurrentStock, nil
		}
	}

	return 0, nil
}

// SumSelected totals the amounts of the selected movements. Ids that
// are missing or undone are silently skipped; callers rely on this to
// tolerate stale selections.
func (uc *StockUseCase) SumSelected(ctx context.Context, ids []int64) (domain.SelectionTotal, error) {
	total := domain.SelectionTotal{TotalAmount: decimal.Zero}

	if len(ids) == 0 {
		return total, nil
	}

	movements, err := uc.movementRepo.GetByIDs(ctx, ids)
	if err != nil {
		return total, err
	}

	for _, m := range movements {
		if m.IsUndone {
			continue
		}
		total.TotalAmount = total.TotalAmount.Add(m.TotalAmount)
		total.CountedEntries++
	}

	return total, nil
}
