package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/MuchMorePower/Inventory-Management-System/internal/domain"
	"github.com/MuchMorePower/Inventory-Management-System/internal/infrastructure/metrics"
)

// summaryCacheKey is the cache key for the stock summary view. Every
// ledger mutation invalidates it.
const summaryCacheKey = "stock:summary"

// RecorderUseCase validates and encodes inbound/outbound intent into a
// signed ledger entry. The recorder, not the caller, applies the
// directional sign.
type RecorderUseCase struct {
	movementRepo MovementRepository
	cache        Cache
	metrics      *metrics.Metrics
}

// NewRecorderUseCase creates a new RecorderUseCase.
func NewRecorderUseCase(movementRepo MovementRepository) *RecorderUseCase {
	return &RecorderUseCase{movementRepo: movementRepo}
}

// WithCache attaches a summary cache to invalidate on writes.
func (uc *RecorderUseCase) WithCache(cache Cache) *RecorderUseCase {
	uc.cache = cache
	return uc
}

// WithMetrics attaches metrics recording.
func (uc *RecorderUseCase) WithMetrics(m *metrics.Metrics) *RecorderUseCase {
	uc.metrics = m
	return uc
}

// RecordInput carries the caller-supplied fields of a movement.
// Quantity is the unsigned count and must be positive; EffectiveDate
// is the business date in YYYY-MM-DD form.
type RecordInput struct {
	ProductName   string
	ModelNumber   string
	Unit          string
	Quantity      int64
	UnitPrice     decimal.Decimal
	EffectiveDate string
	Notes         string
	Buyer         string
	Seller        string
}

// RecordInbound records stock received. Stores +quantity.
func (uc *RecorderUseCase) RecordInbound(ctx context.Context, input RecordInput) (*domain.Movement, error) {
	return uc.record(ctx, input, domain.DirectionInbound)
}

// RecordOutbound records stock shipped. Stores -quantity. No
// stock-sufficiency check is performed.
func (uc *RecorderUseCase) RecordOutbound(ctx context.Context, input RecordInput) (*domain.Movement, error) {
	return uc.record(ctx, input, domain.DirectionOutbound)
}

func (uc *RecorderUseCase) record(ctx context.Context, input RecordInput, direction domain.Direction) (*domain.Movement, error) {
	if err := domain.Validate(input.ProductName, input.ModelNumber, input.Quantity, input.UnitPrice); err != nil {
		return nil, err
	}

	effectiveDate, err := domain.ParseEffectiveDate(input.EffectiveDate)
	if err != nil {
		return nil, err
	}

	quantity := input.Quantity
	if direction == domain.DirectionOutbound {
		quantity = -quantity
	}

	movement := &domain.Movement{
		CreatedAt:     time.Now().UTC(),
		EffectiveDate: effectiveDate,
		ProductName:   strings.TrimSpace(input.ProductName),
		ModelNumber:   strings.TrimSpace(input.ModelNumber),
		Unit:          strings.TrimSpace(input.Unit),
		Notes:         strings.TrimSpace(input.Notes),
		Buyer:         strings.TrimSpace(input.Buyer),
		Seller:        strings.TrimSpace(input.Seller),
		UnitPrice:     input.UnitPrice,
		TotalAmount:   input.UnitPrice.Mul(decimal.NewFromInt(input.Quantity)),
		Quantity:      quantity,
	}

	id, err := uc.movementRepo.Insert(ctx, movement)
	if err != nil {
		return nil, err
	}
	movement.ID = id

	uc.invalidateSummary(ctx)

	if uc.metrics != nil {
		uc.metrics.MovementsRecorded.WithLabelValues(direction.String()).Inc()
	}

	return movement, nil
}

func (uc *RecorderUseCase) invalidateSummary(ctx context.Context) {
	if uc.cache != nil {
		// Best effort: a stale summary expires on its own TTL.
		_ = uc.cache.Delete(ctx, summaryCacheKey)
	}
}
