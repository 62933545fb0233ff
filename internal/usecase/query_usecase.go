package usecase

import (
	"context"
	"strings"

	"github.com/MuchMorePower/Inventory-Management-System/internal/domain"
)

// QueryUseCase evaluates composite filters against the ledger.
type QueryUseCase struct {
	movementRepo MovementRepository
}

// NewQueryUseCase creates a new QueryUseCase.
func NewQueryUseCase(movementRepo MovementRepository) *QueryUseCase {
	return &QueryUseCase{movementRepo: movementRepo}
}

// List returns movements matching every present predicate of the
// filter, ordered by id descending (most recent insertion first; the
// effective date is user-editable and not a reliable recency signal).
// A zero-value filter lists all active movements.
func (uc *QueryUseCase) List(ctx context.Context, filter domain.Filter) ([]*domain.Movement, error) {
	filter.Product = strings.TrimSpace(filter.Product)
	filter.Model = strings.TrimSpace(filter.Model)
	filter.Buyer = strings.TrimSpace(filter.Buyer)
	filter.Seller = strings.TrimSpace(filter.Seller)

	return uc.movementRepo.List(ctx, filter)
}

// Get retrieves a single movement by id.
func (uc *QueryUseCase) Get(ctx context.Context, id int64) (*domain.Movement, error) {
	return uc.movementRepo.GetByID(ctx, id)
}
