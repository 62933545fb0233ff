package usecase

import (
	"context"

	"github.com/MuchMorePower/Inventory-Management-System/internal/infrastructure/metrics"
)

// ReversalUseCase governs the Active/Undone/Deleted lifecycle:
// Active --undo--> Undone --redo--> Active, and delete from either
// state, which is terminal.
type ReversalUseCase struct {
	movementRepo MovementRepository
	cache        Cache
	metrics      *metrics.Metrics
}

// NewReversalUseCase creates a new ReversalUseCase.
func NewReversalUseCase(movementRepo MovementRepository) *ReversalUseCase {
	return &ReversalUseCase{movementRepo: movementRepo}
}

// WithCache attaches a summary cache to invalidate on transitions.
func (uc *ReversalUseCase) WithCache(cache Cache) *ReversalUseCase {
	uc.cache = cache
	return uc
}

// WithMetrics attaches metrics recording.
func (uc *ReversalUseCase) WithMetrics(m *metrics.Metrics) *ReversalUseCase {
	uc.metrics = m
	return uc
}

// Undo marks an active movement as undone, excluding it from
// aggregation and default listings. The transition is a single
// conditional store write; concurrent callers race at the store and
// exactly one wins.
func (uc *ReversalUseCase) Undo(ctx context.Context, id int64) error {
	if err := uc.movementRepo.SetUndone(ctx, id, true); err != nil {
		return err
	}

	uc.invalidateSummary(ctx)

	if uc.metrics != nil {
		uc.metrics.MovementsReversed.WithLabelValues("undo").Inc()
	}

	return nil
}

// Redo restores an undone movement to the active state.
func (uc *ReversalUseCase) Redo(ctx context.Context, id int64) error {
	if err := uc.movementRepo.SetUndone(ctx, id, false); err != nil {
		return err
	}

	uc.invalidateSummary(ctx)

	if uc.metrics != nil {
		uc.metrics.MovementsReversed.WithLabelValues("redo").Inc()
	}

	return nil
}

// Delete permanently removes a movement regardless of its
// Active/Undone state. There is no tombstone; the removal does not
// interact with undo history and cannot be reversed.
func (uc *ReversalUseCase) Delete(ctx context.Context, id int64) error {
	if err := uc.movementRepo.DeleteByID(ctx, id); err != nil {
		return err
	}

	uc.invalidateSummary(ctx)

	if uc.metrics != nil {
		uc.metrics.MovementsDeleted.Inc()
	}

	return nil
}

func (uc *ReversalUseCase) invalidateSummary(ctx context.Context) {
	if uc.cache != nil {
		_ = uc.cache.Delete(ctx, summaryCacheKey)
	}
}
