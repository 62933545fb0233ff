package usecase

import (
	"context"
	"time"

	"github.com/MuchMorePower/Inventory-Management-System/internal/domain"
)

// MovementRepository defines the ledger store boundary. Every call is
// atomic on its own; no multi-statement transaction is required of the
// store.
type MovementRepository interface {
	// Insert durably persists a new movement and returns the
	// store-assigned id.
	Insert(ctx context.Context, movement *domain.Movement) (int64, error)
	// GetByID returns domain.ErrMovementNotFound when absent.
	GetByID(ctx context.Context, id int64) (*domain.Movement, error)
	// GetByIDs returns the movements that exist; missing ids are
	// simply absent from the result.
	GetByIDs(ctx context.Context, ids []int64) ([]*domain.Movement, error)
	// List returns movements matching the filter, ordered by id
	// descending.
	List(ctx context.Context, filter domain.Filter) ([]*domain.Movement, error)
	// SetUndone flips the undone flag in a single conditional write.
	// Returns domain.ErrMovementNotFound, domain.ErrAlreadyUndone or
	// domain.ErrNotUndone when the transition does not apply.
	SetUndone(ctx context.Context, id int64, undone bool) error
	// DeleteByID permanently removes a movement. Irreversible.
	DeleteByID(ctx context.Context, id int64) error
	// Summarize groups non-undone movements by (product, model, unit)
	// with a signed quantity sum, ordered by (product, model).
	Summarize(ctx context.Context) ([]domain.StockSummary, error)
}

// Cache defines caching operations for derived views.
type Cache interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

// IdempotencyStore handles idempotency key storage.
type IdempotencyStore interface {
	// CheckAndSet atomically checks if key exists, sets if not.
	// Returns (exists, existingValue, error).
	CheckAndSet(ctx context.Context, key string, response []byte, ttl time.Duration) (bool, []byte, error)
	// Update updates an existing key with the final response.
	Update(ctx context.Context, key string, response []byte, ttl time.Duration) error
}
