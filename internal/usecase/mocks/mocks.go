package mocks

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/MuchMorePower/Inventory-Management-System/internal/domain"
)

// MockMovementRepository is a mock implementation of
// usecase.MovementRepository backed by an in-memory map. Any Func
// field overrides the default behavior.
type MockMovementRepository struct {
	mu        sync.RWMutex
	movements map[int64]*domain.Movement
	nextID    int64

	InsertFunc     func(ctx context.Context, movement *domain.Movement) (int64, error)
	GetByIDFunc    func(ctx context.Context, id int64) (*domain.Movement, error)
	GetByIDsFunc   func(ctx context.Context, ids []int64) ([]*domain.Movement, error)
	ListFunc       func(ctx context.Context, filter domain.Filter) ([]*domain.Movement, error)
	SetUndoneFunc  func(ctx context.Context, id int64, undone bool) error
	DeleteByIDFunc func(ctx context.Context, id int64) error
	SummarizeFunc  func(ctx context.Context) ([]domain.StockSummary, error)
}

func NewMockMovementRepository() *MockMovementRepository {
	return &MockMovementRepository{
		movements: make(map[int64]*domain.Movement),
	}
}

func (m *MockMovementRepository) Insert(ctx context.Context, movement *domain.Movement) (int64, error) {
	if m.InsertFunc != nil {
		return m.InsertFunc(ctx, movement)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextID++
	stored := *movement
	stored.ID = m.nextID
	m.movements[stored.ID] = &stored
	return stored.ID, nil
}

func (m *MockMovementRepository) GetByID(ctx context.Context, id int64) (*domain.Movement, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if mv, ok := m.movements[id]; ok {
		copied := *mv
		return &copied, nil
	}
	return nil, domain.ErrMovementNotFound
}

func (m *MockMovementRepository) GetByIDs(ctx context.Context, ids []int64) ([]*domain.Movement, error) {
	if m.GetByIDsFunc != nil {
		return m.GetByIDsFunc(ctx, ids)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var movements []*domain.Movement
	for _, id := range ids {
		if mv, ok := m.movements[id]; ok {
			copied := *mv
			movements = append(movements, &copied)
		}
	}
	return movements, nil
}

func (m *MockMovementRepository) List(ctx context.Context, filter domain.Filter) ([]*domain.Movement, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var movements []*domain.Movement
	for id := m.nextID; id >= 1; id-- {
		mv, ok := m.movements[id]
		if !ok {
			continue
		}
		if !matches(mv, filter) {
			continue
		}
		copied := *mv
		movements = append(movements, &copied)
	}
	return movements, nil
}

func (m *MockMovementRepository) SetUndone(ctx context.Context, id int64, undone bool) error {
	if m.SetUndoneFunc != nil {
		return m.SetUndoneFunc(ctx, id, undone)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	mv, ok := m.movements[id]
	if !ok {
		return domain.ErrMovementNotFound
	}
	if mv.IsUndone == undone {
		if undone {
			return domain.ErrAlreadyUndone
		}
		return domain.ErrNotUndone
	}
	mv.IsUndone = undone
	return nil
}

func (m *MockMovementRepository) DeleteByID(ctx context.Context, id int64) error {
	if m.DeleteByIDFunc != nil {
		return m.DeleteByIDFunc(ctx, id)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.movements[id]; !ok {
		return domain.ErrMovementNotFound
	}
	delete(m.movements, id)
	return nil
}

func (m *MockMovementRepository) Summarize(ctx context.Context) ([]domain.StockSummary, error) {
	if m.SummarizeFunc != nil {
		return m.SummarizeFunc(ctx)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()

	type key struct{ product, model, unit string }
	stocks := make(map[key]int64)
	order := make([]key, 0)
	for id := int64(1); id <= m.nextID; id++ {
		mv, ok := m.movements[id]
		if !ok || mv.IsUndone {
			continue
		}
		k := key{mv.ProductName, mv.ModelNumber, mv.Unit}
		if _, seen := stocks[k]; !seen {
			order = append(order, k)
		}
		stocks[k] += mv.Quantity
	}

	// Ordered by (product, model) like the store query.
	sort.Slice(order, func(i, j int) bool {
		if order[i].product != order[j].product {
			return order[i].product < order[j].product
		}
		return order[i].model < order[j].model
	})

	summary := make([]domain.StockSummary, 0, len(order))
	for _, k := range order {
		summary = append(summary, domain.StockSummary{
			ProductName:  k.product,
			ModelNumber:  k.model,
			Unit:         k.unit,
			CurrentStock: stocks[k],
		})
	}
	return summary, nil
}

func matches(m *domain.Movement, f domain.Filter) bool {
	if !f.IncludeUndone && m.IsUndone {
		return false
	}
	if f.Product != "" && !containsFold(m.ProductName, f.Product) {
		return false
	}
	if f.Model != "" && !containsFold(m.ModelNumber, f.Model) {
		return false
	}
	if f.Buyer != "" && !containsFold(m.Buyer, f.Buyer) {
		return false
	}
	if f.Seller != "" && !containsFold(m.Seller, f.Seller) {
		return false
	}
	if f.Direction == domain.DirectionInbound && m.Quantity <= 0 {
		return false
	}
	if f.Direction == domain.DirectionOutbound && m.Quantity >= 0 {
		return false
	}
	if f.From != nil && m.EffectiveDate.Before(*f.From) {
		return false
	}
	if f.To != nil && m.EffectiveDate.After(*f.To) {
		return false
	}
	return true
}

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}

// MockCache is a mock implementation of usecase.Cache.
type MockCache struct {
	mu     sync.RWMutex
	values map[string]string

	GetFunc    func(ctx context.Context, key string) (string, error)
	SetFunc    func(ctx context.Context, key, value string, ttl time.Duration) error
	DeleteFunc func(ctx context.Context, key string) error

	Deletes int
}

func NewMockCache() *MockCache {
	return &MockCache{values: make(map[string]string)}
}

func (c *MockCache) Get(ctx context.Context, key string) (string, error) {
	if c.GetFunc != nil {
		return c.GetFunc(ctx, key)
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.values[key], nil
}

func (c *MockCache) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	if c.SetFunc != nil {
		return c.SetFunc(ctx, key, value, ttl)
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.values[key] = value
	return nil
}

func (c *MockCache) Delete(ctx context.Context, key string) error {
	if c.DeleteFunc != nil {
		return c.DeleteFunc(ctx, key)
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.values, key)
	c.Deletes++
	return nil
}
