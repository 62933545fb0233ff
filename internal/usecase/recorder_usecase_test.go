package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/MuchMorePower/Inventory-Management-System/internal/domain"
	"github.com/MuchMorePower/Inventory-Management-System/internal/usecase"
	"github.com/MuchMorePower/Inventory-Management-System/internal/usecase/mocks"
)

func validInput() usecase.RecordInput {
	return usecase.RecordInput{
		ProductName:   "widget",
		ModelNumber:   "M1",
		Unit:          "pcs",
		Quantity:      10,
		UnitPrice:     decimal.NewFromFloat(2.50),
		EffectiveDate: "2024-01-01",
	}
}

func TestRecorderUseCase_RecordInbound(t *testing.T) {
	tests := []struct {
		name        string
		mutate      func(*usecase.RecordInput)
		setupMocks  func(*mocks.MockMovementRepository)
		expectError error
	}{
		{
			name: "successful inbound record",
		},
		{
			name:        "zero quantity",
			mutate:      func(in *usecase.RecordInput) { in.Quantity = 0 },
			expectError: domain.ErrInvalidQuantity,
		},
		{
			name:        "negative quantity",
			mutate:      func(in *usecase.RecordInput) { in.Quantity = -5 },
			expectError: domain.ErrInvalidQuantity,
		},
		{
			name:        "negative price",
			mutate:      func(in *usecase.RecordInput) { in.UnitPrice = decimal.NewFromInt(-1) },
			expectError: domain.ErrInvalidPrice,
		},
		{
			name:        "malformed date",
			mutate:      func(in *usecase.RecordInput) { in.EffectiveDate = "01.01.2024" },
			expectError: domain.ErrInvalidDate,
		},
		{
			name:        "missing product",
			mutate:      func(in *usecase.RecordInput) { in.ProductName = " " },
			expectError: domain.ErrMissingProduct,
		},
		{
			name:        "missing model",
			mutate:      func(in *usecase.RecordInput) { in.ModelNumber = "" },
			expectError: domain.ErrMissingModel,
		},
		{
			name: "store error propagates unchanged",
			setupMocks: func(repo *mocks.MockMovementRepository) {
				repo.InsertFunc = func(ctx context.Context, m *domain.Movement) (int64, error) {
					return 0, errors.New("connection reset")
				}
			},
			expectError: errors.New("connection reset"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := mocks.NewMockMovementRepository()
			if tt.setupMocks != nil {
				tt.setupMocks(repo)
			}

			input := validInput()
			if tt.mutate != nil {
				tt.mutate(&input)
			}

			uc := usecase.NewRecorderUseCase(repo)
			movement, err := uc.RecordInbound(context.Background(), input)

			if tt.expectError != nil {
				if err == nil || err.Error() != tt.expectError.Error() {
					t.Errorf("expected error %v, got %v", tt.expectError, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if movement.ID == 0 {
				t.Error("expected store-assigned id")
			}
			if movement.Quantity != 10 {
				t.Errorf("inbound quantity must be +10, got %d", movement.Quantity)
			}
			if !movement.TotalAmount.Equal(decimal.NewFromFloat(25.0)) {
				t.Errorf("expected total 25, got %s", movement.TotalAmount)
			}
			if movement.IsUndone {
				t.Error("new movement must be active")
			}
		})
	}
}

func TestRecorderUseCase_RecordOutbound(t *testing.T) {
	repo := mocks.NewMockMovementRepository()
	uc := usecase.NewRecorderUseCase(repo)

	input := validInput()
	input.Quantity = 3

	movement, err := uc.RecordOutbound(context.Background(), input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if movement.Quantity != -3 {
		t.Errorf("outbound quantity must be -3, got %d", movement.Quantity)
	}
	if movement.Magnitude() != 3 {
		t.Errorf("magnitude must equal the entered count, got %d", movement.Magnitude())
	}
	// total_amount is abs(quantity) * unit_price, never negative.
	if !movement.TotalAmount.Equal(decimal.NewFromFloat(7.5)) {
		t.Errorf("expected total 7.5, got %s", movement.TotalAmount)
	}

	if _, err := uc.RecordOutbound(context.Background(), usecase.RecordInput{
		ProductName: "widget", ModelNumber: "M1", Quantity: 0,
		UnitPrice: decimal.NewFromInt(1), EffectiveDate: "2024-01-01",
	}); err != domain.ErrInvalidQuantity {
		t.Errorf("outbound with non-positive quantity must be rejected, got %v", err)
	}
}

func TestRecorderUseCase_CallerTotalIsIgnored(t *testing.T) {
	repo := mocks.NewMockMovementRepository()

	var stored *domain.Movement
	repo.InsertFunc = func(ctx context.Context, m *domain.Movement) (int64, error) {
		stored = m
		return 1, nil
	}

	uc := usecase.NewRecorderUseCase(repo)

	input := validInput()
	input.Quantity = 4
	input.UnitPrice = decimal.NewFromInt(5)

	if _, err := uc.RecordInbound(context.Background(), input); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !stored.TotalAmount.Equal(decimal.NewFromInt(20)) {
		t.Errorf("total must be computed internally, got %s", stored.TotalAmount)
	}
}

func TestRecorderUseCase_InvalidatesSummaryCache(t *testing.T) {
	repo := mocks.NewMockMovementRepository()
	cache := mocks.NewMockCache()

	uc := usecase.NewRecorderUseCase(repo).WithCache(cache)

	if _, err := uc.RecordInbound(context.Background(), validInput()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cache.Deletes != 1 {
		t.Errorf("expected one cache invalidation, got %d", cache.Deletes)
	}

	// Validation failures must not touch the cache.
	bad := validInput()
	bad.Quantity = 0
	if _, err := uc.RecordInbound(context.Background(), bad); err == nil {
		t.Fatal("expected validation error")
	}
	if cache.Deletes != 1 {
		t.Errorf("expected no extra invalidation, got %d", cache.Deletes)
	}
}
