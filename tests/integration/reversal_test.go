package integration

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/MuchMorePower/Inventory-Management-System/internal/adapter/repository/postgres"
	"github.com/MuchMorePower/Inventory-Management-System/internal/domain"
	"github.com/MuchMorePower/Inventory-Management-System/internal/usecase"
	"github.com/MuchMorePower/Inventory-Management-System/tests/testutil"
)

func TestReversalLifecycle(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	ctx := context.Background()
	testDB := testutil.NewTestDB(t)
	defer testDB.Cleanup()
	testDB.TruncateAll(ctx)

	repo := postgres.NewMovementRepository(testDB.Pool).WithRetrier(postgres.NewRetrier())
	reversalUC := usecase.NewReversalUseCase(repo)
	queryUC := usecase.NewQueryUseCase(repo)

	movement := testDB.SeedMovement(ctx, "Widget", "W-100", 10, decimal.RequireFromString("2.50"))

	// Undo excludes the movement from active views.
	if err := reversalUC.Undo(ctx, movement.ID); err != nil {
		t.Fatalf("failed to undo movement: %v", err)
	}

	fetched, err := queryUC.Get(ctx, movement.ID)
	if err != nil {
		t.Fatalf("failed to fetch movement: %v", err)
	}
	if !fetched.IsUndone {
		t.Error("expected movement to be undone")
	}
	if fetched.StatusLabel() != domain.StatusUndone {
		t.Errorf("expected status %q, got %q", domain.StatusUndone, fetched.StatusLabel())
	}

	active, err := queryUC.List(ctx, domain.Filter{})
	if err != nil {
		t.Fatalf("failed to list active movements: %v", err)
	}
	if len(active) != 0 {
		t.Errorf("expected no active movements after undo, got %d", len(active))
	}

	// A second undo is rejected.
	if err := reversalUC.Undo(ctx, movement.ID); !errors.Is(err, domain.ErrAlreadyUndone) {
		t.Errorf("expected ErrAlreadyUndone, got %v", err)
	}

	// Redo restores it.
	if err := reversalUC.Redo(ctx, movement.ID); err != nil {
		t.Fatalf("failed to redo movement: %v", err)
	}

	active, err = queryUC.List(ctx, domain.Filter{})
	if err != nil {
		t.Fatalf("failed to list active movements: %v", err)
	}
	if len(active) != 1 {
		t.Fatalf("expected one active movement after redo, got %d", len(active))
	}

	// Redo of an active movement is rejected.
	if err := reversalUC.Redo(ctx, movement.ID); !errors.Is(err, domain.ErrNotUndone) {
		t.Errorf("expected ErrNotUndone, got %v", err)
	}

	// Delete removes the row outright.
	if err := reversalUC.Delete(ctx, movement.ID); err != nil {
		t.Fatalf("failed to delete movement: %v", err)
	}
	if _, err := queryUC.Get(ctx, movement.ID); !errors.Is(err, domain.ErrMovementNotFound) {
		t.Errorf("expected ErrMovementNotFound after delete, got %v", err)
	}
	if err := reversalUC.Delete(ctx, movement.ID); !errors.Is(err, domain.ErrMovementNotFound) {
		t.Errorf("expected ErrMovementNotFound on repeated delete, got %v", err)
	}
}

func TestReversalMissingMovement(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	ctx := context.Background()
	testDB := testutil.NewTestDB(t)
	defer testDB.Cleanup()
	testDB.TruncateAll(ctx)

	reversalUC := usecase.NewReversalUseCase(postgres.NewMovementRepository(testDB.Pool))

	if err := reversalUC.Undo(ctx, 424242); !errors.Is(err, domain.ErrMovementNotFound) {
		t.Errorf("expected ErrMovementNotFound from undo, got %v", err)
	}
	if err := reversalUC.Redo(ctx, 424242); !errors.Is(err, domain.ErrMovementNotFound) {
		t.Errorf("expected ErrMovementNotFound from redo, got %v", err)
	}
}

func TestDeleteUndoneMovement(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	ctx := context.Background()
	testDB := testutil.NewTestDB(t)
	defer testDB.Cleanup()
	testDB.TruncateAll(ctx)

	repo := postgres.NewMovementRepository(testDB.Pool)
	reversalUC := usecase.NewReversalUseCase(repo)

	// Deletion works regardless of lifecycle state.
	movement := testDB.SeedMovement(ctx, "Widget", "W-100", 5, decimal.RequireFromString("1.00"))
	if err := reversalUC.Undo(ctx, movement.ID); err != nil {
		t.Fatalf("failed to undo movement: %v", err)
	}
	if err := reversalUC.Delete(ctx, movement.ID); err != nil {
		t.Fatalf("failed to delete undone movement: %v", err)
	}
}
