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

func TestStockSummary(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	ctx := context.Background()
	testDB := testutil.NewTestDB(t)
	defer testDB.Cleanup()
	testDB.TruncateAll(ctx)

	price := decimal.RequireFromString("1.00")
	testDB.SeedMovement(ctx, "Widget", "W-100", 10, price)
	testDB.SeedMovement(ctx, "Widget", "W-100", -3, price)
	testDB.SeedMovement(ctx, "Gadget", "G-200", 7, price)

	repo := postgres.NewMovementRepository(testDB.Pool)
	stockUC := usecase.NewStockUseCase(repo)
	reversalUC := usecase.NewReversalUseCase(repo)

	// Undone movements do not count towards stock.
	undone := testDB.SeedMovement(ctx, "Widget", "W-100", 100, price)
	if err := reversalUC.Undo(ctx, undone.ID); err != nil {
		t.Fatalf("failed to undo movement: %v", err)
	}

	summary, err := stockUC.Summarize(ctx)
	if err != nil {
		t.Fatalf("failed to summarize stock: %v", err)
	}
	if len(summary) != 2 {
		t.Fatalf("expected 2 summary rows, got %d", len(summary))
	}

	// Rows are ordered by product then model.
	if summary[0].ProductName != "Gadget" || summary[0].CurrentStock != 7 {
		t.Errorf("expected Gadget with stock 7, got %s with %d", summary[0].ProductName, summary[0].CurrentStock)
	}
	if summary[1].ProductName != "Widget" || summary[1].CurrentStock != 7 {
		t.Errorf("expected Widget with stock 7, got %s with %d", summary[1].ProductName, summary[1].CurrentStock)
	}

	stock, err := stockUC.CurrentStockFor(ctx, "Widget", "W-100")
	if err != nil {
		t.Fatalf("failed to get current stock: %v", err)
	}
	if stock != 7 {
		t.Errorf("expected current stock 7, got %d", stock)
	}

	// Unknown products report zero stock.
	stock, err = stockUC.CurrentStockFor(ctx, "Sprocket", "")
	if err != nil {
		t.Fatalf("failed to get current stock: %v", err)
	}
	if stock != 0 {
		t.Errorf("expected zero stock for unknown product, got %d", stock)
	}
}

func TestSumSelected(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	ctx := context.Background()
	testDB := testutil.NewTestDB(t)
	defer testDB.Cleanup()
	testDB.TruncateAll(ctx)

	first := testDB.SeedMovement(ctx, "Widget", "W-100", 10, decimal.RequireFromString("2.50"))
	second := testDB.SeedMovement(ctx, "Widget", "W-100", -3, decimal.RequireFromString("4.00"))
	undone := testDB.SeedMovement(ctx, "Widget", "W-100", 5, decimal.RequireFromString("100.00"))

	repo := postgres.NewMovementRepository(testDB.Pool)
	stockUC := usecase.NewStockUseCase(repo)
	reversalUC := usecase.NewReversalUseCase(repo)

	if err := reversalUC.Undo(ctx, undone.ID); err != nil {
		t.Fatalf("failed to undo movement: %v", err)
	}

	// Undone and missing ids are skipped, not errors.
	total, err := stockUC.SumSelected(ctx, []int64{first.ID, second.ID, undone.ID, 424242})
	if err != nil {
		t.Fatalf("failed to sum selection: %v", err)
	}
	if total.CountedEntries != 2 {
		t.Errorf("expected 2 counted entries, got %d", total.CountedEntries)
	}
	if !total.TotalAmount.Equal(decimal.RequireFromString("37")) {
		t.Errorf("expected total 37, got %s", total.TotalAmount)
	}

	// An empty selection totals to zero.
	total, err = stockUC.SumSelected(ctx, nil)
	if err != nil {
		t.Fatalf("failed to sum empty selection: %v", err)
	}
	if total.CountedEntries != 0 || !total.TotalAmount.IsZero() {
		t.Errorf("expected empty total, got %d entries and %s", total.CountedEntries, total.TotalAmount)
	}
}

func TestEmptyLedgerSummary(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	ctx := context.Background()
	testDB := testutil.NewTestDB(t)
	defer testDB.Cleanup()
	testDB.TruncateAll(ctx)

	stockUC := usecase.NewStockUseCase(postgres.NewMovementRepository(testDB.Pool))

	summary, err := stockUC.Summarize(ctx)
	if err != nil {
		t.Fatalf("failed to summarize empty ledger: %v", err)
	}
	if len(summary) != 0 {
		t.Errorf("expected empty summary, got %d rows", len(summary))
	}

	reconciliationUC := usecase.NewReconciliationUseCase(
		usecase.NewRecorderUseCase(postgres.NewMovementRepository(testDB.Pool)),
		postgres.NewMovementRepository(testDB.Pool),
	)
	if _, err := reconciliationUC.ExportAll(ctx); !errors.Is(err, domain.ErrNothingToExport) {
		t.Errorf("expected ErrNothingToExport, got %v", err)
	}
}
