package integration

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/MuchMorePower/Inventory-Management-System/internal/adapter/repository/postgres"
	"github.com/MuchMorePower/Inventory-Management-System/internal/domain"
	"github.com/MuchMorePower/Inventory-Management-System/internal/usecase"
	"github.com/MuchMorePower/Inventory-Management-System/tests/testutil"
)

func mustDate(t *testing.T, s string) time.Time {
	t.Helper()

	date, err := domain.ParseEffectiveDate(s)
	if err != nil {
		t.Fatalf("failed to parse date %q: %v", s, err)
	}
	return date
}

func TestListFilters(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	ctx := context.Background()
	testDB := testutil.NewTestDB(t)
	defer testDB.Cleanup()
	testDB.TruncateAll(ctx)

	price := decimal.RequireFromString("1.00")
	widgetIn := testDB.SeedMovementOn(ctx, "Widget", "W-100", 10, price, mustDate(t, "2024-03-01"))
	widgetOut := testDB.SeedMovementOn(ctx, "Widget", "W-100", -3, price, mustDate(t, "2024-03-05"))
	gadget := testDB.SeedMovementOn(ctx, "Gadget", "G-200", 7, price, mustDate(t, "2024-04-01"))

	repo := postgres.NewMovementRepository(testDB.Pool)
	queryUC := usecase.NewQueryUseCase(repo)
	reversalUC := usecase.NewReversalUseCase(repo)

	// Undone movements are excluded unless asked for.
	undone := testDB.SeedMovement(ctx, "Widget", "W-100", 2, price)
	if err := reversalUC.Undo(ctx, undone.ID); err != nil {
		t.Fatalf("failed to undo movement: %v", err)
	}

	from := mustDate(t, "2024-03-02")
	to := mustDate(t, "2024-03-31")

	tests := []struct {
		name    string
		filter  domain.Filter
		wantIDs []int64
	}{
		{
			name:    "no filter lists active newest first",
			filter:  domain.Filter{},
			wantIDs: []int64{gadget.ID, widgetOut.ID, widgetIn.ID},
		},
		{
			name:    "product substring is case-insensitive",
			filter:  domain.Filter{Product: "widg"},
			wantIDs: []int64{widgetOut.ID, widgetIn.ID},
		},
		{
			name:    "model substring",
			filter:  domain.Filter{Model: "G-2"},
			wantIDs: []int64{gadget.ID},
		},
		{
			name:    "outbound only",
			filter:  domain.Filter{Direction: domain.DirectionOutbound},
			wantIDs: []int64{widgetOut.ID},
		},
		{
			name:    "date window is inclusive",
			filter:  domain.Filter{From: &from, To: &to},
			wantIDs: []int64{widgetOut.ID},
		},
		{
			name:    "include undone",
			filter:  domain.Filter{IncludeUndone: true},
			wantIDs: []int64{undone.ID, gadget.ID, widgetOut.ID, widgetIn.ID},
		},
		{
			name:    "combined predicates",
			filter:  domain.Filter{Product: "Widget", Direction: domain.DirectionInbound},
			wantIDs: []int64{widgetIn.ID},
		},
		{
			name:    "no match",
			filter:  domain.Filter{Product: "Sprocket"},
			wantIDs: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			movements, err := queryUC.List(ctx, tt.filter)
			if err != nil {
				t.Fatalf("failed to list movements: %v", err)
			}
			if len(movements) != len(tt.wantIDs) {
				t.Fatalf("expected %d movements, got %d", len(tt.wantIDs), len(movements))
			}
			for i, want := range tt.wantIDs {
				if movements[i].ID != want {
					t.Errorf("position %d: expected id %d, got %d", i, want, movements[i].ID)
				}
			}
		})
	}
}
