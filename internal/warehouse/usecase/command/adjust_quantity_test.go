package command

import (
	"context"
	"errors"
	"testing"

	"github.com/gamebay/retail-ops/internal/warehouse/domain"
)

func seedWarehouse(t *testing.T, repo *fakeWarehouseRepo, productID uint, stockNew int) {
	t.Helper()
	if err := repo.Create(&domain.Warehouse{ProductID: productID, StockNew: stockNew}); err != nil {
		t.Fatalf("seed failed: %v", err)
	}
}

func TestAdjustQuantityDecrement(t *testing.T) {
	repo := newFakeWarehouseRepo(newFakeUnitRepo())
	seedWarehouse(t, repo, 1, 5)
	handler := NewAdjustQuantityHandler(repo)

	w, err := handler.Handle(context.Background(), AdjustQuantityCommand{
		ProductID: 1,
		Condition: domain.ConditionNew,
		Location:  domain.LocationInStock,
		Delta:     -2,
	})
	if err != nil {
		t.Fatalf("adjust failed: %v", err)
	}
	if w.StockNew != 3 {
		t.Fatalf("expected 3, got %d", w.StockNew)
	}
}

// Counters never go below zero no matter how far the cumulative delta runs.
func TestAdjustQuantityClampsAtZero(t *testing.T) {
	repo := newFakeWarehouseRepo(newFakeUnitRepo())
	seedWarehouse(t, repo, 1, 2)
	handler := NewAdjustQuantityHandler(repo)
	ctx := context.Background()

	for _, delta := range []int{-1, -5, -1} {
		if _, err := handler.Handle(ctx, AdjustQuantityCommand{
			ProductID: 1,
			Condition: domain.ConditionNew,
			Location:  domain.LocationInStock,
			Delta:     delta,
		}); err != nil {
			t.Fatalf("adjust by %d failed: %v", delta, err)
		}
	}

	w, _ := repo.FindByProductID(1)
	if w.StockNew != 0 {
		t.Fatalf("expected clamp at 0, got %d", w.StockNew)
	}

	// A later increment starts from zero, not from the overshoot.
	w, err := handler.Handle(ctx, AdjustQuantityCommand{
		ProductID: 1,
		Condition: domain.ConditionNew,
		Location:  domain.LocationInStock,
		Delta:     3,
	})
	if err != nil {
		t.Fatalf("adjust failed: %v", err)
	}
	if w.StockNew != 3 {
		t.Fatalf("expected 3 after increment, got %d", w.StockNew)
	}
}

func TestAdjustQuantityValidation(t *testing.T) {
	repo := newFakeWarehouseRepo(newFakeUnitRepo())
	seedWarehouse(t, repo, 1, 5)
	handler := NewAdjustQuantityHandler(repo)
	ctx := context.Background()

	cases := []AdjustQuantityCommand{
		{ProductID: 0, Condition: domain.ConditionNew, Location: domain.LocationInStock, Delta: 1},
		{ProductID: 1, Condition: "mint", Location: domain.LocationInStock, Delta: 1},
		{ProductID: 1, Condition: domain.ConditionNew, Location: "warehouse 9", Delta: 1},
		{ProductID: 1, Condition: domain.ConditionNew, Location: domain.LocationInStock, Delta: 0},
	}
	for _, cmd := range cases {
		if _, err := handler.Handle(ctx, cmd); !errors.Is(err, domain.ErrValidation) {
			t.Fatalf("command %+v: expected validation error, got %v", cmd, err)
		}
	}

	_, err := handler.Handle(ctx, AdjustQuantityCommand{
		ProductID: 42,
		Condition: domain.ConditionNew,
		Location:  domain.LocationInStock,
		Delta:     -1,
	})
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected not found for missing entry, got %v", err)
	}
}
