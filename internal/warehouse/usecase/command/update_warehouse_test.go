package command

import (
	"context"
	"errors"
	"testing"

	"github.com/gamebay/retail-ops/internal/warehouse/domain"
)

func newUpdateFixture(productIDs ...uint) (*UpdateWarehouseHandler, *fakeWarehouseRepo, *fakeUnitRepo) {
	units := newFakeUnitRepo()
	repo := newFakeWarehouseRepo(units)
	catalog := newFakeCatalog(productIDs...)
	handler := NewUpdateWarehouseHandler(repo, catalog, NewReconcileBucketHandler(units))
	return handler, repo, units
}

// assertConsistent checks every bucket counter against the live unit count.
func assertConsistent(t *testing.T, w *domain.Warehouse, units *fakeUnitRepo) {
	t.Helper()
	for _, location := range domain.Locations {
		for _, condition := range domain.Conditions {
			n, _ := units.CountByBucket(w.Key(condition, location))
			if int(n) != w.Bucket(condition, location) {
				t.Fatalf("bucket (%s/%s): counter %d but %d units",
					condition, location, w.Bucket(condition, location), n)
			}
		}
	}
}

func TestUpdateWarehouseCreatesEntryAndUnits(t *testing.T) {
	handler, _, units := newUpdateFixture(1)

	w, err := handler.Handle(context.Background(), UpdateWarehouseCommand{
		ProductID:       1,
		QuantityInStock: Quantities{New: 3, Used: 1},
		QuantityInStore: Quantities{New: 2},
		Price:           Prices{New: 499.99, Used: 349.99},
	})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	assertConsistent(t, w, units)

	stockNew, _ := units.FindByBucket(w.Key(domain.ConditionNew, domain.LocationInStock))
	if len(stockNew) != 3 {
		t.Fatalf("expected 3 new in-stock units, got %d", len(stockNew))
	}
	if stockNew[0].Price != 499.99 {
		t.Fatalf("new unit should carry the new price, got %v", stockNew[0].Price)
	}
	used, _ := units.FindByBucket(w.Key(domain.ConditionUsed, domain.LocationInStock))
	if len(used) != 1 || used[0].Price != 349.99 {
		t.Fatalf("used in-stock bucket wrong: %+v", used)
	}
}

// Lowering a counter from 3 to 1 must delete exactly two unit records.
func TestUpdateWarehouseLowersCount(t *testing.T) {
	handler, _, units := newUpdateFixture(1)
	ctx := context.Background()

	if _, err := handler.Handle(ctx, UpdateWarehouseCommand{
		ProductID:       1,
		QuantityInStock: Quantities{New: 3},
	}); err != nil {
		t.Fatalf("seed update failed: %v", err)
	}

	w, err := handler.Handle(ctx, UpdateWarehouseCommand{
		ProductID:       1,
		QuantityInStock: Quantities{New: 1},
	})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	assertConsistent(t, w, units)
	if units.deletes != 2 {
		t.Fatalf("expected 2 deletes, got %d", units.deletes)
	}
}

func TestUpdateWarehouseTouchesAllBuckets(t *testing.T) {
	handler, _, units := newUpdateFixture(1)
	ctx := context.Background()

	if _, err := handler.Handle(ctx, UpdateWarehouseCommand{
		ProductID:       1,
		QuantityInStock: Quantities{New: 2, Used: 2},
		QuantityInStore: Quantities{New: 2, Used: 2},
	}); err != nil {
		t.Fatalf("seed update failed: %v", err)
	}

	w, err := handler.Handle(ctx, UpdateWarehouseCommand{
		ProductID:       1,
		QuantityInStock: Quantities{New: 4},
		QuantityInStore: Quantities{Used: 1},
	})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	assertConsistent(t, w, units)
}

func TestUpdateWarehouseRejectsNegativeQuantities(t *testing.T) {
	handler, _, _ := newUpdateFixture(1)

	_, err := handler.Handle(context.Background(), UpdateWarehouseCommand{
		ProductID:       1,
		QuantityInStock: Quantities{New: -1},
	})
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestUpdateWarehouseUnknownProduct(t *testing.T) {
	handler, _, _ := newUpdateFixture(1)

	_, err := handler.Handle(context.Background(), UpdateWarehouseCommand{ProductID: 99})
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected validation error for unknown product, got %v", err)
	}
}

func TestCreateWarehouseCountersOnly(t *testing.T) {
	units := newFakeUnitRepo()
	repo := newFakeWarehouseRepo(units)
	handler := NewCreateWarehouseHandler(repo, newFakeCatalog(1))

	w, err := handler.Handle(CreateWarehouseCommand{
		ProductID:       1,
		QuantityInStock: Quantities{New: 5},
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if w.StockNew != 5 {
		t.Fatalf("expected counter 5, got %d", w.StockNew)
	}
	if all, _ := units.FindAll(100, 0); len(all) != 0 {
		t.Fatalf("create must not materialize units, got %d", len(all))
	}
}

// failingLookupRepo simulates a store outage on the counter lookup.
type failingLookupRepo struct {
	*fakeWarehouseRepo
	findErr error
}

func (f *failingLookupRepo) FindByProductID(productID uint) (*domain.Warehouse, error) {
	return nil, f.findErr
}

func TestUpdateWarehouseSurfacesLookupFailure(t *testing.T) {
	units := newFakeUnitRepo()
	repo := &failingLookupRepo{
		fakeWarehouseRepo: newFakeWarehouseRepo(units),
		findErr:           errors.New("store unavailable"),
	}
	handler := NewUpdateWarehouseHandler(repo, newFakeCatalog(1), NewReconcileBucketHandler(units))

	_, err := handler.Handle(context.Background(), UpdateWarehouseCommand{
		ProductID:       1,
		QuantityInStock: Quantities{New: 1},
	})
	if !errors.Is(err, repo.findErr) {
		t.Fatalf("err = %v, want the lookup failure", err)
	}
	if errors.Is(err, domain.ErrValidation) || errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("lookup failure reinterpreted as %v", err)
	}
	if units.creates != 0 {
		t.Fatal("no units should be created when the lookup fails")
	}
}
