package command

import (
	"context"
	"testing"

	"github.com/gamebay/retail-ops/internal/warehouse/domain"
)

// tracedFakeWarehouseRepo layers ctx-aware variants over the plain fake the
// way the tracing decorator layers them over the gorm repository, counting
// how often the ctx path is taken.
type tracedFakeWarehouseRepo struct {
	*fakeWarehouseRepo
	ctxAdjusts int
	ctxRemoves int
}

func (f *tracedFakeWarehouseRepo) AdjustBucketWithContext(ctx context.Context, productID uint, condition domain.Condition, location domain.Location, delta int) (*domain.Warehouse, error) {
	f.ctxAdjusts++
	return f.AdjustBucket(productID, condition, location, delta)
}

func (f *tracedFakeWarehouseRepo) RemoveUnitWithCounterWithContext(ctx context.Context, unitID, productID uint) error {
	f.ctxRemoves++
	return f.RemoveUnitWithCounter(unitID, productID)
}

type tracedFakeUnitRepo struct {
	*fakeUnitRepo
	ctxCreates int
	ctxFinds   int
	ctxDeletes int
}

func (f *tracedFakeUnitRepo) CreateWithContext(ctx context.Context, unit *domain.WarehouseUnit) error {
	f.ctxCreates++
	return f.Create(unit)
}

func (f *tracedFakeUnitRepo) FindByBucketWithContext(ctx context.Context, key domain.BucketKey) ([]domain.WarehouseUnit, error) {
	f.ctxFinds++
	return f.FindByBucket(key)
}

func (f *tracedFakeUnitRepo) DeleteWithContext(ctx context.Context, id uint) error {
	f.ctxDeletes++
	return f.Delete(id)
}

func TestAdjustQuantityPrefersContextVariant(t *testing.T) {
	repo := &tracedFakeWarehouseRepo{fakeWarehouseRepo: newFakeWarehouseRepo(newFakeUnitRepo())}
	seedWarehouse(t, repo.fakeWarehouseRepo, 1, 5)
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
	if repo.ctxAdjusts != 1 {
		t.Fatalf("ctx adjusts = %d, want 1", repo.ctxAdjusts)
	}
}

func TestRemoveUnitPrefersContextVariant(t *testing.T) {
	units := newFakeUnitRepo()
	repo := &tracedFakeWarehouseRepo{fakeWarehouseRepo: newFakeWarehouseRepo(units)}
	seedWarehouse(t, repo.fakeWarehouseRepo, 1, 1)
	unit := &domain.WarehouseUnit{ProductID: 1, Condition: domain.ConditionNew, Location: domain.LocationInStock}
	if err := units.Create(unit); err != nil {
		t.Fatalf("seed unit failed: %v", err)
	}
	handler := NewRemoveUnitHandler(repo, units)

	if err := handler.Handle(context.Background(), RemoveUnitCommand{UnitID: unit.ID, ProductID: 1}); err != nil {
		t.Fatalf("remove failed: %v", err)
	}
	if repo.ctxRemoves != 1 {
		t.Fatalf("ctx removes = %d, want 1", repo.ctxRemoves)
	}
}

func TestReconcilePrefersContextVariants(t *testing.T) {
	units := &tracedFakeUnitRepo{fakeUnitRepo: newFakeUnitRepo()}
	handler := NewReconcileBucketHandler(units)
	ctx := context.Background()
	key := domain.BucketKey{ProductID: 1, WarehouseID: 1, Condition: domain.ConditionNew, Location: domain.LocationInStock}

	if _, err := handler.Handle(ctx, ReconcileBucketCommand{Key: key, TargetCount: 3}); err != nil {
		t.Fatalf("grow failed: %v", err)
	}
	if units.ctxCreates != 3 {
		t.Fatalf("ctx creates = %d, want 3", units.ctxCreates)
	}

	if _, err := handler.Handle(ctx, ReconcileBucketCommand{Key: key, TargetCount: 1}); err != nil {
		t.Fatalf("shrink failed: %v", err)
	}
	if units.ctxDeletes != 2 {
		t.Fatalf("ctx deletes = %d, want 2", units.ctxDeletes)
	}
	if units.ctxFinds != 2 {
		t.Fatalf("ctx finds = %d, want 2", units.ctxFinds)
	}
	if units.creates != 3 || units.deletes != 2 {
		t.Fatalf("underlying work = %d creates / %d deletes, want 3/2", units.creates, units.deletes)
	}
}
