package command

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/gamebay/retail-ops/internal/warehouse/domain"
)

func testKey(productID uint) domain.BucketKey {
	return domain.BucketKey{
		ProductID:   productID,
		WarehouseID: productID,
		Condition:   domain.ConditionNew,
		Location:    domain.LocationInStock,
	}
}

func TestReconcileBucketCreatesShortfall(t *testing.T) {
	units := newFakeUnitRepo()
	handler := NewReconcileBucketHandler(units)
	key := testKey(1)

	result, err := handler.Handle(context.Background(), ReconcileBucketCommand{Key: key, TargetCount: 5, UnitPrice: 299.99})
	if err != nil {
		t.Fatalf("reconcile failed: %v", err)
	}
	if result.Created != 5 || result.Deleted != 0 || result.Count != 5 {
		t.Fatalf("unexpected result: %+v", result)
	}

	live, _ := units.FindByBucket(key)
	if len(live) != 5 {
		t.Fatalf("expected 5 units, got %d", len(live))
	}
	for _, u := range live {
		if u.EANCode != "" || u.SerialNumber != "" {
			t.Fatalf("new unit %d should have empty identity, got ean=%q serial=%q", u.ID, u.EANCode, u.SerialNumber)
		}
		if u.Price != 299.99 {
			t.Fatalf("new unit %d should carry the bucket price, got %v", u.ID, u.Price)
		}
	}
}

func TestReconcileBucketDeletesSurplus(t *testing.T) {
	units := newFakeUnitRepo()
	handler := NewReconcileBucketHandler(units)
	key := testKey(1)
	ctx := context.Background()

	if _, err := handler.Handle(ctx, ReconcileBucketCommand{Key: key, TargetCount: 5}); err != nil {
		t.Fatalf("seed reconcile failed: %v", err)
	}
	result, err := handler.Handle(ctx, ReconcileBucketCommand{Key: key, TargetCount: 2})
	if err != nil {
		t.Fatalf("reconcile failed: %v", err)
	}
	if result.Deleted != 3 || result.Created != 0 || result.Count != 2 {
		t.Fatalf("unexpected result: %+v", result)
	}
	if n, _ := units.CountByBucket(key); n != 2 {
		t.Fatalf("expected 2 units, got %d", n)
	}
}

// Targets 5, 2, 7 in sequence: each pass must converge and do only the
// delta's worth of writes.
func TestReconcileBucketConvergesWithMinimalWrites(t *testing.T) {
	units := newFakeUnitRepo()
	handler := NewReconcileBucketHandler(units)
	key := testKey(7)
	ctx := context.Background()

	for _, target := range []int{5, 2, 7} {
		if _, err := handler.Handle(ctx, ReconcileBucketCommand{Key: key, TargetCount: target}); err != nil {
			t.Fatalf("reconcile to %d failed: %v", target, err)
		}
		if n, _ := units.CountByBucket(key); int(n) != target {
			t.Fatalf("expected %d units, got %d", target, n)
		}
	}
	// 5 created, 3 deleted, 5 created again.
	if units.creates != 10 || units.deletes != 3 {
		t.Fatalf("expected 10 creates and 3 deletes, got %d and %d", units.creates, units.deletes)
	}
}

func TestReconcileBucketIdempotent(t *testing.T) {
	units := newFakeUnitRepo()
	handler := NewReconcileBucketHandler(units)
	key := testKey(1)
	ctx := context.Background()
	cmd := ReconcileBucketCommand{Key: key, TargetCount: 4}

	if _, err := handler.Handle(ctx, cmd); err != nil {
		t.Fatalf("first pass failed: %v", err)
	}
	first, _ := units.FindByBucket(key)

	result, err := handler.Handle(ctx, cmd)
	if err != nil {
		t.Fatalf("second pass failed: %v", err)
	}
	if result.Created != 0 || result.Deleted != 0 {
		t.Fatalf("second pass should be a no-op, got %+v", result)
	}

	second, _ := units.FindByBucket(key)
	if len(first) != len(second) {
		t.Fatalf("unit count changed: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i].ID != second[i].ID {
			t.Fatalf("unit ids changed between identical passes")
		}
	}
}

func TestReconcileBucketScopedToOneBucket(t *testing.T) {
	units := newFakeUnitRepo()
	handler := NewReconcileBucketHandler(units)
	ctx := context.Background()

	other := domain.BucketKey{ProductID: 1, WarehouseID: 1, Condition: domain.ConditionUsed, Location: domain.LocationInStore}
	if _, err := handler.Handle(ctx, ReconcileBucketCommand{Key: other, TargetCount: 3}); err != nil {
		t.Fatalf("seed failed: %v", err)
	}
	if _, err := handler.Handle(ctx, ReconcileBucketCommand{Key: testKey(1), TargetCount: 0}); err != nil {
		t.Fatalf("reconcile failed: %v", err)
	}
	if n, _ := units.CountByBucket(other); n != 3 {
		t.Fatalf("sibling bucket was touched, has %d units", n)
	}
}

func TestReconcileBucketRejectsInvalidInput(t *testing.T) {
	handler := NewReconcileBucketHandler(newFakeUnitRepo())
	ctx := context.Background()

	if _, err := handler.Handle(ctx, ReconcileBucketCommand{Key: testKey(1), TargetCount: -1}); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("negative target should fail validation, got %v", err)
	}
	bad := domain.BucketKey{ProductID: 1, WarehouseID: 1, Condition: "refurbished", Location: domain.LocationInStock}
	if _, err := handler.Handle(ctx, ReconcileBucketCommand{Key: bad, TargetCount: 1}); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("invalid condition should fail validation, got %v", err)
	}
}

// A failed pass leaves partial progress; rerunning the same command finishes
// the remaining delta.
func TestReconcileBucketRepairsAfterPartialFailure(t *testing.T) {
	units := newFakeUnitRepo()
	units.failCreateAfter = 3
	handler := NewReconcileBucketHandler(units)
	key := testKey(1)
	ctx := context.Background()
	cmd := ReconcileBucketCommand{Key: key, TargetCount: 6}

	if _, err := handler.Handle(ctx, cmd); err == nil {
		t.Fatal("expected partial failure")
	}
	if n, _ := units.CountByBucket(key); n != 3 {
		t.Fatalf("expected 3 units after failure, got %d", n)
	}

	units.failCreateAfter = -1
	result, err := handler.Handle(ctx, cmd)
	if err != nil {
		t.Fatalf("repair pass failed: %v", err)
	}
	if result.Created != 3 || result.Count != 6 {
		t.Fatalf("repair pass should create only the remainder, got %+v", result)
	}
}

func TestReconcileBucketConcurrentSameBucket(t *testing.T) {
	units := newFakeUnitRepo()
	handler := NewReconcileBucketHandler(units)
	key := testKey(1)
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := handler.Handle(ctx, ReconcileBucketCommand{Key: key, TargetCount: 4}); err != nil {
				t.Errorf("concurrent reconcile failed: %v", err)
			}
		}()
	}
	wg.Wait()

	if n, _ := units.CountByBucket(key); n != 4 {
		t.Fatalf("expected 4 units after concurrent passes, got %d", n)
	}
}
