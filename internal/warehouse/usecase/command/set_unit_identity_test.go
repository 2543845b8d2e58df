package command

import (
	"context"
	"errors"
	"testing"

	"github.com/gamebay/retail-ops/internal/warehouse/domain"
)

func newIdentityFixture(t *testing.T) (*SetUnitIdentityHandler, *fakeUnitRepo, *fakeCatalog) {
	t.Helper()
	units := newFakeUnitRepo()
	catalog := newFakeCatalog(1, 2)
	reconcile := NewReconcileBucketHandler(units)
	ctx := context.Background()
	if _, err := reconcile.Handle(ctx, ReconcileBucketCommand{Key: testKey(1), TargetCount: 3}); err != nil {
		t.Fatalf("seed failed: %v", err)
	}
	if _, err := reconcile.Handle(ctx, ReconcileBucketCommand{Key: testKey(2), TargetCount: 2}); err != nil {
		t.Fatalf("seed failed: %v", err)
	}
	return NewSetUnitIdentityHandler(units, catalog), units, catalog
}

// Setting an EAN on one unit propagates it to the owning product and every
// sibling unit, and nowhere else.
func TestSetUnitIdentityPropagatesEAN(t *testing.T) {
	handler, units, catalog := newIdentityFixture(t)

	live, _ := units.FindByProduct(1)
	unit, err := handler.Handle(context.Background(), SetUnitIdentityCommand{
		UnitID:       live[0].ID,
		EANCode:      "4012345678901",
		SerialNumber: "SN-0001",
	})
	if err != nil {
		t.Fatalf("set identity failed: %v", err)
	}
	if unit.EANCode != "4012345678901" || unit.SerialNumber != "SN-0001" {
		t.Fatalf("unit not updated: %+v", unit)
	}

	if got := catalog.ean(1); got != "4012345678901" {
		t.Fatalf("product EAN not propagated, got %q", got)
	}
	siblings, _ := units.FindByProduct(1)
	for _, s := range siblings {
		if s.EANCode != "4012345678901" {
			t.Fatalf("sibling unit %d missed the EAN, got %q", s.ID, s.EANCode)
		}
		if s.ID != unit.ID && s.SerialNumber != "" {
			t.Fatalf("serial number leaked to sibling %d", s.ID)
		}
	}

	// Units of other products keep their identity.
	others, _ := units.FindByProduct(2)
	for _, o := range others {
		if o.EANCode != "" {
			t.Fatalf("unit %d of product 2 got product 1's EAN", o.ID)
		}
	}
	if got := catalog.ean(2); got != "" {
		t.Fatalf("product 2 EAN should be untouched, got %q", got)
	}
}

func TestSetUnitIdentitySerialOnly(t *testing.T) {
	handler, units, catalog := newIdentityFixture(t)

	live, _ := units.FindByProduct(1)
	unit, err := handler.Handle(context.Background(), SetUnitIdentityCommand{
		UnitID:       live[1].ID,
		SerialNumber: "SN-0002",
	})
	if err != nil {
		t.Fatalf("set identity failed: %v", err)
	}
	if unit.SerialNumber != "SN-0002" {
		t.Fatalf("serial not set: %+v", unit)
	}
	// Empty EAN does not propagate anything.
	if got := catalog.ean(1); got != "" {
		t.Fatalf("empty EAN should not touch the product, got %q", got)
	}
}

func TestSetUnitIdentityUnknownUnit(t *testing.T) {
	handler, _, _ := newIdentityFixture(t)

	_, err := handler.Handle(context.Background(), SetUnitIdentityCommand{UnitID: 999, EANCode: "x"})
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}
