package command

import (
	"context"
	"errors"
	"testing"

	"github.com/gamebay/retail-ops/internal/product/domain"
)

func seedProduct(t *testing.T, repo *fakeProductRepo, name, ean string) uint {
	t.Helper()
	p := domain.Product{Name: name, EANCode: ean, Price: 100, IsActive: true}
	if err := repo.Create(&p); err != nil {
		t.Fatalf("seeding product: %v", err)
	}
	return p.ID
}

func strPtr(s string) *string { return &s }

func f64Ptr(f float64) *float64 { return &f }

func TestUpdateProductPartial(t *testing.T) {
	repo := newFakeProductRepo()
	inv := newFakeInventory()
	handler := NewUpdateProductHandler(repo, inv)
	id := seedProduct(t, repo, "DualSense", "1111111111111")

	updated, err := handler.Handle(context.Background(), UpdateProductCommand{
		ID:    id,
		Price: f64Ptr(59.99),
	})
	if err != nil {
		t.Fatalf("Handle failed: %v", err)
	}
	if updated.Price != 59.99 {
		t.Fatalf("price = %v, want 59.99", updated.Price)
	}
	// Untouched fields survive a partial update.
	if updated.Name != "DualSense" || updated.EANCode != "1111111111111" {
		t.Fatalf("partial update clobbered other fields: %+v", updated)
	}
	if len(inv.relabels) != 0 {
		t.Fatalf("ean unchanged, but units were relabeled: %v", inv.relabels)
	}
}

func TestUpdateProductEANPropagates(t *testing.T) {
	repo := newFakeProductRepo()
	inv := newFakeInventory()
	handler := NewUpdateProductHandler(repo, inv)
	id := seedProduct(t, repo, "DualSense", "1111111111111")

	_, err := handler.Handle(context.Background(), UpdateProductCommand{
		ID:      id,
		EANCode: strPtr("2222222222222"),
	})
	if err != nil {
		t.Fatalf("Handle failed: %v", err)
	}
	if got := inv.relabels[id]; got != "2222222222222" {
		t.Fatalf("units relabeled to %q, want 2222222222222", got)
	}
}

func TestUpdateProductSameEANDoesNotRelabel(t *testing.T) {
	repo := newFakeProductRepo()
	inv := newFakeInventory()
	handler := NewUpdateProductHandler(repo, inv)
	id := seedProduct(t, repo, "DualSense", "1111111111111")

	if _, err := handler.Handle(context.Background(), UpdateProductCommand{
		ID:      id,
		EANCode: strPtr("1111111111111"),
	}); err != nil {
		t.Fatalf("Handle failed: %v", err)
	}
	if len(inv.relabels) != 0 {
		t.Fatalf("identical ean should not trigger a relabel: %v", inv.relabels)
	}
}

func TestUpdateProductErrors(t *testing.T) {
	handler := NewUpdateProductHandler(newFakeProductRepo(), newFakeInventory())

	if _, err := handler.Handle(context.Background(), UpdateProductCommand{ID: 0}); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("zero id: err = %v, want ErrValidation", err)
	}
	if _, err := handler.Handle(context.Background(), UpdateProductCommand{ID: 99}); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("missing product: err = %v, want ErrNotFound", err)
	}
}

func TestSetEAN(t *testing.T) {
	repo := newFakeProductRepo()
	inv := newFakeInventory()
	handler := NewSetEANHandler(repo, inv)
	id := seedProduct(t, repo, "Steam Deck", "")

	product, err := handler.Handle(context.Background(), SetEANCommand{ProductID: id, EANCode: "3333333333333"})
	if err != nil {
		t.Fatalf("Handle failed: %v", err)
	}
	if product.EANCode != "3333333333333" {
		t.Fatalf("product ean = %q, want 3333333333333", product.EANCode)
	}
	if got := inv.relabels[id]; got != "3333333333333" {
		t.Fatalf("units relabeled to %q, want 3333333333333", got)
	}
}

func TestSetEANValidation(t *testing.T) {
	repo := newFakeProductRepo()
	handler := NewSetEANHandler(repo, newFakeInventory())
	id := seedProduct(t, repo, "Steam Deck", "")

	if _, err := handler.Handle(context.Background(), SetEANCommand{ProductID: id, EANCode: ""}); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("empty ean: err = %v, want ErrValidation", err)
	}
	if _, err := handler.Handle(context.Background(), SetEANCommand{ProductID: 0, EANCode: "x"}); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("zero id: err = %v, want ErrValidation", err)
	}
}

func TestDeleteProductPurgesWarehouse(t *testing.T) {
	repo := newFakeProductRepo()
	inv := newFakeInventory()
	handler := NewDeleteProductHandler(repo, inv)
	id := seedProduct(t, repo, "PS Vita", "4444444444444")

	if err := handler.Handle(context.Background(), DeleteProductCommand{ID: id}); err != nil {
		t.Fatalf("Handle failed: %v", err)
	}
	if !inv.purged[id] {
		t.Fatal("warehouse entry was not purged")
	}
	if _, err := repo.FindByID(id); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("product still present after delete: %v", err)
	}
}

func TestDeleteProductMissing(t *testing.T) {
	handler := NewDeleteProductHandler(newFakeProductRepo(), newFakeInventory())
	if err := handler.Handle(context.Background(), DeleteProductCommand{ID: 42}); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}
