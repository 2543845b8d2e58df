package command

import (
	"context"
	"testing"

	"github.com/gamebay/retail-ops/internal/product/domain"
)

// tracedFakeProductRepo layers ctx-aware variants over the plain fake the way
// the tracing decorator layers them over the gorm repository.
type tracedFakeProductRepo struct {
	*fakeProductRepo
	ctxCreates    int
	ctxEANUpdates int
	ctxDeletes    int
}

func (r *tracedFakeProductRepo) CreateWithContext(ctx context.Context, product *domain.Product) error {
	r.ctxCreates++
	return r.Create(product)
}

func (r *tracedFakeProductRepo) UpdateEANWithContext(ctx context.Context, id uint, eanCode string) error {
	r.ctxEANUpdates++
	return r.UpdateEAN(id, eanCode)
}

func (r *tracedFakeProductRepo) DeleteWithContext(ctx context.Context, id uint) error {
	r.ctxDeletes++
	return r.Delete(id)
}

func TestCreateProductPrefersContextVariant(t *testing.T) {
	repo := &tracedFakeProductRepo{fakeProductRepo: newFakeProductRepo()}
	handler := NewCreateProductHandler(repo, newFakeInventory())

	if _, err := handler.Handle(context.Background(), CreateProductCommand{Name: "PS5", Price: 499.99}); err != nil {
		t.Fatalf("Handle failed: %v", err)
	}
	if repo.ctxCreates != 1 {
		t.Fatalf("ctx creates = %d, want 1", repo.ctxCreates)
	}
}

func TestSetEANPrefersContextVariant(t *testing.T) {
	repo := &tracedFakeProductRepo{fakeProductRepo: newFakeProductRepo()}
	handler := NewSetEANHandler(repo, newFakeInventory())
	id := seedProduct(t, repo.fakeProductRepo, "Steam Deck", "")

	if _, err := handler.Handle(context.Background(), SetEANCommand{ProductID: id, EANCode: "5555555555555"}); err != nil {
		t.Fatalf("Handle failed: %v", err)
	}
	if repo.ctxEANUpdates != 1 {
		t.Fatalf("ctx ean updates = %d, want 1", repo.ctxEANUpdates)
	}
}

func TestDeleteProductPrefersContextVariant(t *testing.T) {
	repo := &tracedFakeProductRepo{fakeProductRepo: newFakeProductRepo()}
	handler := NewDeleteProductHandler(repo, newFakeInventory())
	id := seedProduct(t, repo.fakeProductRepo, "PS Vita", "6666666666666")

	if err := handler.Handle(context.Background(), DeleteProductCommand{ID: id}); err != nil {
		t.Fatalf("Handle failed: %v", err)
	}
	if repo.ctxDeletes != 1 {
		t.Fatalf("ctx deletes = %d, want 1", repo.ctxDeletes)
	}
}
