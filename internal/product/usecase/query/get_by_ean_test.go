package query

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/gamebay/retail-ops/internal/product/domain"
)

// eanFakeRepo serves one product by EAN and counts which lookup path the
// handler takes.
type eanFakeRepo struct {
	product  domain.Product
	finds    int
	ctxFinds int
}

func (r *eanFakeRepo) Create(*domain.Product) error { return nil }

func (r *eanFakeRepo) FindByID(uint) (*domain.Product, error) { return nil, domain.ErrNotFound }

func (r *eanFakeRepo) FindAll(int, int) ([]domain.Product, error) { return nil, nil }

func (r *eanFakeRepo) FindByCategory(string, int, int) ([]domain.Product, error) { return nil, nil }

func (r *eanFakeRepo) SearchByName(string, int, int) ([]domain.Product, error) { return nil, nil }

func (r *eanFakeRepo) Update(*domain.Product) error { return nil }

func (r *eanFakeRepo) UpdateEAN(uint, string) error { return nil }

func (r *eanFakeRepo) Delete(uint) error { return nil }

func (r *eanFakeRepo) Count() (int64, error) { return 1, nil }

func (r *eanFakeRepo) FindByEAN(eanCode string) (*domain.Product, error) {
	r.finds++
	if eanCode != r.product.EANCode {
		return nil, fmt.Errorf("%w: ean %s", domain.ErrNotFound, eanCode)
	}
	product := r.product
	return &product, nil
}

func (r *eanFakeRepo) FindByEANWithContext(ctx context.Context, eanCode string) (*domain.Product, error) {
	r.ctxFinds++
	return r.FindByEAN(eanCode)
}

func TestGetByEAN(t *testing.T) {
	repo := &eanFakeRepo{product: domain.Product{Name: "DualSense", EANCode: "7777777777777"}}
	handler := NewGetByEANHandler(repo)

	product, err := handler.Handle(context.Background(), GetByEANQuery{EANCode: "7777777777777"})
	if err != nil {
		t.Fatalf("Handle failed: %v", err)
	}
	if product.Name != "DualSense" {
		t.Fatalf("product = %q", product.Name)
	}
	if repo.ctxFinds != 1 {
		t.Fatalf("ctx finds = %d, want 1", repo.ctxFinds)
	}
}

func TestGetByEANValidation(t *testing.T) {
	handler := NewGetByEANHandler(&eanFakeRepo{})

	if _, err := handler.Handle(context.Background(), GetByEANQuery{}); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("empty ean: err = %v, want ErrValidation", err)
	}
}
