package command

import (
	"context"

	"github.com/gamebay/retail-ops/internal/product/domain"
)

// tracedProductRepository is the ctx-aware surface of the tracing-decorated
// product repository. Handlers upgrade to it when available so repository
// spans join the request trace.
type tracedProductRepository interface {
	CreateWithContext(ctx context.Context, product *domain.Product) error
	UpdateEANWithContext(ctx context.Context, id uint, eanCode string) error
	DeleteWithContext(ctx context.Context, id uint) error
}

func createProduct(ctx context.Context, repo domain.ProductRepository, product *domain.Product) error {
	if traced, ok := repo.(tracedProductRepository); ok {
		return traced.CreateWithContext(ctx, product)
	}
	return repo.Create(product)
}

func updateProductEAN(ctx context.Context, repo domain.ProductRepository, id uint, eanCode string) error {
	if traced, ok := repo.(tracedProductRepository); ok {
		return traced.UpdateEANWithContext(ctx, id, eanCode)
	}
	return repo.UpdateEAN(id, eanCode)
}

func deleteProduct(ctx context.Context, repo domain.ProductRepository, id uint) error {
	if traced, ok := repo.(tracedProductRepository); ok {
		return traced.DeleteWithContext(ctx, id)
	}
	return repo.Delete(id)
}
