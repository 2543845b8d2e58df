package query

import (
	"context"
	"fmt"

	"github.com/gamebay/retail-ops/internal/product/domain"
)

// GetByEANQuery represents the query to look a product up by its EAN code
type GetByEANQuery struct {
	EANCode string
}

// tracedEANFinder is the ctx-aware lookup variant exposed by the
// tracing-decorated product repository.
type tracedEANFinder interface {
	FindByEANWithContext(ctx context.Context, eanCode string) (*domain.Product, error)
}

// GetByEANHandler handles EAN lookup, the scanner-driven flow at the counter.
type GetByEANHandler struct {
	repo domain.ProductRepository
}

// NewGetByEANHandler creates a new get by EAN handler
func NewGetByEANHandler(repo domain.ProductRepository) *GetByEANHandler {
	return &GetByEANHandler{repo: repo}
}

// Handle executes the get by EAN query
func (h *GetByEANHandler) Handle(ctx context.Context, q GetByEANQuery) (*domain.Product, error) {
	if q.EANCode == "" {
		return nil, fmt.Errorf("%w: ean_code is required", domain.ErrValidation)
	}
	if traced, ok := h.repo.(tracedEANFinder); ok {
		return traced.FindByEANWithContext(ctx, q.EANCode)
	}
	return h.repo.FindByEAN(q.EANCode)
}
