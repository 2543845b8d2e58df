package query

import (
	"fmt"

	"github.com/gamebay/retail-ops/internal/product/domain"
)

// GetProductQuery represents the query to get a single product
type GetProductQuery struct {
	ID uint
}

// ProductDetails bundles a product with its warehouse counters. Warehouse is
// nil when the product has no counter record yet.
type ProductDetails struct {
	domain.Product
	Warehouse *domain.InventorySnapshot `json:"warehouse,omitempty"`
}

// GetProductHandler handles get product query
type GetProductHandler struct {
	repo      domain.ProductRepository
	inventory domain.Inventory
}

// NewGetProductHandler creates a new get product handler
func NewGetProductHandler(repo domain.ProductRepository, inventory domain.Inventory) *GetProductHandler {
	return &GetProductHandler{repo: repo, inventory: inventory}
}

// Handle executes the get product query
func (h *GetProductHandler) Handle(q GetProductQuery) (*ProductDetails, error) {
	if q.ID == 0 {
		return nil, fmt.Errorf("%w: product id is required", domain.ErrValidation)
	}

	product, err := h.repo.FindByID(q.ID)
	if err != nil {
		return nil, err
	}
	snapshot, err := h.inventory.Snapshot(q.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load warehouse counters for product %d: %w", q.ID, err)
	}

	return &ProductDetails{Product: *product, Warehouse: snapshot}, nil
}
