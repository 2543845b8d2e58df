package query

import (
	"fmt"

	"github.com/gamebay/retail-ops/internal/warehouse/domain"
)

// GetWarehouseQuery represents the query to fetch one aggregate counter record.
type GetWarehouseQuery struct {
	ID        uint
	ProductID uint // alternative lookup; used when ID is zero
}

// GetWarehouseHandler handles get warehouse query
type GetWarehouseHandler struct {
	repo domain.WarehouseRepository
}

// NewGetWarehouseHandler creates a new get warehouse handler
func NewGetWarehouseHandler(repo domain.WarehouseRepository) *GetWarehouseHandler {
	return &GetWarehouseHandler{repo: repo}
}

// Handle executes the get warehouse query
func (h *GetWarehouseHandler) Handle(q GetWarehouseQuery) (*domain.Warehouse, error) {
	switch {
	case q.ID != 0:
		return h.repo.FindByID(q.ID)
	case q.ProductID != 0:
		return h.repo.FindByProductID(q.ProductID)
	default:
		return nil, fmt.Errorf("%w: id or product_id is required", domain.ErrValidation)
	}
}
