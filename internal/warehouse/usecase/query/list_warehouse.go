package query

import (
	"github.com/gamebay/retail-ops/internal/warehouse/domain"
	"github.com/gamebay/retail-ops/pkg/logger"
)

// ListWarehouseQuery represents the query to list aggregate counter records.
type ListWarehouseQuery struct {
	Limit  int
	Offset int
}

// CategorizedWarehouses groups warehouse entries by the owning product's
// category and subcategory, the shape the admin stock overview expects.
type CategorizedWarehouses map[string]map[string][]domain.Warehouse

// ListWarehouseHandler handles list warehouse query
type ListWarehouseHandler struct {
	repo    domain.WarehouseRepository
	catalog domain.ProductCatalog
}

// NewListWarehouseHandler creates a new list warehouse handler
func NewListWarehouseHandler(repo domain.WarehouseRepository, catalog domain.ProductCatalog) *ListWarehouseHandler {
	return &ListWarehouseHandler{repo: repo, catalog: catalog}
}

// Handle executes the list warehouse query
func (h *ListWarehouseHandler) Handle(q ListWarehouseQuery) ([]domain.Warehouse, error) {
	if q.Limit <= 0 {
		q.Limit = 50
	}
	return h.repo.FindAll(q.Limit, q.Offset)
}

// HandleGrouped lists entries grouped by product category and subcategory.
// Entries whose product cannot be resolved are filed under "Unknown".
func (h *ListWarehouseHandler) HandleGrouped(q ListWarehouseQuery) (CategorizedWarehouses, error) {
	warehouses, err := h.Handle(q)
	if err != nil {
		return nil, err
	}

	grouped := make(CategorizedWarehouses)
	for _, warehouse := range warehouses {
		category, subCategory, err := h.catalog.CategoryOf(warehouse.ProductID)
		if err != nil {
			logger.Logger.Warn().
				Err(err).
				Uint("product_id", warehouse.ProductID).
				Msg("Failed to resolve product category for warehouse listing")
			category = "Unknown"
		}
		if subCategory == "" {
			subCategory = "General"
		}

		if grouped[category] == nil {
			grouped[category] = make(map[string][]domain.Warehouse)
		}
		grouped[category][subCategory] = append(grouped[category][subCategory], warehouse)
	}

	return grouped, nil
}
