package query

import (
	"github.com/gamebay/retail-ops/internal/warehouse/domain"
)

// ListUnitsQuery represents the query to list unit records, optionally
// narrowed to one product or one bucket.
type ListUnitsQuery struct {
	ProductID uint
	Key       *domain.BucketKey
	Limit     int
	Offset    int
}

// ListUnitsHandler handles list units query
type ListUnitsHandler struct {
	units domain.UnitRepository
}

// NewListUnitsHandler creates a new list units handler
func NewListUnitsHandler(units domain.UnitRepository) *ListUnitsHandler {
	return &ListUnitsHandler{units: units}
}

// Handle executes the list units query
func (h *ListUnitsHandler) Handle(q ListUnitsQuery) ([]domain.WarehouseUnit, error) {
	if q.Key != nil {
		return h.units.FindByBucket(*q.Key)
	}
	if q.ProductID != 0 {
		return h.units.FindByProduct(q.ProductID)
	}
	if q.Limit <= 0 {
		q.Limit = 100
	}
	return h.units.FindAll(q.Limit, q.Offset)
}
