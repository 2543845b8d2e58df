package command

import (
	"fmt"

	"github.com/gamebay/retail-ops/internal/warehouse/domain"
)

// Quantities carries the per-condition counts of one location, mirroring the
// quantityInStock / quantityInStore request shape.
type Quantities struct {
	New  int `json:"new"`
	Used int `json:"used"`
}

// Prices carries the per-condition list prices.
type Prices struct {
	New  float64 `json:"new"`
	Used float64 `json:"used"`
}

// CreateWarehouseCommand represents the command to create an aggregate
// counter record for a product.
type CreateWarehouseCommand struct {
	ProductID       uint
	QuantityInStock Quantities
	QuantityInStore Quantities
	Price           Prices
	Documents       []string
}

// CreateWarehouseHandler handles create warehouse command
type CreateWarehouseHandler struct {
	repo    domain.WarehouseRepository
	catalog domain.ProductCatalog
}

// NewCreateWarehouseHandler creates a new create warehouse handler
func NewCreateWarehouseHandler(repo domain.WarehouseRepository, catalog domain.ProductCatalog) *CreateWarehouseHandler {
	return &CreateWarehouseHandler{repo: repo, catalog: catalog}
}

// Handle executes the create warehouse command. Counters only; materializing
// unit records is the reconciler's job.
func (h *CreateWarehouseHandler) Handle(cmd CreateWarehouseCommand) (*domain.Warehouse, error) {
	if cmd.ProductID == 0 {
		return nil, fmt.Errorf("%w: product_id is required", domain.ErrValidation)
	}

	exists, err := h.catalog.Exists(cmd.ProductID)
	if err != nil {
		return nil, fmt.Errorf("failed to look up product %d: %w", cmd.ProductID, err)
	}
	if !exists {
		return nil, fmt.Errorf("%w: product %d does not exist", domain.ErrValidation, cmd.ProductID)
	}

	if err := validateQuantities(cmd.QuantityInStock, cmd.QuantityInStore); err != nil {
		return nil, err
	}

	warehouse := &domain.Warehouse{
		ProductID: cmd.ProductID,
		StockNew:  cmd.QuantityInStock.New,
		StockUsed: cmd.QuantityInStock.Used,
		StoreNew:  cmd.QuantityInStore.New,
		StoreUsed: cmd.QuantityInStore.Used,
		PriceNew:  cmd.Price.New,
		PriceUsed: cmd.Price.Used,
		Documents: cmd.Documents,
	}

	if err := h.repo.Create(warehouse); err != nil {
		return nil, fmt.Errorf("failed to create warehouse entry: %w", err)
	}

	return warehouse, nil
}

func validateQuantities(stock, store Quantities) error {
	for _, q := range []int{stock.New, stock.Used, store.New, store.Used} {
		if q < 0 {
			return fmt.Errorf("%w: quantities cannot be negative", domain.ErrValidation)
		}
	}
	return nil
}
