package command

import (
	"context"
	"errors"
	"fmt"

	"github.com/gamebay/retail-ops/internal/warehouse/domain"
)

// UpdateWarehouseCommand represents the command to overwrite a product's
// counters and prices wholesale.
type UpdateWarehouseCommand struct {
	ProductID       uint
	QuantityInStock Quantities
	QuantityInStore Quantities
	Price           Prices
	Documents       []string
}

// UpdateWarehouseHandler upserts the aggregate counter record and reconciles
// every bucket whose target changed, using the new counter as target.
type UpdateWarehouseHandler struct {
	repo      domain.WarehouseRepository
	catalog   domain.ProductCatalog
	reconcile *ReconcileBucketHandler
}

// NewUpdateWarehouseHandler creates a new update warehouse handler
func NewUpdateWarehouseHandler(repo domain.WarehouseRepository, catalog domain.ProductCatalog, reconcile *ReconcileBucketHandler) *UpdateWarehouseHandler {
	return &UpdateWarehouseHandler{repo: repo, catalog: catalog, reconcile: reconcile}
}

// Handle executes the update warehouse command. Buckets are reconciled one at
// a time after the counter write; ordering between buckets carries no
// invariant. A failed reconciliation surfaces immediately with the bucket it
// was processing, and re-running the same update repairs the remainder.
func (h *UpdateWarehouseHandler) Handle(ctx context.Context, cmd UpdateWarehouseCommand) (*domain.Warehouse, error) {
	if cmd.ProductID == 0 {
		return nil, fmt.Errorf("%w: product_id is required", domain.ErrValidation)
	}
	if err := validateQuantities(cmd.QuantityInStock, cmd.QuantityInStore); err != nil {
		return nil, err
	}

	warehouse, err := h.repo.FindByProductID(cmd.ProductID)
	switch {
	case err == nil:
		warehouse.StockNew = cmd.QuantityInStock.New
		warehouse.StockUsed = cmd.QuantityInStock.Used
		warehouse.StoreNew = cmd.QuantityInStore.New
		warehouse.StoreUsed = cmd.QuantityInStore.Used
		warehouse.PriceNew = cmd.Price.New
		warehouse.PriceUsed = cmd.Price.Used
		if cmd.Documents != nil {
			warehouse.Documents = cmd.Documents
		}
		if err := h.repo.Save(warehouse); err != nil {
			return nil, fmt.Errorf("failed to update warehouse entry: %w", err)
		}
	case errors.Is(err, domain.ErrNotFound):
		create := NewCreateWarehouseHandler(h.repo, h.catalog)
		warehouse, err = create.Handle(CreateWarehouseCommand(cmd))
		if err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("failed to load warehouse entry for product %d: %w", cmd.ProductID, err)
	}

	// Every bucket gets a pass; an already-consistent bucket is a no-op.
	for _, location := range domain.Locations {
		for _, condition := range domain.Conditions {
			_, err := h.reconcile.Handle(ctx, ReconcileBucketCommand{
				Key:         warehouse.Key(condition, location),
				TargetCount: warehouse.Bucket(condition, location),
				UnitPrice:   warehouse.PriceFor(condition),
			})
			if err != nil {
				return nil, err
			}
		}
	}

	return warehouse, nil
}
