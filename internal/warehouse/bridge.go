package warehouse

import (
	"context"
	"errors"

	orderdomain "github.com/gamebay/retail-ops/internal/order/domain"
	productdomain "github.com/gamebay/retail-ops/internal/product/domain"
	"github.com/gamebay/retail-ops/internal/warehouse/domain"
	"github.com/gamebay/retail-ops/internal/warehouse/usecase/command"
)

// InventoryBridge adapts the warehouse subsystem to the narrow interfaces the
// catalog and order flows expect, so those packages can seed, relabel, purge
// and deduct without importing warehouse packages.
type InventoryBridge struct {
	repo   domain.WarehouseRepository
	units  domain.UnitRepository
	update *command.UpdateWarehouseHandler
	adjust *command.AdjustQuantityHandler
}

// NewInventoryBridge creates a new inventory bridge
func NewInventoryBridge(repo domain.WarehouseRepository, units domain.UnitRepository, update *command.UpdateWarehouseHandler, adjust *command.AdjustQuantityHandler) *InventoryBridge {
	return &InventoryBridge{repo: repo, units: units, update: update, adjust: adjust}
}

var (
	_ productdomain.Inventory   = (*InventoryBridge)(nil)
	_ orderdomain.StockAdjuster = (*InventoryBridge)(nil)
)

// Seed creates or overwrites the product's counters and reconciles every
// bucket so the unit records match.
func (b *InventoryBridge) Seed(ctx context.Context, productID uint, seed productdomain.InventorySeed) error {
	_, err := b.update.Handle(ctx, command.UpdateWarehouseCommand{
		ProductID:       productID,
		QuantityInStock: command.Quantities{New: seed.StockNew, Used: seed.StockUsed},
		QuantityInStore: command.Quantities{New: seed.StoreNew, Used: seed.StoreUsed},
		Price:           command.Prices{New: seed.PriceNew, Used: seed.PriceUsed},
	})
	return err
}

// Snapshot returns the product's counters, or nil when no entry exists.
func (b *InventoryBridge) Snapshot(productID uint) (*productdomain.InventorySnapshot, error) {
	warehouse, err := b.repo.FindByProductID(productID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &productdomain.InventorySnapshot{
		StockNew:  warehouse.StockNew,
		StockUsed: warehouse.StockUsed,
		StoreNew:  warehouse.StoreNew,
		StoreUsed: warehouse.StoreUsed,
		PriceNew:  warehouse.PriceNew,
		PriceUsed: warehouse.PriceUsed,
	}, nil
}

// tracedUnitRelabeler is the ctx-aware relabel variant exposed by the
// tracing-decorated unit repository.
type tracedUnitRelabeler interface {
	UpdateEANByProductWithContext(ctx context.Context, productID uint, eanCode string) error
}

// RelabelUnits overwrites the EAN code on every unit record of the product.
func (b *InventoryBridge) RelabelUnits(ctx context.Context, productID uint, eanCode string) error {
	if traced, ok := b.units.(tracedUnitRelabeler); ok {
		return traced.UpdateEANByProductWithContext(ctx, productID, eanCode)
	}
	return b.units.UpdateEANByProduct(productID, eanCode)
}

// Purge deletes the product's unit records and counter entry.
func (b *InventoryBridge) Purge(ctx context.Context, productID uint) error {
	if err := b.units.DeleteByProduct(productID); err != nil {
		return err
	}
	return b.repo.DeleteByProductID(productID)
}

// DeductStock decrements the in-stock counter of the sold condition by the
// sold quantity, clamped at zero.
func (b *InventoryBridge) DeductStock(ctx context.Context, productID uint, condition string, quantity int) error {
	parsed, err := domain.ParseCondition(condition)
	if err != nil {
		return err
	}
	_, err = b.adjust.Handle(ctx, command.AdjustQuantityCommand{
		ProductID: productID,
		Condition: parsed,
		Location:  domain.LocationInStock,
		Delta:     -quantity,
	})
	return err
}
