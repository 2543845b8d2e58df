package command

import (
	"context"

	"github.com/gamebay/retail-ops/internal/warehouse/domain"
)

// The tracing-decorated repositories expose ctx-aware variants of the hot
// methods. Handlers upgrade to them when available so repository spans join
// the request trace; plain repositories and test fakes take the direct path.

type tracedWarehouseRepository interface {
	AdjustBucketWithContext(ctx context.Context, productID uint, condition domain.Condition, location domain.Location, delta int) (*domain.Warehouse, error)
	RemoveUnitWithCounterWithContext(ctx context.Context, unitID, productID uint) error
}

type tracedUnitRepository interface {
	CreateWithContext(ctx context.Context, unit *domain.WarehouseUnit) error
	FindByBucketWithContext(ctx context.Context, key domain.BucketKey) ([]domain.WarehouseUnit, error)
	DeleteWithContext(ctx context.Context, id uint) error
}

func adjustBucket(ctx context.Context, repo domain.WarehouseRepository, productID uint, condition domain.Condition, location domain.Location, delta int) (*domain.Warehouse, error) {
	if traced, ok := repo.(tracedWarehouseRepository); ok {
		return traced.AdjustBucketWithContext(ctx, productID, condition, location, delta)
	}
	return repo.AdjustBucket(productID, condition, location, delta)
}

func removeUnitWithCounter(ctx context.Context, repo domain.WarehouseRepository, unitID, productID uint) error {
	if traced, ok := repo.(tracedWarehouseRepository); ok {
		return traced.RemoveUnitWithCounterWithContext(ctx, unitID, productID)
	}
	return repo.RemoveUnitWithCounter(unitID, productID)
}

func createUnit(ctx context.Context, units domain.UnitRepository, unit *domain.WarehouseUnit) error {
	if traced, ok := units.(tracedUnitRepository); ok {
		return traced.CreateWithContext(ctx, unit)
	}
	return units.Create(unit)
}

func findByBucket(ctx context.Context, units domain.UnitRepository, key domain.BucketKey) ([]domain.WarehouseUnit, error) {
	if traced, ok := units.(tracedUnitRepository); ok {
		return traced.FindByBucketWithContext(ctx, key)
	}
	return units.FindByBucket(key)
}

func deleteUnit(ctx context.Context, units domain.UnitRepository, id uint) error {
	if traced, ok := units.(tracedUnitRepository); ok {
		return traced.DeleteWithContext(ctx, id)
	}
	return units.Delete(id)
}
