package repository

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"gorm.io/gorm"

	"github.com/gamebay/retail-ops/internal/warehouse/domain"
)

var tracer = otel.Tracer("warehouse-repository")

func bucketAttributes(key domain.BucketKey) []attribute.KeyValue {
	return []attribute.KeyValue{
		attribute.Int("bucket.product_id", int(key.ProductID)),
		attribute.Int("bucket.warehouse_id", int(key.WarehouseID)),
		attribute.String("bucket.condition", string(key.Condition)),
		attribute.String("bucket.location", string(key.Location)),
	}
}

// GormWarehouseRepositoryWithTracing wraps GormWarehouseRepository with tracing
type GormWarehouseRepositoryWithTracing struct {
	*GormWarehouseRepository
}

// NewGormWarehouseRepositoryWithTracing creates a new repository with tracing
func NewGormWarehouseRepositoryWithTracing(db *gorm.DB) *GormWarehouseRepositoryWithTracing {
	return &GormWarehouseRepositoryWithTracing{
		GormWarehouseRepository: NewGormWarehouseRepository(db),
	}
}

// AdjustBucket with tracing
func (r *GormWarehouseRepositoryWithTracing) AdjustBucketWithContext(ctx context.Context, productID uint, condition domain.Condition, location domain.Location, delta int) (*domain.Warehouse, error) {
	_, span := tracer.Start(ctx, "repository.AdjustBucket",
		trace.WithAttributes(
			attribute.Int("bucket.product_id", int(productID)),
			attribute.String("bucket.condition", string(condition)),
			attribute.String("bucket.location", string(location)),
			attribute.Int("bucket.delta", delta),
		),
	)
	defer span.End()

	warehouse, err := r.GormWarehouseRepository.AdjustBucket(productID, condition, location, delta)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	span.SetAttributes(attribute.Int("bucket.result", warehouse.Bucket(condition, location)))
	return warehouse, nil
}

// RemoveUnitWithCounter with tracing
func (r *GormWarehouseRepositoryWithTracing) RemoveUnitWithCounterWithContext(ctx context.Context, unitID, productID uint) error {
	_, span := tracer.Start(ctx, "repository.RemoveUnitWithCounter",
		trace.WithAttributes(
			attribute.Int("unit.id", int(unitID)),
			attribute.Int("unit.product_id", int(productID)),
		),
	)
	defer span.End()

	err := r.GormWarehouseRepository.RemoveUnitWithCounter(unitID, productID)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	return nil
}

// GormUnitRepositoryWithTracing wraps GormUnitRepository with tracing
type GormUnitRepositoryWithTracing struct {
	*GormUnitRepository
}

// NewGormUnitRepositoryWithTracing creates a new repository with tracing
func NewGormUnitRepositoryWithTracing(db *gorm.DB) *GormUnitRepositoryWithTracing {
	return &GormUnitRepositoryWithTracing{
		GormUnitRepository: NewGormUnitRepository(db),
	}
}

// Create with tracing
func (r *GormUnitRepositoryWithTracing) CreateWithContext(ctx context.Context, unit *domain.WarehouseUnit) error {
	_, span := tracer.Start(ctx, "repository.CreateUnit",
		trace.WithAttributes(bucketAttributes(unit.Key())...),
	)
	defer span.End()

	err := r.GormUnitRepository.Create(unit)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	span.SetAttributes(attribute.Int("unit.id", int(unit.ID)))
	return nil
}

// FindByBucket with tracing
func (r *GormUnitRepositoryWithTracing) FindByBucketWithContext(ctx context.Context, key domain.BucketKey) ([]domain.WarehouseUnit, error) {
	_, span := tracer.Start(ctx, "repository.FindByBucket",
		trace.WithAttributes(bucketAttributes(key)...),
	)
	defer span.End()

	units, err := r.GormUnitRepository.FindByBucket(key)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	span.SetAttributes(attribute.Int("result.count", len(units)))
	return units, nil
}

// Delete with tracing
func (r *GormUnitRepositoryWithTracing) DeleteWithContext(ctx context.Context, id uint) error {
	_, span := tracer.Start(ctx, "repository.DeleteUnit",
		trace.WithAttributes(attribute.Int("unit.id", int(id))),
	)
	defer span.End()

	err := r.GormUnitRepository.Delete(id)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	return nil
}

// UpdateEANByProduct with tracing
func (r *GormUnitRepositoryWithTracing) UpdateEANByProductWithContext(ctx context.Context, productID uint, eanCode string) error {
	_, span := tracer.Start(ctx, "repository.UpdateEANByProduct",
		trace.WithAttributes(
			attribute.Int("unit.product_id", int(productID)),
			attribute.String("unit.ean_code", eanCode),
		),
	)
	defer span.End()

	err := r.GormUnitRepository.UpdateEANByProduct(productID, eanCode)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	return nil
}
