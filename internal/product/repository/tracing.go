package repository

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"gorm.io/gorm"

	"github.com/gamebay/retail-ops/internal/product/domain"
)

var tracer = otel.Tracer("product-repository")

// GormProductRepositoryWithTracing wraps GormProductRepository with tracing
type GormProductRepositoryWithTracing struct {
	*GormProductRepository
}

// NewGormProductRepositoryWithTracing creates a new repository with tracing
func NewGormProductRepositoryWithTracing(db *gorm.DB) *GormProductRepositoryWithTracing {
	return &GormProductRepositoryWithTracing{
		GormProductRepository: NewGormProductRepository(db),
	}
}

// Create with tracing
func (r *GormProductRepositoryWithTracing) CreateWithContext(ctx context.Context, product *domain.Product) error {
	_, span := tracer.Start(ctx, "repository.CreateProduct",
		trace.WithAttributes(
			attribute.String("product.name", product.Name),
			attribute.String("product.category", product.Category),
		),
	)
	defer span.End()

	err := r.GormProductRepository.Create(product)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	span.SetAttributes(attribute.Int("product.id", int(product.ID)))
	return nil
}

// FindByEAN with tracing
func (r *GormProductRepositoryWithTracing) FindByEANWithContext(ctx context.Context, eanCode string) (*domain.Product, error) {
	_, span := tracer.Start(ctx, "repository.FindByEAN",
		trace.WithAttributes(attribute.String("product.ean_code", eanCode)),
	)
	defer span.End()

	product, err := r.GormProductRepository.FindByEAN(eanCode)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	span.SetAttributes(attribute.Int("product.id", int(product.ID)))
	return product, nil
}

// UpdateEAN with tracing
func (r *GormProductRepositoryWithTracing) UpdateEANWithContext(ctx context.Context, id uint, eanCode string) error {
	_, span := tracer.Start(ctx, "repository.UpdateProductEAN",
		trace.WithAttributes(
			attribute.Int("product.id", int(id)),
			attribute.String("product.ean_code", eanCode),
		),
	)
	defer span.End()

	err := r.GormProductRepository.UpdateEAN(id, eanCode)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	return nil
}

// Delete with tracing
func (r *GormProductRepositoryWithTracing) DeleteWithContext(ctx context.Context, id uint) error {
	_, span := tracer.Start(ctx, "repository.DeleteProduct",
		trace.WithAttributes(attribute.Int("product.id", int(id))),
	)
	defer span.End()

	err := r.GormProductRepository.Delete(id)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	return nil
}
