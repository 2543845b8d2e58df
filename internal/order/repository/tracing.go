package repository

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"gorm.io/gorm"

	"github.com/gamebay/retail-ops/internal/order/domain"
)

var tracer = otel.Tracer("order-repository")

// GormOrderRepositoryWithTracing wraps GormOrderRepository with tracing
type GormOrderRepositoryWithTracing struct {
	*GormOrderRepository
}

// NewGormOrderRepositoryWithTracing creates a new repository with tracing
func NewGormOrderRepositoryWithTracing(db *gorm.DB) *GormOrderRepositoryWithTracing {
	return &GormOrderRepositoryWithTracing{
		GormOrderRepository: NewGormOrderRepository(db),
	}
}

// Create with tracing
func (r *GormOrderRepositoryWithTracing) CreateWithContext(ctx context.Context, order *domain.Order) error {
	_, span := tracer.Start(ctx, "repository.CreateOrder",
		trace.WithAttributes(
			attribute.Int("order.user_id", int(order.UserID)),
			attribute.Int("order.items", len(order.Items)),
			attribute.Float64("order.amount", order.Amount),
		),
	)
	defer span.End()

	err := r.GormOrderRepository.Create(order)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	span.SetAttributes(attribute.String("order.number", order.Number))
	return nil
}

// UpdateStatus with tracing
func (r *GormOrderRepositoryWithTracing) UpdateStatusWithContext(ctx context.Context, id uint, status string) error {
	_, span := tracer.Start(ctx, "repository.UpdateOrderStatus",
		trace.WithAttributes(
			attribute.Int("order.id", int(id)),
			attribute.String("order.status", status),
		),
	)
	defer span.End()

	err := r.GormOrderRepository.UpdateStatus(id, status)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	return nil
}
