package command

import (
	"context"

	"github.com/gamebay/retail-ops/internal/order/domain"
)

// tracedOrderRepository is the ctx-aware surface of the tracing-decorated
// order repository. Handlers upgrade to it when available so repository spans
// join the request trace.
type tracedOrderRepository interface {
	CreateWithContext(ctx context.Context, order *domain.Order) error
	UpdateStatusWithContext(ctx context.Context, id uint, status string) error
}

func createOrder(ctx context.Context, repo domain.OrderRepository, order *domain.Order) error {
	if traced, ok := repo.(tracedOrderRepository); ok {
		return traced.CreateWithContext(ctx, order)
	}
	return repo.Create(order)
}

func updateOrderStatus(ctx context.Context, repo domain.OrderRepository, id uint, status string) error {
	if traced, ok := repo.(tracedOrderRepository); ok {
		return traced.UpdateStatusWithContext(ctx, id, status)
	}
	return repo.UpdateStatus(id, status)
}
