package command

import (
	"context"
	"testing"

	"github.com/gamebay/retail-ops/internal/order/domain"
)

// tracedFakeOrderRepo layers ctx-aware variants over the plain fake the way
// the tracing decorator layers them over the gorm repository.
type tracedFakeOrderRepo struct {
	*fakeOrderRepo
	ctxCreates int
	ctxUpdates int
}

func (r *tracedFakeOrderRepo) CreateWithContext(ctx context.Context, order *domain.Order) error {
	r.ctxCreates++
	return r.Create(order)
}

func (r *tracedFakeOrderRepo) UpdateStatusWithContext(ctx context.Context, id uint, status string) error {
	r.ctxUpdates++
	return r.UpdateStatus(id, status)
}

func TestPlaceOrderPrefersContextVariant(t *testing.T) {
	repo := &tracedFakeOrderRepo{fakeOrderRepo: newFakeOrderRepo()}
	handler := NewPlaceOrderHandler(repo, &fakeStock{}, &fakeCarts{}, nil)

	order, err := handler.Handle(context.Background(), PlaceOrderCommand{
		UserID: 1,
		Items:  []domain.OrderItem{{ProductID: 1, Condition: "new", Price: 10, Quantity: 1}},
	})
	if err != nil {
		t.Fatalf("Handle failed: %v", err)
	}
	if repo.ctxCreates != 1 {
		t.Fatalf("ctx creates = %d, want 1", repo.ctxCreates)
	}
	if _, err := repo.FindByID(order.ID); err != nil {
		t.Fatalf("order not persisted: %v", err)
	}
}

func TestUpdateOrderStatusPrefersContextVariant(t *testing.T) {
	repo := &tracedFakeOrderRepo{fakeOrderRepo: newFakeOrderRepo()}
	placeHandler := NewPlaceOrderHandler(repo, &fakeStock{}, &fakeCarts{}, nil)
	statusHandler := NewUpdateStatusHandler(repo)

	order, err := placeHandler.Handle(context.Background(), PlaceOrderCommand{
		UserID: 1,
		Items:  []domain.OrderItem{{ProductID: 1, Condition: "new", Price: 10, Quantity: 1}},
	})
	if err != nil {
		t.Fatalf("placing order: %v", err)
	}

	if err := statusHandler.Handle(context.Background(), UpdateStatusCommand{OrderID: order.ID, Status: domain.StatusShipped}); err != nil {
		t.Fatalf("Handle failed: %v", err)
	}
	if repo.ctxUpdates != 1 {
		t.Fatalf("ctx status updates = %d, want 1", repo.ctxUpdates)
	}
}
