package command

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/gamebay/retail-ops/internal/order/domain"
)

type fakeOrderRepo struct {
	mu     sync.Mutex
	orders map[uint]domain.Order
	nextID uint
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{orders: map[uint]domain.Order{}, nextID: 1}
}

func (r *fakeOrderRepo) Create(o *domain.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	o.ID = r.nextID
	r.nextID++
	r.orders[o.ID] = *o
	return nil
}

func (r *fakeOrderRepo) FindByID(id uint) (*domain.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	o, ok := r.orders[id]
	if !ok {
		return nil, fmt.Errorf("%w: id %d", domain.ErrNotFound, id)
	}
	return &o, nil
}

func (r *fakeOrderRepo) FindAll(limit, offset int) ([]domain.Order, error) {
	return nil, nil
}

func (r *fakeOrderRepo) FindByUser(userID uint, limit, offset int) ([]domain.Order, error) {
	return nil, nil
}

func (r *fakeOrderRepo) UpdateStatus(id uint, status string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	o, ok := r.orders[id]
	if !ok {
		return fmt.Errorf("%w: id %d", domain.ErrNotFound, id)
	}
	o.Status = status
	r.orders[id] = o
	return nil
}

func (r *fakeOrderRepo) SetPayment(id uint, paid bool) error {
	return nil
}

func (r *fakeOrderRepo) Delete(id uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.orders[id]; !ok {
		return fmt.Errorf("%w: id %d", domain.ErrNotFound, id)
	}
	delete(r.orders, id)
	return nil
}

type deduction struct {
	productID uint
	condition string
	quantity  int
}

type fakeStock struct {
	mu         sync.Mutex
	deductions []deduction
	err        error
}

func (s *fakeStock) DeductStock(ctx context.Context, productID uint, condition string, quantity int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return s.err
	}
	s.deductions = append(s.deductions, deduction{productID, condition, quantity})
	return nil
}

type fakeCarts struct {
	mu      sync.Mutex
	cleared []uint
}

func (c *fakeCarts) ClearCart(userID uint) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cleared = append(c.cleared, userID)
	return nil
}

func TestPlaceOrder(t *testing.T) {
	repo := newFakeOrderRepo()
	stock := &fakeStock{}
	carts := &fakeCarts{}
	handler := NewPlaceOrderHandler(repo, stock, carts, nil)

	order, err := handler.Handle(context.Background(), PlaceOrderCommand{
		UserID: 7,
		Items: []domain.OrderItem{
			{ProductID: 1, Name: "PS5", Condition: "new", Price: 499.99, Quantity: 1},
			{ProductID: 2, Name: "DualSense", Condition: "used", Price: 39.99, Quantity: 2},
		},
		Address:       map[string]string{"city": "Bratislava"},
		PaymentMethod: "card",
	})
	if err != nil {
		t.Fatalf("Handle failed: %v", err)
	}

	// Amount is computed server side from the line prices.
	want := 499.99 + 2*39.99
	if order.Amount != want {
		t.Fatalf("amount = %v, want %v", order.Amount, want)
	}
	if order.Status != domain.StatusPlaced {
		t.Fatalf("status = %q, want %q", order.Status, domain.StatusPlaced)
	}
	if order.Number == "" {
		t.Fatal("expected a generated order number")
	}

	if len(stock.deductions) != 2 {
		t.Fatalf("deductions = %v, want one per line", stock.deductions)
	}
	if stock.deductions[0] != (deduction{1, "new", 1}) || stock.deductions[1] != (deduction{2, "used", 2}) {
		t.Fatalf("unexpected deductions: %v", stock.deductions)
	}

	if len(carts.cleared) != 1 || carts.cleared[0] != 7 {
		t.Fatalf("cart cleared for %v, want [7]", carts.cleared)
	}
}

func TestPlaceOrderSurvivesStockFailure(t *testing.T) {
	repo := newFakeOrderRepo()
	stock := &fakeStock{err: errors.New("warehouse down")}
	carts := &fakeCarts{}
	handler := NewPlaceOrderHandler(repo, stock, carts, nil)

	order, err := handler.Handle(context.Background(), PlaceOrderCommand{
		UserID: 1,
		Items: []domain.OrderItem{
			{ProductID: 1, Condition: "new", Price: 10, Quantity: 1},
		},
	})
	if err != nil {
		t.Fatalf("stock failure must not block the sale: %v", err)
	}
	if _, err := repo.FindByID(order.ID); err != nil {
		t.Fatalf("order not persisted: %v", err)
	}
	if len(carts.cleared) != 1 {
		t.Fatal("cart should still be cleared")
	}
}

func TestPlaceOrderValidation(t *testing.T) {
	handler := NewPlaceOrderHandler(newFakeOrderRepo(), &fakeStock{}, &fakeCarts{}, nil)

	cases := []PlaceOrderCommand{
		{UserID: 0, Items: []domain.OrderItem{{ProductID: 1, Condition: "new", Quantity: 1}}},
		{UserID: 1},
		{UserID: 1, Items: []domain.OrderItem{{ProductID: 0, Condition: "new", Quantity: 1}}},
		{UserID: 1, Items: []domain.OrderItem{{ProductID: 1, Condition: "new", Quantity: 0}}},
		{UserID: 1, Items: []domain.OrderItem{{ProductID: 1, Condition: "refurbished", Quantity: 1}}},
	}
	for i, cmd := range cases {
		if _, err := handler.Handle(context.Background(), cmd); !errors.Is(err, domain.ErrValidation) {
			t.Fatalf("case %d: err = %v, want ErrValidation", i, err)
		}
	}
}

func TestUpdateOrderStatus(t *testing.T) {
	repo := newFakeOrderRepo()
	placeHandler := NewPlaceOrderHandler(repo, &fakeStock{}, &fakeCarts{}, nil)
	statusHandler := NewUpdateStatusHandler(repo)

	order, err := placeHandler.Handle(context.Background(), PlaceOrderCommand{
		UserID: 1,
		Items:  []domain.OrderItem{{ProductID: 1, Condition: "new", Price: 10, Quantity: 1}},
	})
	if err != nil {
		t.Fatalf("placing order: %v", err)
	}

	ctx := context.Background()
	if err := statusHandler.Handle(ctx, UpdateStatusCommand{OrderID: order.ID, Status: domain.StatusShipped}); err != nil {
		t.Fatalf("Handle failed: %v", err)
	}
	stored, _ := repo.FindByID(order.ID)
	if stored.Status != domain.StatusShipped {
		t.Fatalf("status = %q, want %q", stored.Status, domain.StatusShipped)
	}

	if err := statusHandler.Handle(ctx, UpdateStatusCommand{OrderID: order.ID, Status: "Lost In Transit"}); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("unknown status: err = %v, want ErrValidation", err)
	}
	if err := statusHandler.Handle(ctx, UpdateStatusCommand{OrderID: 999, Status: domain.StatusShipped}); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("missing order: err = %v, want ErrNotFound", err)
	}
}
