package command

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/gamebay/retail-ops/internal/order/domain"
	"github.com/gamebay/retail-ops/kafka"
	"github.com/gamebay/retail-ops/pkg/logger"
)

// PlaceOrderCommand represents the command to place an order.
type PlaceOrderCommand struct {
	UserID        uint
	Items         []domain.OrderItem
	Address       map[string]string
	PaymentMethod string
}

// PlaceOrderHandler persists the order, deducts the sold quantities from the
// in-stock counters, clears the customer's cart and announces the order on
// the bus.
//
// Stock deduction is a clamped counter write per line: a product without a
// warehouse entry, or with fewer counted items than were sold, does not block
// the sale. Retiring the matching unit records is a downstream concern fed by
// the order.placed event.
type PlaceOrderHandler struct {
	repo      domain.OrderRepository
	stock     domain.StockAdjuster
	carts     domain.CartClearer
	publisher *kafka.Publisher
}

// NewPlaceOrderHandler creates a new place order handler
func NewPlaceOrderHandler(repo domain.OrderRepository, stock domain.StockAdjuster, carts domain.CartClearer, publisher *kafka.Publisher) *PlaceOrderHandler {
	return &PlaceOrderHandler{repo: repo, stock: stock, carts: carts, publisher: publisher}
}

// Handle executes the place order command
func (h *PlaceOrderHandler) Handle(ctx context.Context, cmd PlaceOrderCommand) (*domain.Order, error) {
	if cmd.UserID == 0 {
		return nil, fmt.Errorf("%w: user_id is required", domain.ErrValidation)
	}
	if len(cmd.Items) == 0 {
		return nil, fmt.Errorf("%w: order must contain at least one item", domain.ErrValidation)
	}

	var amount float64
	for i, item := range cmd.Items {
		if item.ProductID == 0 {
			return nil, fmt.Errorf("%w: item %d has no product_id", domain.ErrValidation, i)
		}
		if item.Quantity <= 0 {
			return nil, fmt.Errorf("%w: item %d has non-positive quantity", domain.ErrValidation, i)
		}
		if item.Condition != "new" && item.Condition != "used" {
			return nil, fmt.Errorf("%w: item %d has unknown condition %q", domain.ErrValidation, i, item.Condition)
		}
		amount += item.Price * float64(item.Quantity)
	}

	order := &domain.Order{
		Number:        fmt.Sprintf("ORD-%s", uuid.New().String()[:8]),
		UserID:        cmd.UserID,
		Items:         cmd.Items,
		Amount:        amount,
		Address:       cmd.Address,
		Status:        domain.StatusPlaced,
		PaymentMethod: cmd.PaymentMethod,
	}

	if err := createOrder(ctx, h.repo, order); err != nil {
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	// Counter deduction is best effort per line; a failed line is logged and
	// the sale goes through, the reconciler's counters are advisory here.
	for _, item := range order.Items {
		if err := h.stock.DeductStock(ctx, item.ProductID, item.Condition, item.Quantity); err != nil {
			logger.Warn(ctx).
				Err(err).
				Uint("order_id", order.ID).
				Uint("product_id", item.ProductID).
				Str("condition", item.Condition).
				Int("quantity", item.Quantity).
				Msg("Failed to deduct stock for order line")
		}
	}

	if err := h.carts.ClearCart(cmd.UserID); err != nil {
		logger.Warn(ctx).
			Err(err).
			Uint("user_id", cmd.UserID).
			Msg("Failed to clear cart after order placement")
	}

	event := kafka.OrderPlacedEvent{
		OrderID:       order.ID,
		OrderNumber:   order.Number,
		UserID:        order.UserID,
		Amount:        order.Amount,
		PaymentMethod: order.PaymentMethod,
	}
	for _, item := range order.Items {
		event.Items = append(event.Items, kafka.OrderLineItem{
			ProductID: item.ProductID,
			Name:      item.Name,
			Condition: item.Condition,
			Price:     item.Price,
			Quantity:  item.Quantity,
		})
	}
	if err := h.publisher.PublishOrderPlaced(ctx, event); err != nil {
		logger.Error(ctx).
			Err(err).
			Uint("order_id", order.ID).
			Msg("Failed to publish order placed event")
	}

	logger.Info(ctx).
		Uint("order_id", order.ID).
		Str("order_number", order.Number).
		Uint("user_id", order.UserID).
		Float64("amount", order.Amount).
		Int("items", len(order.Items)).
		Msg("Order placed")

	return order, nil
}
