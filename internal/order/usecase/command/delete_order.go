package command

import (
	"context"
	"fmt"

	"github.com/gamebay/retail-ops/internal/order/domain"
)

// DeleteOrderCommand represents the command to delete an order
type DeleteOrderCommand struct {
	OrderID uint
}

// DeleteOrderHandler handles delete order command. Deleting an order does not
// restock anything; cancellations with restock go through the warehouse
// endpoints.
type DeleteOrderHandler struct {
	repo domain.OrderRepository
}

// NewDeleteOrderHandler creates a new delete order handler
func NewDeleteOrderHandler(repo domain.OrderRepository) *DeleteOrderHandler {
	return &DeleteOrderHandler{repo: repo}
}

// Handle executes the delete order command
func (h *DeleteOrderHandler) Handle(ctx context.Context, cmd DeleteOrderCommand) error {
	if cmd.OrderID == 0 {
		return fmt.Errorf("%w: order id is required", domain.ErrValidation)
	}
	if _, err := h.repo.FindByID(cmd.OrderID); err != nil {
		return err
	}
	return h.repo.Delete(cmd.OrderID)
}
