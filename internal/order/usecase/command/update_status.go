package command

import (
	"context"
	"fmt"

	"github.com/gamebay/retail-ops/internal/order/domain"
)

// UpdateStatusCommand represents the command to move an order through the
// fulfilment flow.
type UpdateStatusCommand struct {
	OrderID uint
	Status  string
}

var validStatuses = map[string]bool{
	domain.StatusPlaced:         true,
	domain.StatusPacking:        true,
	domain.StatusShipped:        true,
	domain.StatusOutForDelivery: true,
	domain.StatusDelivered:      true,
}

// UpdateStatusHandler handles update status command
type UpdateStatusHandler struct {
	repo domain.OrderRepository
}

// NewUpdateStatusHandler creates a new update status handler
func NewUpdateStatusHandler(repo domain.OrderRepository) *UpdateStatusHandler {
	return &UpdateStatusHandler{repo: repo}
}

// Handle executes the update status command
func (h *UpdateStatusHandler) Handle(ctx context.Context, cmd UpdateStatusCommand) error {
	if cmd.OrderID == 0 {
		return fmt.Errorf("%w: order id is required", domain.ErrValidation)
	}
	if !validStatuses[cmd.Status] {
		return fmt.Errorf("%w: unknown status %q", domain.ErrValidation, cmd.Status)
	}

	return updateOrderStatus(ctx, h.repo, cmd.OrderID, cmd.Status)
}
