package command

import (
	"context"
	"fmt"

	"github.com/gamebay/retail-ops/internal/product/domain"
	"github.com/gamebay/retail-ops/pkg/logger"
)

// DeleteProductCommand represents the command to delete a product
type DeleteProductCommand struct {
	ID uint
}

// DeleteProductHandler deletes a product together with its warehouse entry
// and unit records.
type DeleteProductHandler struct {
	repo      domain.ProductRepository
	inventory domain.Inventory
}

// NewDeleteProductHandler creates a new delete product handler
func NewDeleteProductHandler(repo domain.ProductRepository, inventory domain.Inventory) *DeleteProductHandler {
	return &DeleteProductHandler{repo: repo, inventory: inventory}
}

// Handle executes the delete product command
func (h *DeleteProductHandler) Handle(ctx context.Context, cmd DeleteProductCommand) error {
	if cmd.ID == 0 {
		return fmt.Errorf("%w: product id is required", domain.ErrValidation)
	}

	if _, err := h.repo.FindByID(cmd.ID); err != nil {
		return err
	}

	if err := h.inventory.Purge(ctx, cmd.ID); err != nil {
		return fmt.Errorf("failed to purge warehouse data for product %d: %w", cmd.ID, err)
	}
	if err := deleteProduct(ctx, h.repo, cmd.ID); err != nil {
		return fmt.Errorf("failed to delete product %d: %w", cmd.ID, err)
	}

	logger.Info(ctx).
		Uint("product_id", cmd.ID).
		Msg("Product deleted with warehouse entry and units")
	return nil
}
