package command

import (
	"context"
	"fmt"

	"github.com/gamebay/retail-ops/internal/product/domain"
)

// SetEANCommand represents the command to overwrite a product's EAN code.
type SetEANCommand struct {
	ProductID uint
	EANCode   string
}

// SetEANHandler writes the EAN on the product row and on every unit record
// of the product.
type SetEANHandler struct {
	repo      domain.ProductRepository
	inventory domain.Inventory
}

// NewSetEANHandler creates a new set EAN handler
func NewSetEANHandler(repo domain.ProductRepository, inventory domain.Inventory) *SetEANHandler {
	return &SetEANHandler{repo: repo, inventory: inventory}
}

// Handle executes the set EAN command
func (h *SetEANHandler) Handle(ctx context.Context, cmd SetEANCommand) (*domain.Product, error) {
	if cmd.ProductID == 0 {
		return nil, fmt.Errorf("%w: product id is required", domain.ErrValidation)
	}
	if cmd.EANCode == "" {
		return nil, fmt.Errorf("%w: ean_code is required", domain.ErrValidation)
	}

	if err := updateProductEAN(ctx, h.repo, cmd.ProductID, cmd.EANCode); err != nil {
		return nil, err
	}
	if err := h.inventory.RelabelUnits(ctx, cmd.ProductID, cmd.EANCode); err != nil {
		return nil, fmt.Errorf("failed to relabel units of product %d: %w", cmd.ProductID, err)
	}

	return h.repo.FindByID(cmd.ProductID)
}
