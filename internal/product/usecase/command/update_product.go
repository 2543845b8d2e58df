package command

import (
	"context"
	"fmt"

	"github.com/gamebay/retail-ops/internal/product/domain"
	"github.com/gamebay/retail-ops/pkg/logger"
)

// UpdateProductCommand represents the command to update a product. Nil
// pointers mean "leave unchanged".
type UpdateProductCommand struct {
	ID           uint
	Name         *string
	Description  *string
	Description2 *string
	Category     *string
	SubCategory  *string
	Price        *float64
	Bestseller   *bool
	EANCode      *string
	SerialNumber *string
	YoutubeLink  *string
	Class        *string
	Images       []string
	IsActive     *bool
}

// UpdateProductHandler handles product update command. An EAN change is
// pushed down to every unit record of the product so the label stays
// consistent across the catalog and the warehouse.
type UpdateProductHandler struct {
	repo      domain.ProductRepository
	inventory domain.Inventory
}

// NewUpdateProductHandler creates a new update product handler
func NewUpdateProductHandler(repo domain.ProductRepository, inventory domain.Inventory) *UpdateProductHandler {
	return &UpdateProductHandler{repo: repo, inventory: inventory}
}

// Handle executes the update product command
func (h *UpdateProductHandler) Handle(ctx context.Context, cmd UpdateProductCommand) (*domain.Product, error) {
	if cmd.ID == 0 {
		return nil, fmt.Errorf("%w: product id is required", domain.ErrValidation)
	}

	product, err := h.repo.FindByID(cmd.ID)
	if err != nil {
		return nil, err
	}

	eanChanged := false
	if cmd.Name != nil {
		product.Name = *cmd.Name
	}
	if cmd.Description != nil {
		product.Description = *cmd.Description
	}
	if cmd.Description2 != nil {
		product.Description2 = *cmd.Description2
	}
	if cmd.Category != nil {
		product.Category = *cmd.Category
	}
	if cmd.SubCategory != nil {
		product.SubCategory = *cmd.SubCategory
	}
	if cmd.Price != nil {
		if *cmd.Price < 0 {
			return nil, fmt.Errorf("%w: price cannot be negative", domain.ErrValidation)
		}
		product.Price = *cmd.Price
	}
	if cmd.Bestseller != nil {
		product.Bestseller = *cmd.Bestseller
	}
	if cmd.EANCode != nil && *cmd.EANCode != product.EANCode {
		product.EANCode = *cmd.EANCode
		eanChanged = true
	}
	if cmd.SerialNumber != nil {
		product.SerialNumber = *cmd.SerialNumber
	}
	if cmd.YoutubeLink != nil {
		product.YoutubeLink = *cmd.YoutubeLink
	}
	if cmd.Class != nil {
		product.Class = *cmd.Class
	}
	if cmd.Images != nil {
		product.Images = cmd.Images
	}
	if cmd.IsActive != nil {
		product.IsActive = *cmd.IsActive
	}

	if err := h.repo.Update(product); err != nil {
		return nil, fmt.Errorf("failed to update product: %w", err)
	}

	if eanChanged {
		if err := h.inventory.RelabelUnits(ctx, product.ID, product.EANCode); err != nil {
			return nil, fmt.Errorf("failed to relabel units of product %d: %w", product.ID, err)
		}
		logger.Debug(ctx).
			Uint("product_id", product.ID).
			Str("ean_code", product.EANCode).
			Msg("EAN code propagated to unit records")
	}

	return product, nil
}
