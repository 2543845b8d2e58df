package command

import (
	"context"
	"fmt"

	"github.com/gamebay/retail-ops/internal/product/domain"
	"github.com/gamebay/retail-ops/pkg/logger"
)

// CreateProductCommand represents the command to create a new product. The
// optional Seed materializes a warehouse entry with initial counters in the
// same request.
type CreateProductCommand struct {
	Name         string
	Description  string
	Description2 string
	Category     string
	SubCategory  string
	Price        float64
	Bestseller   bool
	EANCode      string
	SerialNumber string
	YoutubeLink  string
	Class        string
	Images       []string
	IsActive     bool

	Seed *domain.InventorySeed
}

// CreateProductHandler handles product creation command
type CreateProductHandler struct {
	repo      domain.ProductRepository
	inventory domain.Inventory
}

// NewCreateProductHandler creates a new create product handler
func NewCreateProductHandler(repo domain.ProductRepository, inventory domain.Inventory) *CreateProductHandler {
	return &CreateProductHandler{repo: repo, inventory: inventory}
}

// Handle executes the create product command. The product row is committed
// before the warehouse is seeded; a seeding failure leaves the product in
// place and is reported so the caller can retry the seed.
func (h *CreateProductHandler) Handle(ctx context.Context, cmd CreateProductCommand) (*domain.Product, error) {
	if cmd.Name == "" {
		return nil, fmt.Errorf("%w: product name is required", domain.ErrValidation)
	}
	if cmd.Price < 0 {
		return nil, fmt.Errorf("%w: price cannot be negative", domain.ErrValidation)
	}

	product := &domain.Product{
		Name:         cmd.Name,
		Description:  cmd.Description,
		Description2: cmd.Description2,
		Category:     cmd.Category,
		SubCategory:  cmd.SubCategory,
		Price:        cmd.Price,
		Bestseller:   cmd.Bestseller,
		EANCode:      cmd.EANCode,
		SerialNumber: cmd.SerialNumber,
		YoutubeLink:  cmd.YoutubeLink,
		Class:        cmd.Class,
		Images:       cmd.Images,
		IsActive:     cmd.IsActive,
	}

	if err := createProduct(ctx, h.repo, product); err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}

	if cmd.Seed != nil {
		if err := h.inventory.Seed(ctx, product.ID, *cmd.Seed); err != nil {
			return nil, fmt.Errorf("product %d created but warehouse seeding failed: %w", product.ID, err)
		}
		logger.Debug(ctx).
			Uint("product_id", product.ID).
			Int("stock_new", cmd.Seed.StockNew).
			Int("stock_used", cmd.Seed.StockUsed).
			Int("store_new", cmd.Seed.StoreNew).
			Int("store_used", cmd.Seed.StoreUsed).
			Msg("Warehouse seeded for new product")
	}

	return product, nil
}
