package command

import (
	"context"
	"fmt"

	"github.com/gamebay/retail-ops/internal/buyback/domain"
	"github.com/gamebay/retail-ops/pkg/logger"
)

// CreateBuybackCommand represents the command to record a trade-in intake
type CreateBuybackCommand struct {
	FirstName   string
	LastName    string
	Nationality string
	Residence   string
	DateOfBirth string
	PhoneNumber string
	Products    []domain.BuybackProduct
	PDFPath     string
}

// CreateBuybackHandler handles buyback creation commands
type CreateBuybackHandler struct {
	repo domain.BuybackRepository
}

// NewCreateBuybackHandler creates a new create buyback handler
func NewCreateBuybackHandler(repo domain.BuybackRepository) *CreateBuybackHandler {
	return &CreateBuybackHandler{repo: repo}
}

// Handle executes the create buyback command. The total is computed from the
// submitted line prices, never taken from the client.
func (h *CreateBuybackHandler) Handle(ctx context.Context, cmd CreateBuybackCommand) (*domain.Buyback, error) {
	if cmd.FirstName == "" || cmd.LastName == "" {
		return nil, fmt.Errorf("%w: customer name is required", domain.ErrValidation)
	}
	if len(cmd.Products) == 0 {
		return nil, fmt.Errorf("%w: at least one product is required", domain.ErrValidation)
	}

	var total float64
	for i, p := range cmd.Products {
		if p.Name == "" {
			return nil, fmt.Errorf("%w: product %d has no name", domain.ErrValidation, i)
		}
		if p.Price < 0 {
			return nil, fmt.Errorf("%w: product %q has a negative price", domain.ErrValidation, p.Name)
		}
		total += p.Price
	}

	buyback := &domain.Buyback{
		FirstName:   cmd.FirstName,
		LastName:    cmd.LastName,
		Nationality: cmd.Nationality,
		Residence:   cmd.Residence,
		DateOfBirth: cmd.DateOfBirth,
		PhoneNumber: cmd.PhoneNumber,
		Products:    cmd.Products,
		TotalAmount: total,
		Status:      domain.StatusReceived,
		PDFPath:     cmd.PDFPath,
	}
	if err := h.repo.Create(buyback); err != nil {
		return nil, err
	}

	logger.Info(ctx).
		Uint("buyback_id", buyback.ID).
		Int("products", len(buyback.Products)).
		Float64("total_amount", buyback.TotalAmount).
		Msg("Buyback recorded")

	return buyback, nil
}
