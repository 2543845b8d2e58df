package command

import (
	"context"
	"fmt"

	"github.com/gamebay/retail-ops/internal/warehouse/domain"
	"github.com/gamebay/retail-ops/pkg/logger"
)

// AdjustQuantityCommand represents the command to add a delta (positive or
// negative) to one bucket counter.
type AdjustQuantityCommand struct {
	ProductID uint
	Condition domain.Condition
	Location  domain.Location
	Delta     int
}

// AdjustQuantityHandler applies clamped counter deltas. Order placement uses
// it to decrement stock per line item. It is a pure counter mutation: unit
// records are not reconciled, the sold units are assumed to leave the tracked
// lifecycle through a separate flow.
type AdjustQuantityHandler struct {
	repo domain.WarehouseRepository
}

// NewAdjustQuantityHandler creates a new adjust quantity handler
func NewAdjustQuantityHandler(repo domain.WarehouseRepository) *AdjustQuantityHandler {
	return &AdjustQuantityHandler{repo: repo}
}

// Handle executes the adjust quantity command. The result is floored at zero
// no matter how far negative the cumulative delta would go.
func (h *AdjustQuantityHandler) Handle(ctx context.Context, cmd AdjustQuantityCommand) (*domain.Warehouse, error) {
	if cmd.ProductID == 0 {
		return nil, fmt.Errorf("%w: product_id is required", domain.ErrValidation)
	}
	if _, err := domain.ParseCondition(string(cmd.Condition)); err != nil {
		return nil, err
	}
	if _, err := domain.ParseLocation(string(cmd.Location)); err != nil {
		return nil, err
	}
	if cmd.Delta == 0 {
		return nil, fmt.Errorf("%w: delta must be nonzero", domain.ErrValidation)
	}

	warehouse, err := adjustBucket(ctx, h.repo, cmd.ProductID, cmd.Condition, cmd.Location, cmd.Delta)
	if err != nil {
		return nil, err
	}

	logger.Debug(ctx).
		Uint("product_id", cmd.ProductID).
		Str("condition", string(cmd.Condition)).
		Str("location", string(cmd.Location)).
		Int("delta", cmd.Delta).
		Int("count", warehouse.Bucket(cmd.Condition, cmd.Location)).
		Msg("Bucket counter adjusted")

	return warehouse, nil
}
