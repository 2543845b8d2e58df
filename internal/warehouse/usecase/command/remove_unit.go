package command

import (
	"context"
	"fmt"

	"github.com/gamebay/retail-ops/internal/warehouse/domain"
)

// RemoveUnitCommand represents the command to delete one unit record and
// correct its bucket counter.
type RemoveUnitCommand struct {
	UnitID    uint
	ProductID uint
}

// RemoveUnitHandler handles manual unit removal.
type RemoveUnitHandler struct {
	repo  domain.WarehouseRepository
	units domain.UnitRepository
}

// NewRemoveUnitHandler creates a new remove unit handler
func NewRemoveUnitHandler(repo domain.WarehouseRepository, units domain.UnitRepository) *RemoveUnitHandler {
	return &RemoveUnitHandler{repo: repo, units: units}
}

// Handle executes the remove unit command. Deletion and the counter
// decrement run in one transaction; if the product has no counter record the
// unit stays.
func (h *RemoveUnitHandler) Handle(ctx context.Context, cmd RemoveUnitCommand) error {
	if cmd.UnitID == 0 || cmd.ProductID == 0 {
		return fmt.Errorf("%w: unit_id and product_id are required", domain.ErrValidation)
	}

	unit, err := h.units.FindByID(cmd.UnitID)
	if err != nil {
		return err
	}
	if unit.ProductID != cmd.ProductID {
		return fmt.Errorf("%w: unit %d does not belong to product %d", domain.ErrValidation, cmd.UnitID, cmd.ProductID)
	}

	return removeUnitWithCounter(ctx, h.repo, cmd.UnitID, cmd.ProductID)
}
