package command

import (
	"context"
	"fmt"

	"github.com/gamebay/retail-ops/internal/warehouse/domain"
	"github.com/gamebay/retail-ops/pkg/logger"
)

// SetUnitIdentityCommand represents the command to attach identity fields to
// a unit record.
type SetUnitIdentityCommand struct {
	UnitID       uint
	EANCode      string
	SerialNumber string
}

// SetUnitIdentityHandler updates a unit's EAN and serial number. A non-empty
// EAN is propagated to the owning product and to every sibling unit record of
// that product; counts are unaffected.
type SetUnitIdentityHandler struct {
	units   domain.UnitRepository
	catalog domain.ProductCatalog
}

// NewSetUnitIdentityHandler creates a new set unit identity handler
func NewSetUnitIdentityHandler(units domain.UnitRepository, catalog domain.ProductCatalog) *SetUnitIdentityHandler {
	return &SetUnitIdentityHandler{units: units, catalog: catalog}
}

// Handle executes the set unit identity command.
func (h *SetUnitIdentityHandler) Handle(ctx context.Context, cmd SetUnitIdentityCommand) (*domain.WarehouseUnit, error) {
	if cmd.UnitID == 0 {
		return nil, fmt.Errorf("%w: unit_id is required", domain.ErrValidation)
	}

	unit, err := h.units.FindByID(cmd.UnitID)
	if err != nil {
		return nil, err
	}

	if err := h.units.UpdateIdentity(cmd.UnitID, cmd.EANCode, cmd.SerialNumber); err != nil {
		return nil, fmt.Errorf("failed to update unit %d: %w", cmd.UnitID, err)
	}

	if cmd.EANCode != "" {
		if err := h.catalog.UpdateEAN(unit.ProductID, cmd.EANCode); err != nil {
			return nil, fmt.Errorf("failed to propagate EAN to product %d: %w", unit.ProductID, err)
		}
		if err := h.units.UpdateEANByProduct(unit.ProductID, cmd.EANCode); err != nil {
			return nil, fmt.Errorf("failed to propagate EAN to sibling units of product %d: %w", unit.ProductID, err)
		}

		logger.Debug(ctx).
			Uint("unit_id", cmd.UnitID).
			Uint("product_id", unit.ProductID).
			Str("ean_code", cmd.EANCode).
			Msg("EAN code propagated to product and sibling units")
	}

	return h.units.FindByID(cmd.UnitID)
}
