package command

import (
	"fmt"

	"github.com/gamebay/retail-ops/internal/buyback/domain"
)

// UpdateStatusCommand represents the command to update buyback status
type UpdateStatusCommand struct {
	ID     uint
	Status string
}

// UpdateStatusHandler handles buyback status update commands
type UpdateStatusHandler struct {
	repo domain.BuybackRepository
}

// NewUpdateStatusHandler creates a new update status handler
func NewUpdateStatusHandler(repo domain.BuybackRepository) *UpdateStatusHandler {
	return &UpdateStatusHandler{repo: repo}
}

// Handle executes the update status command
func (h *UpdateStatusHandler) Handle(cmd UpdateStatusCommand) error {
	if cmd.ID == 0 {
		return fmt.Errorf("%w: buyback id is required", domain.ErrValidation)
	}
	if cmd.Status != domain.StatusReceived && cmd.Status != domain.StatusProcessed {
		return fmt.Errorf("%w: unknown status %q", domain.ErrValidation, cmd.Status)
	}
	return h.repo.UpdateStatus(cmd.ID, cmd.Status)
}
