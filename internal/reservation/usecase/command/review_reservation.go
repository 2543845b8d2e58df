package command

import (
	"fmt"

	"github.com/gamebay/retail-ops/internal/reservation/domain"
)

// ReviewReservationCommand confirms or declines a booking. Confirming clears
// the declined flag and declining clears the confirmed flag.
type ReviewReservationCommand struct {
	ID      uint
	Confirm bool
}

// ReviewReservationHandler handles reservation review commands
type ReviewReservationHandler struct {
	repo domain.ReservationRepository
}

// NewReviewReservationHandler creates a new review reservation handler
func NewReviewReservationHandler(repo domain.ReservationRepository) *ReviewReservationHandler {
	return &ReviewReservationHandler{repo: repo}
}

// Handle executes the review command
func (h *ReviewReservationHandler) Handle(cmd ReviewReservationCommand) error {
	if cmd.ID == 0 {
		return fmt.Errorf("%w: reservation id is required", domain.ErrValidation)
	}
	return h.repo.SetReview(cmd.ID, cmd.Confirm, !cmd.Confirm)
}
