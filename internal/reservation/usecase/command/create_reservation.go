package command

import (
	"context"
	"fmt"

	"github.com/gamebay/retail-ops/internal/reservation/domain"
	"github.com/gamebay/retail-ops/pkg/logger"
)

// CreateReservationCommand represents the command to create a venue booking
type CreateReservationCommand struct {
	DateTime string
	Duration string
	Persons  int
	Console  string
	Notes    string
	Email    string
}

// CreateReservationHandler handles reservation creation commands
type CreateReservationHandler struct {
	repo domain.ReservationRepository
}

// NewCreateReservationHandler creates a new create reservation handler
func NewCreateReservationHandler(repo domain.ReservationRepository) *CreateReservationHandler {
	return &CreateReservationHandler{repo: repo}
}

// Handle executes the create reservation command
func (h *CreateReservationHandler) Handle(ctx context.Context, cmd CreateReservationCommand) (*domain.Reservation, error) {
	if cmd.DateTime == "" || cmd.Duration == "" {
		return nil, fmt.Errorf("%w: date and duration are required", domain.ErrValidation)
	}
	if cmd.Persons <= 0 {
		return nil, fmt.Errorf("%w: persons must be positive", domain.ErrValidation)
	}
	if cmd.Console == "" {
		return nil, fmt.Errorf("%w: console is required", domain.ErrValidation)
	}
	if cmd.Email == "" {
		return nil, fmt.Errorf("%w: email is required", domain.ErrValidation)
	}

	res := &domain.Reservation{
		DateTime: cmd.DateTime,
		Duration: cmd.Duration,
		Persons:  cmd.Persons,
		Console:  cmd.Console,
		Notes:    cmd.Notes,
		Email:    cmd.Email,
	}
	if err := h.repo.Create(res); err != nil {
		return nil, err
	}

	logger.Info(ctx).
		Uint("reservation_id", res.ID).
		Str("console", res.Console).
		Str("date_time", res.DateTime).
		Msg("Reservation created")

	return res, nil
}
