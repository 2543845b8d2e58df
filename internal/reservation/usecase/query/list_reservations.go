package query

import (
	"fmt"

	"github.com/gamebay/retail-ops/internal/reservation/domain"
)

// ListReservationsQuery represents the query to list reservations
type ListReservationsQuery struct {
	Limit  int
	Offset int
}

// ListReservationsHandler handles list reservations query
type ListReservationsHandler struct {
	repo domain.ReservationRepository
}

// NewListReservationsHandler creates a new list reservations handler
func NewListReservationsHandler(repo domain.ReservationRepository) *ListReservationsHandler {
	return &ListReservationsHandler{repo: repo}
}

// Handle executes the list reservations query
func (h *ListReservationsHandler) Handle(q ListReservationsQuery) ([]domain.Reservation, error) {
	if q.Limit <= 0 {
		q.Limit = 50
	}

	reservations, err := h.repo.FindAll(q.Limit, q.Offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list reservations: %w", err)
	}
	return reservations, nil
}
