package query

import (
	"fmt"

	"github.com/gamebay/retail-ops/internal/order/domain"
)

// ListOrdersQuery represents the query to list orders, optionally narrowed
// to one user.
type ListOrdersQuery struct {
	UserID uint
	Limit  int
	Offset int
}

// ListOrdersHandler handles list orders query
type ListOrdersHandler struct {
	repo domain.OrderRepository
}

// NewListOrdersHandler creates a new list orders handler
func NewListOrdersHandler(repo domain.OrderRepository) *ListOrdersHandler {
	return &ListOrdersHandler{repo: repo}
}

// Handle executes the list orders query
func (h *ListOrdersHandler) Handle(q ListOrdersQuery) ([]domain.Order, error) {
	if q.Limit <= 0 {
		q.Limit = 50
	}

	var (
		orders []domain.Order
		err    error
	)
	if q.UserID != 0 {
		orders, err = h.repo.FindByUser(q.UserID, q.Limit, q.Offset)
	} else {
		orders, err = h.repo.FindAll(q.Limit, q.Offset)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}

	return orders, nil
}
