package query

import (
	"fmt"

	"github.com/gamebay/retail-ops/internal/buyback/domain"
)

// ListBuybacksQuery represents the query to list buybacks
type ListBuybacksQuery struct {
	Limit  int
	Offset int
}

// ListBuybacksHandler handles list buybacks query
type ListBuybacksHandler struct {
	repo domain.BuybackRepository
}

// NewListBuybacksHandler creates a new list buybacks handler
func NewListBuybacksHandler(repo domain.BuybackRepository) *ListBuybacksHandler {
	return &ListBuybacksHandler{repo: repo}
}

// Handle executes the list buybacks query
func (h *ListBuybacksHandler) Handle(q ListBuybacksQuery) ([]domain.Buyback, error) {
	if q.Limit <= 0 {
		q.Limit = 50
	}

	buybacks, err := h.repo.FindAll(q.Limit, q.Offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list buybacks: %w", err)
	}
	return buybacks, nil
}
