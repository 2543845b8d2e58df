package query

import (
	"fmt"

	"github.com/gamebay/retail-ops/internal/user/domain"
)

// GetUserQuery represents the query to get a single user
type GetUserQuery struct {
	ID uint
}

// GetUserHandler handles get user query
type GetUserHandler struct {
	repo domain.UserRepository
}

// NewGetUserHandler creates a new get user handler
func NewGetUserHandler(repo domain.UserRepository) *GetUserHandler {
	return &GetUserHandler{repo: repo}
}

// Handle executes the get user query
func (h *GetUserHandler) Handle(q GetUserQuery) (*domain.User, error) {
	if q.ID == 0 {
		return nil, fmt.Errorf("%w: user id is required", domain.ErrValidation)
	}
	return h.repo.FindByID(q.ID)
}
