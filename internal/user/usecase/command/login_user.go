package command

import (
	"fmt"

	"github.com/gamebay/retail-ops/internal/user/domain"
	"github.com/gamebay/retail-ops/pkg/auth"
)

// LoginUserCommand represents the command to login a user
type LoginUserCommand struct {
	Email    string
	Password string
}

// LoginResponse represents the response after successful login
type LoginResponse struct {
	Token string       `json:"token"`
	User  *domain.User `json:"user"`
}

// LoginUserHandler handles user login command
type LoginUserHandler struct {
	repo domain.UserRepository
}

// NewLoginUserHandler creates a new login user handler
func NewLoginUserHandler(repo domain.UserRepository) *LoginUserHandler {
	return &LoginUserHandler{repo: repo}
}

// Handle executes the login user command
func (h *LoginUserHandler) Handle(cmd LoginUserCommand) (*LoginResponse, error) {
	if cmd.Email == "" {
		return nil, fmt.Errorf("%w: email is required", domain.ErrValidation)
	}
	if cmd.Password == "" {
		return nil, fmt.Errorf("%w: password is required", domain.ErrValidation)
	}

	user, err := h.repo.FindByEmail(cmd.Email)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid credentials", domain.ErrValidation)
	}

	if !auth.CheckPassword(user.Password, cmd.Password) {
		return nil, fmt.Errorf("%w: invalid credentials", domain.ErrValidation)
	}

	token, err := auth.GenerateToken(user.ID, user.Email, user.Role)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	return &LoginResponse{
		Token: token,
		User:  user,
	}, nil
}
