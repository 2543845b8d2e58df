package command

import (
	"fmt"

	"github.com/gamebay/retail-ops/internal/user/domain"
	"github.com/gamebay/retail-ops/pkg/auth"
)

// RegisterUserCommand represents the command to register a new user
type RegisterUserCommand struct {
	Name     string
	Email    string
	Password string
	Role     string // Optional, defaults to "user"
}

// RegisterUserHandler handles user registration command
type RegisterUserHandler struct {
	repo domain.UserRepository
}

// NewRegisterUserHandler creates a new register user handler
func NewRegisterUserHandler(repo domain.UserRepository) *RegisterUserHandler {
	return &RegisterUserHandler{repo: repo}
}

// Handle executes the register user command
func (h *RegisterUserHandler) Handle(cmd RegisterUserCommand) (*domain.User, error) {
	if cmd.Name == "" {
		return nil, fmt.Errorf("%w: name is required", domain.ErrValidation)
	}
	if cmd.Email == "" {
		return nil, fmt.Errorf("%w: email is required", domain.ErrValidation)
	}
	if len(cmd.Password) < 8 {
		return nil, fmt.Errorf("%w: password must be at least 8 characters", domain.ErrValidation)
	}

	if existing, _ := h.repo.FindByEmail(cmd.Email); existing != nil {
		return nil, fmt.Errorf("%w: email already registered", domain.ErrValidation)
	}

	hashedPassword, err := auth.HashPassword(cmd.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	role := cmd.Role
	if role == "" {
		role = domain.RoleUser
	}
	if role != domain.RoleUser && role != domain.RoleAdmin {
		return nil, fmt.Errorf("%w: invalid role %q", domain.ErrValidation, cmd.Role)
	}

	user := &domain.User{
		Name:     cmd.Name,
		Email:    cmd.Email,
		Password: hashedPassword,
		Role:     role,
		CartData: domain.CartData{},
	}

	if err := h.repo.Create(user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return user, nil
}
