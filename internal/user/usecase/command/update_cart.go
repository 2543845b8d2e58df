package command

import (
	"fmt"

	"github.com/gamebay/retail-ops/internal/user/domain"
)

// AddToCartCommand adds one unit of an item in a given condition to the cart.
type AddToCartCommand struct {
	UserID    uint
	ItemID    string
	Condition string
}

// UpdateCartCommand overwrites the quantity of one cart line. Quantity zero
// removes the line.
type UpdateCartCommand struct {
	UserID    uint
	ItemID    string
	Condition string
	Quantity  int
}

// CartHandler handles cart mutation commands.
type CartHandler struct {
	repo domain.UserRepository
}

// NewCartHandler creates a new cart handler
func NewCartHandler(repo domain.UserRepository) *CartHandler {
	return &CartHandler{repo: repo}
}

func validateCartLine(itemID, condition string) error {
	if itemID == "" {
		return fmt.Errorf("%w: item_id is required", domain.ErrValidation)
	}
	if condition != "new" && condition != "used" {
		return fmt.Errorf("%w: unknown condition %q", domain.ErrValidation, condition)
	}
	return nil
}

// HandleAdd executes the add to cart command
func (h *CartHandler) HandleAdd(cmd AddToCartCommand) (domain.CartData, error) {
	if err := validateCartLine(cmd.ItemID, cmd.Condition); err != nil {
		return nil, err
	}

	user, err := h.repo.FindByID(cmd.UserID)
	if err != nil {
		return nil, err
	}

	cart := user.CartData
	if cart == nil {
		cart = domain.CartData{}
	}
	if cart[cmd.ItemID] == nil {
		cart[cmd.ItemID] = map[string]int{}
	}
	cart[cmd.ItemID][cmd.Condition]++

	if err := h.repo.UpdateCart(cmd.UserID, cart); err != nil {
		return nil, fmt.Errorf("failed to update cart: %w", err)
	}
	return cart, nil
}

// HandleUpdate executes the update cart command
func (h *CartHandler) HandleUpdate(cmd UpdateCartCommand) (domain.CartData, error) {
	if err := validateCartLine(cmd.ItemID, cmd.Condition); err != nil {
		return nil, err
	}
	if cmd.Quantity < 0 {
		return nil, fmt.Errorf("%w: quantity cannot be negative", domain.ErrValidation)
	}

	user, err := h.repo.FindByID(cmd.UserID)
	if err != nil {
		return nil, err
	}

	cart := user.CartData
	if cart == nil {
		cart = domain.CartData{}
	}
	if cmd.Quantity == 0 {
		delete(cart[cmd.ItemID], cmd.Condition)
		if len(cart[cmd.ItemID]) == 0 {
			delete(cart, cmd.ItemID)
		}
	} else {
		if cart[cmd.ItemID] == nil {
			cart[cmd.ItemID] = map[string]int{}
		}
		cart[cmd.ItemID][cmd.Condition] = cmd.Quantity
	}

	if err := h.repo.UpdateCart(cmd.UserID, cart); err != nil {
		return nil, fmt.Errorf("failed to update cart: %w", err)
	}
	return cart, nil
}

// HandleClear empties the user's cart.
func (h *CartHandler) HandleClear(userID uint) error {
	if userID == 0 {
		return fmt.Errorf("%w: user_id is required", domain.ErrValidation)
	}
	return h.repo.UpdateCart(userID, domain.CartData{})
}
