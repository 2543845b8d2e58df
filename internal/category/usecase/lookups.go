// Package usecase holds the lookup-table operations. The category and
// console tables are simple enough that commands and queries share one
// handler.
package usecase

import (
	"fmt"

	"github.com/gamebay/retail-ops/internal/category/domain"
)

// LookupHandler handles category and console lookup operations
type LookupHandler struct {
	repo domain.LookupRepository
}

// NewLookupHandler creates a new lookup handler
func NewLookupHandler(repo domain.LookupRepository) *LookupHandler {
	return &LookupHandler{repo: repo}
}

// CreateCategory adds a navigation category with its subcategory labels.
func (h *LookupHandler) CreateCategory(name string, subCategories []string) (*domain.Category, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: category name is required", domain.ErrValidation)
	}
	c := &domain.Category{Name: name, SubCategories: subCategories}
	if err := h.repo.CreateCategory(c); err != nil {
		return nil, err
	}
	return c, nil
}

// ListCategories returns all navigation categories.
func (h *LookupHandler) ListCategories() ([]domain.Category, error) {
	return h.repo.ListCategories()
}

// DeleteCategory removes a category by id.
func (h *LookupHandler) DeleteCategory(id uint) error {
	if id == 0 {
		return fmt.Errorf("%w: category id is required", domain.ErrValidation)
	}
	return h.repo.DeleteCategory(id)
}

// CreateConsole adds a bookable gaming station.
func (h *LookupHandler) CreateConsole(name, platform string) (*domain.Console, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: console name is required", domain.ErrValidation)
	}
	c := &domain.Console{Name: name, Platform: platform, Active: true}
	if err := h.repo.CreateConsole(c); err != nil {
		return nil, err
	}
	return c, nil
}

// ListConsoles returns all gaming stations.
func (h *LookupHandler) ListConsoles() ([]domain.Console, error) {
	return h.repo.ListConsoles()
}

// DeleteConsole removes a console by id.
func (h *LookupHandler) DeleteConsole(id uint) error {
	if id == 0 {
		return fmt.Errorf("%w: console id is required", domain.ErrValidation)
	}
	return h.repo.DeleteConsole(id)
}
