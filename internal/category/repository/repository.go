package repository

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/gamebay/retail-ops/internal/category/domain"
)

// GormLookupRepository implements domain.LookupRepository using GORM
type GormLookupRepository struct {
	db *gorm.DB
}

// NewGormLookupRepository creates a new GORM lookup repository
func NewGormLookupRepository(db *gorm.DB) *GormLookupRepository {
	return &GormLookupRepository{db: db}
}

func (r *GormLookupRepository) CreateCategory(c *domain.Category) error {
	if err := r.db.Create(c).Error; err != nil {
		return fmt.Errorf("failed to create category: %w", err)
	}
	return nil
}

func (r *GormLookupRepository) ListCategories() ([]domain.Category, error) {
	var categories []domain.Category
	if err := r.db.Order("name").Find(&categories).Error; err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	return categories, nil
}

func (r *GormLookupRepository) DeleteCategory(id uint) error {
	result := r.db.Delete(&domain.Category{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete category: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("%w: category %d", domain.ErrNotFound, id)
	}
	return nil
}

func (r *GormLookupRepository) CreateConsole(c *domain.Console) error {
	if err := r.db.Create(c).Error; err != nil {
		return fmt.Errorf("failed to create console: %w", err)
	}
	return nil
}

func (r *GormLookupRepository) ListConsoles() ([]domain.Console, error) {
	var consoles []domain.Console
	if err := r.db.Order("name").Find(&consoles).Error; err != nil {
		return nil, fmt.Errorf("failed to list consoles: %w", err)
	}
	return consoles, nil
}

func (r *GormLookupRepository) DeleteConsole(id uint) error {
	result := r.db.Delete(&domain.Console{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete console: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("%w: console %d", domain.ErrNotFound, id)
	}
	return nil
}
