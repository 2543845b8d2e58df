package repository

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/gamebay/retail-ops/internal/buyback/domain"
)

// GormBuybackRepository implements domain.BuybackRepository using GORM
type GormBuybackRepository struct {
	db *gorm.DB
}

// NewGormBuybackRepository creates a new GORM buyback repository
func NewGormBuybackRepository(db *gorm.DB) *GormBuybackRepository {
	return &GormBuybackRepository{db: db}
}

func (r *GormBuybackRepository) Create(b *domain.Buyback) error {
	if err := r.db.Create(b).Error; err != nil {
		return fmt.Errorf("failed to create buyback: %w", err)
	}
	return nil
}

func (r *GormBuybackRepository) FindByID(id uint) (*domain.Buyback, error) {
	var b domain.Buyback
	if err := r.db.First(&b, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: id %d", domain.ErrNotFound, id)
		}
		return nil, fmt.Errorf("failed to find buyback: %w", err)
	}
	return &b, nil
}

func (r *GormBuybackRepository) FindAll(limit, offset int) ([]domain.Buyback, error) {
	var buybacks []domain.Buyback
	if err := r.db.Limit(limit).Offset(offset).Order("created_at DESC").Find(&buybacks).Error; err != nil {
		return nil, fmt.Errorf("failed to list buybacks: %w", err)
	}
	return buybacks, nil
}

func (r *GormBuybackRepository) UpdateStatus(id uint, status string) error {
	result := r.db.Model(&domain.Buyback{}).Where("id = ?", id).Update("status", status)
	if result.Error != nil {
		return fmt.Errorf("failed to update buyback status: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("%w: id %d", domain.ErrNotFound, id)
	}
	return nil
}

func (r *GormBuybackRepository) Delete(id uint) error {
	result := r.db.Delete(&domain.Buyback{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete buyback: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("%w: id %d", domain.ErrNotFound, id)
	}
	return nil
}
