package repository

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/gamebay/retail-ops/internal/order/domain"
)

type GormOrderRepository struct {
	db *gorm.DB
}

func NewGormOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

func (r *GormOrderRepository) AutoMigrate() error {
	return r.db.AutoMigrate(&domain.Order{}, &domain.OrderItem{})
}

func (r *GormOrderRepository) Create(order *domain.Order) error {
	return r.db.Create(order).Error
}

func (r *GormOrderRepository) FindByID(id uint) (*domain.Order, error) {
	var order domain.Order
	err := r.db.Preload("Items").First(&order, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: order %d", domain.ErrNotFound, id)
		}
		return nil, err
	}
	return &order, nil
}

func (r *GormOrderRepository) FindAll(limit, offset int) ([]domain.Order, error) {
	var orders []domain.Order
	err := r.db.Preload("Items").Order("created_at DESC").Limit(limit).Offset(offset).Find(&orders).Error
	return orders, err
}

func (r *GormOrderRepository) FindByUser(userID uint, limit, offset int) ([]domain.Order, error) {
	var orders []domain.Order
	err := r.db.Preload("Items").Where("user_id = ?", userID).
		Order("created_at DESC").Limit(limit).Offset(offset).Find(&orders).Error
	return orders, err
}

func (r *GormOrderRepository) UpdateStatus(id uint, status string) error {
	res := r.db.Model(&domain.Order{}).Where("id = ?", id).Update("status", status)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("%w: order %d", domain.ErrNotFound, id)
	}
	return nil
}

func (r *GormOrderRepository) SetPayment(id uint, paid bool) error {
	res := r.db.Model(&domain.Order{}).Where("id = ?", id).Update("payment", paid)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("%w: order %d", domain.ErrNotFound, id)
	}
	return nil
}

func (r *GormOrderRepository) Delete(id uint) error {
	return r.db.Select("Items").Delete(&domain.Order{ID: id}).Error
}
