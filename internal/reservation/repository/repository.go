package repository

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/gamebay/retail-ops/internal/reservation/domain"
)

// GormReservationRepository implements domain.ReservationRepository using GORM
type GormReservationRepository struct {
	db *gorm.DB
}

// NewGormReservationRepository creates a new GORM reservation repository
func NewGormReservationRepository(db *gorm.DB) *GormReservationRepository {
	return &GormReservationRepository{db: db}
}

func (r *GormReservationRepository) Create(res *domain.Reservation) error {
	if err := r.db.Create(res).Error; err != nil {
		return fmt.Errorf("failed to create reservation: %w", err)
	}
	return nil
}

func (r *GormReservationRepository) FindByID(id uint) (*domain.Reservation, error) {
	var res domain.Reservation
	if err := r.db.First(&res, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: id %d", domain.ErrNotFound, id)
		}
		return nil, fmt.Errorf("failed to find reservation: %w", err)
	}
	return &res, nil
}

func (r *GormReservationRepository) FindAll(limit, offset int) ([]domain.Reservation, error) {
	var reservations []domain.Reservation
	if err := r.db.Limit(limit).Offset(offset).Order("created_at DESC").Find(&reservations).Error; err != nil {
		return nil, fmt.Errorf("failed to list reservations: %w", err)
	}
	return reservations, nil
}

// SetReview writes both review flags in one update so confirm and decline
// stay mutually exclusive.
func (r *GormReservationRepository) SetReview(id uint, confirmed, declined bool) error {
	result := r.db.Model(&domain.Reservation{}).Where("id = ?", id).
		Updates(map[string]interface{}{"confirmed": confirmed, "declined": declined})
	if result.Error != nil {
		return fmt.Errorf("failed to update reservation: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("%w: id %d", domain.ErrNotFound, id)
	}
	return nil
}

func (r *GormReservationRepository) Delete(id uint) error {
	result := r.db.Delete(&domain.Reservation{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete reservation: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("%w: id %d", domain.ErrNotFound, id)
	}
	return nil
}
