package domain

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

var (
	ErrNotFound   = errors.New("reservation not found")
	ErrValidation = errors.New("validation failed")
)

// Reservation is a gaming-venue booking. Confirmed and declined are mutually
// exclusive flags toggled by the admin review flow.
type Reservation struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	DateTime  string         `json:"date_time"`
	Duration  string         `json:"duration"`
	Persons   int            `json:"persons"`
	Console   string         `json:"console"`
	Notes     string         `json:"notes,omitempty"`
	Email     string         `json:"email"`
	Confirmed bool           `gorm:"default:false" json:"confirmed"`
	Declined  bool           `gorm:"default:false" json:"declined"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// ReservationRepository defines the interface for reservation data access
type ReservationRepository interface {
	Create(res *Reservation) error
	FindByID(id uint) (*Reservation, error)
	FindAll(limit, offset int) ([]Reservation, error)
	SetReview(id uint, confirmed, declined bool) error
	Delete(id uint) error
}
