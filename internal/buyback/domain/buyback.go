package domain

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

var (
	ErrNotFound   = errors.New("buyback not found")
	ErrValidation = errors.New("validation failed")
)

// Buyback statuses.
const (
	StatusReceived  = "received"
	StatusProcessed = "processed"
)

// BuybackProduct is one traded-in item. Stored as part of the JSON products
// column rather than its own table.
type BuybackProduct struct {
	Name     string  `json:"name"`
	Platform string  `json:"platform"`
	Price    float64 `json:"price"`
}

// Buyback is a trade-in intake record. Customer details are flattened into
// columns. The purchase contract PDF is produced by an external collaborator,
// so only its storage path is kept here.
type Buyback struct {
	ID          uint             `gorm:"primarykey" json:"id"`
	FirstName   string           `json:"first_name"`
	LastName    string           `json:"last_name"`
	Nationality string           `json:"nationality"`
	Residence   string           `json:"residence"`
	DateOfBirth string           `json:"date_of_birth"`
	PhoneNumber string           `json:"phone_number"`
	Products    []BuybackProduct `gorm:"serializer:json" json:"products"`
	TotalAmount float64          `json:"total_amount"`
	Status      string           `gorm:"default:'received'" json:"status"`
	PDFPath     string           `json:"pdf_path,omitempty"`
	CreatedAt   time.Time        `json:"created_at"`
	UpdatedAt   time.Time        `json:"updated_at"`
	DeletedAt   gorm.DeletedAt   `gorm:"index" json:"-"`
}

// BuybackRepository defines the interface for buyback data access
type BuybackRepository interface {
	Create(b *Buyback) error
	FindByID(id uint) (*Buyback, error)
	FindAll(limit, offset int) ([]Buyback, error)
	UpdateStatus(id uint, status string) error
	Delete(id uint) error
}
