package domain

import (
	"errors"
	"time"
)

var (
	ErrNotFound   = errors.New("record not found")
	ErrValidation = errors.New("validation failed")
)

// Category is a storefront navigation entry with its subcategory labels.
type Category struct {
	ID            uint      `gorm:"primarykey" json:"id"`
	Name          string    `gorm:"uniqueIndex" json:"name"`
	SubCategories []string  `gorm:"serializer:json" json:"sub_categories"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// Console is a bookable gaming station referenced by reservations by name.
type Console struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	Name      string    `gorm:"uniqueIndex" json:"name"`
	Platform  string    `json:"platform"`
	Active    bool      `gorm:"default:true" json:"active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// LookupRepository defines the interface for category and console data access
type LookupRepository interface {
	CreateCategory(c *Category) error
	ListCategories() ([]Category, error)
	DeleteCategory(id uint) error
	CreateConsole(c *Console) error
	ListConsoles() ([]Console, error)
	DeleteConsole(id uint) error
}
