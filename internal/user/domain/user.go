package domain

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

var (
	// ErrNotFound is returned when a requested record does not exist.
	ErrNotFound = errors.New("not found")

	// ErrValidation is returned when input fails validation.
	ErrValidation = errors.New("validation failed")
)

// Role types
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// CartData maps item id to condition to quantity, so the same product can sit
// in the cart once as new and once as used.
type CartData map[string]map[string]int

// User represents the user entity (domain model)
type User struct {
	ID       uint     `json:"id" gorm:"primaryKey"`
	Name     string   `json:"name" gorm:"not null"`
	Email    string   `json:"email" gorm:"uniqueIndex;not null"`
	Password string   `json:"-" gorm:"not null"`
	Role     string   `json:"role" gorm:"not null;default:'user'"`
	CartData CartData `json:"cart_data" gorm:"serializer:json"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
}

// TableName specifies the table name
func (User) TableName() string {
	return "users"
}

// IsAdmin checks if user has admin role
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// UserRepository defines the contract for user data access
type UserRepository interface {
	Create(user *User) error
	FindByID(id uint) (*User, error)
	FindByEmail(email string) (*User, error)
	FindAll(limit, offset int) ([]User, error)
	Update(user *User) error
	UpdateCart(userID uint, cart CartData) error
	Delete(id uint) error
	Count() (int64, error)
}
