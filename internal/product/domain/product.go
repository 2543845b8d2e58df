package domain

import (
	"time"

	"gorm.io/gorm"
)

// Product represents one catalog entry. Images are hosted externally and
// stored as opaque URLs.
type Product struct {
	ID           uint     `json:"id" gorm:"primaryKey"`
	Name         string   `json:"name" gorm:"not null;index"`
	Description  string   `json:"description"`
	Description2 string   `json:"description2"`
	Category     string   `json:"category" gorm:"index"`
	SubCategory  string   `json:"sub_category"`
	Price        float64  `json:"price" gorm:"not null;default:0"`
	Bestseller   bool     `json:"bestseller" gorm:"default:false"`
	EANCode      string   `json:"ean_code" gorm:"index;default:''"`
	SerialNumber string   `json:"serial_number" gorm:"default:''"`
	YoutubeLink  string   `json:"youtube_link"`
	Class        string   `json:"class"`
	Images       []string `json:"images" gorm:"serializer:json"`
	IsActive     bool     `json:"is_active" gorm:"default:true"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
}

// TableName specifies the table name
func (Product) TableName() string {
	return "products"
}

// ProductRepository defines the contract for product data access
type ProductRepository interface {
	Create(product *Product) error
	FindByID(id uint) (*Product, error)
	FindByEAN(eanCode string) (*Product, error)
	FindAll(limit, offset int) ([]Product, error)
	FindByCategory(category string, limit, offset int) ([]Product, error)
	SearchByName(name string, limit, offset int) ([]Product, error)
	Update(product *Product) error
	UpdateEAN(id uint, eanCode string) error
	Delete(id uint) error
	Count() (int64, error)
}
