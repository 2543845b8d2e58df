package domain

import (
	"time"

	"gorm.io/gorm"
)

// WarehouseUnit is one physically trackable item. Units are created by the
// reconciler without identity; EAN and serial number are attached later, once
// the physical item has been labelled.
type WarehouseUnit struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	ProductID    uint      `json:"product_id" gorm:"not null;index:idx_units_bucket"`
	WarehouseID  uint      `json:"warehouse_id" gorm:"not null;index"`
	Condition    Condition `json:"condition" gorm:"type:varchar(8);not null;index:idx_units_bucket"`
	Location     Location  `json:"location" gorm:"type:varchar(16);not null;index:idx_units_bucket"`
	EANCode      string    `json:"ean_code" gorm:"default:''"`
	SerialNumber string    `json:"serial_number" gorm:"default:''"`
	Price        float64   `json:"price" gorm:"not null;default:0"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
}

// TableName specifies the table name
func (WarehouseUnit) TableName() string {
	return "warehouse_units"
}

// Key returns the bucket this unit belongs to.
func (u *WarehouseUnit) Key() BucketKey {
	return BucketKey{
		ProductID:   u.ProductID,
		WarehouseID: u.WarehouseID,
		Condition:   u.Condition,
		Location:    u.Location,
	}
}

// HasIdentity reports whether any identity field has been filled in.
func (u *WarehouseUnit) HasIdentity() bool {
	return u.EANCode != "" || u.SerialNumber != ""
}

// UnitRepository defines the contract for unit record data access.
type UnitRepository interface {
	Create(unit *WarehouseUnit) error
	FindByID(id uint) (*WarehouseUnit, error)
	FindAll(limit, offset int) ([]WarehouseUnit, error)
	FindByProduct(productID uint) ([]WarehouseUnit, error)
	FindByBucket(key BucketKey) ([]WarehouseUnit, error)
	CountByBucket(key BucketKey) (int64, error)
	Delete(id uint) error
	DeleteByProduct(productID uint) error
	UpdateIdentity(id uint, eanCode, serialNumber string) error
	UpdateEANByProduct(productID uint, eanCode string) error
}
