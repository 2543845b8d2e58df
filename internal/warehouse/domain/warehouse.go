package domain

import (
	"time"

	"gorm.io/gorm"
)

// Warehouse is the per-product aggregate counter record: the intended number
// of tracked units per (condition, location) bucket plus the list price per
// condition. The reconciler works to keep the live unit records in sync with
// these counters.
type Warehouse struct {
	ID        uint    `json:"id" gorm:"primaryKey"`
	ProductID uint    `json:"product_id" gorm:"not null;uniqueIndex"`
	StockNew  int     `json:"stock_new" gorm:"not null;default:0"`
	StockUsed int     `json:"stock_used" gorm:"not null;default:0"`
	StoreNew  int     `json:"store_new" gorm:"not null;default:0"`
	StoreUsed int     `json:"store_used" gorm:"not null;default:0"`
	PriceNew  float64 `json:"price_new" gorm:"not null;default:0"`
	PriceUsed float64 `json:"price_used" gorm:"not null;default:0"`

	// Documents holds URLs of attached paperwork (delivery notes, invoices).
	Documents []string `json:"documents" gorm:"serializer:json"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
}

// TableName specifies the table name
func (Warehouse) TableName() string {
	return "warehouses"
}

// Bucket returns the counter for one (condition, location) bucket.
func (w *Warehouse) Bucket(c Condition, l Location) int {
	switch {
	case l == LocationInStock && c == ConditionNew:
		return w.StockNew
	case l == LocationInStock && c == ConditionUsed:
		return w.StockUsed
	case l == LocationInStore && c == ConditionNew:
		return w.StoreNew
	default:
		return w.StoreUsed
	}
}

// SetBucket overwrites the counter for one (condition, location) bucket.
// Negative values are clamped at zero.
func (w *Warehouse) SetBucket(c Condition, l Location, n int) {
	if n < 0 {
		n = 0
	}
	switch {
	case l == LocationInStock && c == ConditionNew:
		w.StockNew = n
	case l == LocationInStock && c == ConditionUsed:
		w.StockUsed = n
	case l == LocationInStore && c == ConditionNew:
		w.StoreNew = n
	default:
		w.StoreUsed = n
	}
}

// PriceFor returns the list price for the given condition.
func (w *Warehouse) PriceFor(c Condition) float64 {
	if c == ConditionUsed {
		return w.PriceUsed
	}
	return w.PriceNew
}

// Key builds the bucket key for one of this record's four buckets.
func (w *Warehouse) Key(c Condition, l Location) BucketKey {
	return BucketKey{
		ProductID:   w.ProductID,
		WarehouseID: w.ID,
		Condition:   c,
		Location:    l,
	}
}

// WarehouseRepository defines the contract for aggregate counter data access.
type WarehouseRepository interface {
	Create(warehouse *Warehouse) error
	FindByID(id uint) (*Warehouse, error)
	FindByProductID(productID uint) (*Warehouse, error)
	FindAll(limit, offset int) ([]Warehouse, error)
	Save(warehouse *Warehouse) error
	Delete(id uint) error
	DeleteByProductID(productID uint) error

	// AdjustBucket atomically adds delta to one bucket counter, clamping the
	// result at zero. Returns ErrNotFound when the product has no counter
	// record. Unit records are untouched.
	AdjustBucket(productID uint, condition Condition, location Location, delta int) (*Warehouse, error)

	// RemoveUnitWithCounter deletes a unit record and decrements the matching
	// bucket counter by one (floored at zero) in a single transaction, so a
	// missing counter record rolls the deletion back.
	RemoveUnitWithCounter(unitID, productID uint) error
}

// ProductCatalog is the warehouse core's view of the product subsystem.
type ProductCatalog interface {
	Exists(productID uint) (bool, error)
	UpdateEAN(productID uint, eanCode string) error
	CategoryOf(productID uint) (category, subCategory string, err error)
}
