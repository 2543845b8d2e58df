package repository

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/gamebay/retail-ops/internal/warehouse/domain"
)

// bucketColumn maps a (condition, location) pair to its counter column.
func bucketColumn(c domain.Condition, l domain.Location) string {
	switch {
	case l == domain.LocationInStock && c == domain.ConditionNew:
		return "stock_new"
	case l == domain.LocationInStock && c == domain.ConditionUsed:
		return "stock_used"
	case l == domain.LocationInStore && c == domain.ConditionNew:
		return "store_new"
	default:
		return "store_used"
	}
}

type GormWarehouseRepository struct {
	db *gorm.DB
}

func NewGormWarehouseRepository(db *gorm.DB) *GormWarehouseRepository {
	return &GormWarehouseRepository{db: db}
}

func (r *GormWarehouseRepository) AutoMigrate() error {
	return r.db.AutoMigrate(&domain.Warehouse{})
}

func (r *GormWarehouseRepository) Create(warehouse *domain.Warehouse) error {
	return r.db.Create(warehouse).Error
}

func (r *GormWarehouseRepository) FindByID(id uint) (*domain.Warehouse, error) {
	var warehouse domain.Warehouse
	err := r.db.First(&warehouse, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: warehouse entry %d", domain.ErrNotFound, id)
		}
		return nil, err
	}
	return &warehouse, nil
}

func (r *GormWarehouseRepository) FindByProductID(productID uint) (*domain.Warehouse, error) {
	var warehouse domain.Warehouse
	err := r.db.Where("product_id = ?", productID).First(&warehouse).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: no warehouse entry for product %d", domain.ErrNotFound, productID)
		}
		return nil, err
	}
	return &warehouse, nil
}

func (r *GormWarehouseRepository) FindAll(limit, offset int) ([]domain.Warehouse, error) {
	var warehouses []domain.Warehouse
	err := r.db.Limit(limit).Offset(offset).Find(&warehouses).Error
	return warehouses, err
}

func (r *GormWarehouseRepository) Save(warehouse *domain.Warehouse) error {
	return r.db.Save(warehouse).Error
}

func (r *GormWarehouseRepository) Delete(id uint) error {
	return r.db.Delete(&domain.Warehouse{}, id).Error
}

func (r *GormWarehouseRepository) DeleteByProductID(productID uint) error {
	return r.db.Where("product_id = ?", productID).Delete(&domain.Warehouse{}).Error
}

// AdjustBucket adds delta to one bucket counter in a single statement,
// clamping at zero so a sale can never drive a counter negative.
func (r *GormWarehouseRepository) AdjustBucket(productID uint, condition domain.Condition, location domain.Location, delta int) (*domain.Warehouse, error) {
	col := bucketColumn(condition, location)

	res := r.db.Model(&domain.Warehouse{}).
		Where("product_id = ?", productID).
		Update(col, gorm.Expr("GREATEST("+col+" + ?, 0)", delta))
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, fmt.Errorf("%w: no warehouse entry for product %d", domain.ErrNotFound, productID)
	}

	return r.FindByProductID(productID)
}

// RemoveUnitWithCounter deletes one unit record and decrements its bucket
// counter in the same transaction. A missing counter record aborts the whole
// operation, so the unit deletion is rolled back instead of leaving the
// counters stale.
func (r *GormWarehouseRepository) RemoveUnitWithCounter(unitID, productID uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var unit domain.WarehouseUnit
		err := tx.Where("id = ? AND product_id = ?", unitID, productID).First(&unit).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: unit %d for product %d", domain.ErrNotFound, unitID, productID)
			}
			return err
		}

		var warehouse domain.Warehouse
		err = tx.Where("product_id = ?", productID).First(&warehouse).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: no warehouse entry for product %d", domain.ErrNotFound, productID)
			}
			return err
		}

		if err := tx.Delete(&domain.WarehouseUnit{}, unit.ID).Error; err != nil {
			return err
		}

		col := bucketColumn(unit.Condition, unit.Location)
		return tx.Model(&domain.Warehouse{}).
			Where("id = ?", warehouse.ID).
			Update(col, gorm.Expr("GREATEST("+col+" - 1, 0)")).Error
	})
}
