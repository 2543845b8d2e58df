package repository

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/gamebay/retail-ops/internal/warehouse/domain"
)

type GormUnitRepository struct {
	db *gorm.DB
}

func NewGormUnitRepository(db *gorm.DB) *GormUnitRepository {
	return &GormUnitRepository{db: db}
}

func (r *GormUnitRepository) AutoMigrate() error {
	return r.db.AutoMigrate(&domain.WarehouseUnit{})
}

func (r *GormUnitRepository) Create(unit *domain.WarehouseUnit) error {
	return r.db.Create(unit).Error
}

func (r *GormUnitRepository) FindByID(id uint) (*domain.WarehouseUnit, error) {
	var unit domain.WarehouseUnit
	err := r.db.First(&unit, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: unit %d", domain.ErrNotFound, id)
		}
		return nil, err
	}
	return &unit, nil
}

func (r *GormUnitRepository) FindAll(limit, offset int) ([]domain.WarehouseUnit, error) {
	var units []domain.WarehouseUnit
	err := r.db.Limit(limit).Offset(offset).Order("id").Find(&units).Error
	return units, err
}

func (r *GormUnitRepository) FindByProduct(productID uint) ([]domain.WarehouseUnit, error) {
	var units []domain.WarehouseUnit
	err := r.db.Where("product_id = ?", productID).Order("id").Find(&units).Error
	return units, err
}

// FindByBucket returns the live unit records of one bucket in primary-key
// order. The reconciler deletes surplus records from the front of this slice;
// selection pays no attention to identity completeness.
func (r *GormUnitRepository) FindByBucket(key domain.BucketKey) ([]domain.WarehouseUnit, error) {
	var units []domain.WarehouseUnit
	err := r.db.
		Where("product_id = ? AND warehouse_id = ? AND condition = ? AND location = ?",
			key.ProductID, key.WarehouseID, key.Condition, key.Location).
		Order("id").
		Find(&units).Error
	return units, err
}

func (r *GormUnitRepository) CountByBucket(key domain.BucketKey) (int64, error) {
	var count int64
	err := r.db.Model(&domain.WarehouseUnit{}).
		Where("product_id = ? AND warehouse_id = ? AND condition = ? AND location = ?",
			key.ProductID, key.WarehouseID, key.Condition, key.Location).
		Count(&count).Error
	return count, err
}

func (r *GormUnitRepository) Delete(id uint) error {
	return r.db.Delete(&domain.WarehouseUnit{}, id).Error
}

func (r *GormUnitRepository) DeleteByProduct(productID uint) error {
	return r.db.Where("product_id = ?", productID).Delete(&domain.WarehouseUnit{}).Error
}

func (r *GormUnitRepository) UpdateIdentity(id uint, eanCode, serialNumber string) error {
	res := r.db.Model(&domain.WarehouseUnit{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"ean_code":      eanCode,
			"serial_number": serialNumber,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("%w: unit %d", domain.ErrNotFound, id)
	}
	return nil
}

// UpdateEANByProduct bulk-stamps an EAN code onto every unit record of a
// product. Counts are unaffected.
func (r *GormUnitRepository) UpdateEANByProduct(productID uint, eanCode string) error {
	return r.db.Model(&domain.WarehouseUnit{}).
		Where("product_id = ?", productID).
		Update("ean_code", eanCode).Error
}
