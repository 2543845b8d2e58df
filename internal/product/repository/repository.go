package repository

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/gamebay/retail-ops/internal/product/domain"
)

type GormProductRepository struct {
	db *gorm.DB
}

func NewGormProductRepository(db *gorm.DB) *GormProductRepository {
	return &GormProductRepository{db: db}
}

func (r *GormProductRepository) AutoMigrate() error {
	return r.db.AutoMigrate(&domain.Product{})
}

func (r *GormProductRepository) Create(product *domain.Product) error {
	return r.db.Create(product).Error
}

func (r *GormProductRepository) FindByID(id uint) (*domain.Product, error) {
	var product domain.Product
	err := r.db.First(&product, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: product %d", domain.ErrNotFound, id)
		}
		return nil, err
	}
	return &product, nil
}

func (r *GormProductRepository) FindByEAN(eanCode string) (*domain.Product, error) {
	var product domain.Product
	err := r.db.Where("ean_code = ?", eanCode).First(&product).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: no product with EAN %q", domain.ErrNotFound, eanCode)
		}
		return nil, err
	}
	return &product, nil
}

func (r *GormProductRepository) FindAll(limit, offset int) ([]domain.Product, error) {
	var products []domain.Product
	err := r.db.Limit(limit).Offset(offset).Find(&products).Error
	return products, err
}

func (r *GormProductRepository) FindByCategory(category string, limit, offset int) ([]domain.Product, error) {
	var products []domain.Product
	err := r.db.Where("category = ?", category).Limit(limit).Offset(offset).Find(&products).Error
	return products, err
}

func (r *GormProductRepository) SearchByName(name string, limit, offset int) ([]domain.Product, error) {
	var products []domain.Product
	err := r.db.Where("name ILIKE ?", "%"+name+"%").Limit(limit).Offset(offset).Find(&products).Error
	return products, err
}

func (r *GormProductRepository) Update(product *domain.Product) error {
	return r.db.Save(product).Error
}

func (r *GormProductRepository) UpdateEAN(id uint, eanCode string) error {
	res := r.db.Model(&domain.Product{}).Where("id = ?", id).Update("ean_code", eanCode)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("%w: product %d", domain.ErrNotFound, id)
	}
	return nil
}

func (r *GormProductRepository) Delete(id uint) error {
	return r.db.Delete(&domain.Product{}, id).Error
}

func (r *GormProductRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&domain.Product{}).Count(&count).Error
	return count, err
}
