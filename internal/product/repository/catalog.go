package repository

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/gamebay/retail-ops/internal/product/domain"
	warehousedomain "github.com/gamebay/retail-ops/internal/warehouse/domain"
)

// CatalogAdapter exposes the product table to the warehouse subsystem, which
// only needs existence checks, EAN writes and category lookups. It satisfies
// the warehouse side's ProductCatalog interface, so missing products surface
// as the warehouse domain's sentinel, not the catalog's.
type CatalogAdapter struct {
	db *gorm.DB
}

var _ warehousedomain.ProductCatalog = (*CatalogAdapter)(nil)

func NewCatalogAdapter(db *gorm.DB) *CatalogAdapter {
	return &CatalogAdapter{db: db}
}

func (a *CatalogAdapter) Exists(productID uint) (bool, error) {
	var count int64
	err := a.db.Model(&domain.Product{}).Where("id = ?", productID).Count(&count).Error
	return count > 0, err
}

func (a *CatalogAdapter) UpdateEAN(productID uint, eanCode string) error {
	res := a.db.Model(&domain.Product{}).Where("id = ?", productID).Update("ean_code", eanCode)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("%w: product %d", warehousedomain.ErrNotFound, productID)
	}
	return nil
}

func (a *CatalogAdapter) CategoryOf(productID uint) (string, string, error) {
	var product domain.Product
	err := a.db.Select("category", "sub_category").First(&product, productID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", "", fmt.Errorf("%w: product %d", warehousedomain.ErrNotFound, productID)
		}
		return "", "", err
	}
	return product.Category, product.SubCategory, nil
}
