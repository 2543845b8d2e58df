package repository

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/gamebay/retail-ops/internal/user/domain"
)

type GormUserRepository struct {
	db *gorm.DB
}

func NewGormUserRepository(db *gorm.DB) *GormUserRepository {
	return &GormUserRepository{db: db}
}

func (r *GormUserRepository) AutoMigrate() error {
	return r.db.AutoMigrate(&domain.User{})
}

func (r *GormUserRepository) Create(user *domain.User) error {
	return r.db.Create(user).Error
}

func (r *GormUserRepository) FindByID(id uint) (*domain.User, error) {
	var user domain.User
	err := r.db.First(&user, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: user %d", domain.ErrNotFound, id)
		}
		return nil, err
	}
	return &user, nil
}

func (r *GormUserRepository) FindByEmail(email string) (*domain.User, error) {
	var user domain.User
	err := r.db.Where("email = ?", email).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: no user with email %q", domain.ErrNotFound, email)
		}
		return nil, err
	}
	return &user, nil
}

func (r *GormUserRepository) FindAll(limit, offset int) ([]domain.User, error) {
	var users []domain.User
	err := r.db.Limit(limit).Offset(offset).Find(&users).Error
	return users, err
}

func (r *GormUserRepository) Update(user *domain.User) error {
	return r.db.Save(user).Error
}

func (r *GormUserRepository) UpdateCart(userID uint, cart domain.CartData) error {
	res := r.db.Model(&domain.User{}).Where("id = ?", userID).Update("cart_data", cart)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("%w: user %d", domain.ErrNotFound, userID)
	}
	return nil
}

// ClearCart empties a user's cart. Order placement calls this through the
// order side's CartClearer interface.
func (r *GormUserRepository) ClearCart(userID uint) error {
	return r.UpdateCart(userID, domain.CartData{})
}

func (r *GormUserRepository) Delete(id uint) error {
	return r.db.Delete(&domain.User{}, id).Error
}

func (r *GormUserRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&domain.User{}).Count(&count).Error
	return count, err
}
