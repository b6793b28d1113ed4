package repository

import (
	"restaurant_api/internal/models"

	"gorm.io/gorm"
)

type CartRepository interface {
	GetByUser(userID uint) ([]models.CartEntry, error)
	Add(entry *models.CartEntry) error
	ClearUser(userID uint) error
}

type cartRepository struct {
	db *gorm.DB
}

func NewCartRepository(db *gorm.DB) CartRepository {
	return &cartRepository{db: db}
}

func (r *cartRepository) GetByUser(userID uint) ([]models.CartEntry, error) {
	var entries []models.CartEntry
	err := r.db.Where("user_id = ?", userID).Order("id asc").Find(&entries).Error
	return entries, err
}

// Add inserts the entry. The unique (user, menu item) index makes the
// duplicate check atomic under concurrent adds; a collision surfaces as
// gorm.ErrDuplicatedKey for the service to translate.
func (r *cartRepository) Add(entry *models.CartEntry) error {
	return r.db.Create(entry).Error
}

func (r *cartRepository) ClearUser(userID uint) error {
	return r.db.Where("user_id = ?", userID).Delete(&models.CartEntry{}).Error
}
