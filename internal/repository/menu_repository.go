package repository

import (
	"restaurant_api/internal/models"

	"gorm.io/gorm"
)

// ItemFilter narrows and sorts menu item listings. Ordering accepts "price"
// and "-price"; Search matches title substrings case-insensitively.
type ItemFilter struct {
	Search   string
	Ordering string
}

type MenuRepository interface {
	ListItems(filter ItemFilter) ([]models.MenuItem, error)
	GetItem(id uint) (*models.MenuItem, error)
	CreateItem(item *models.MenuItem) error
	SaveItem(item *models.MenuItem) error
	DeleteItem(id uint) error
	ListCategories(search string) ([]models.Category, error)
	GetCategory(id uint) (*models.Category, error)
	CreateCategory(category *models.Category) error
}

type menuRepository struct {
	db *gorm.DB
}

func NewMenuRepository(db *gorm.DB) MenuRepository {
	return &menuRepository{db: db}
}

func (r *menuRepository) ListItems(filter ItemFilter) ([]models.MenuItem, error) {
	q := r.db.Preload("Category")
	if filter.Search != "" {
		q = q.Where("title ILIKE ?", "%"+filter.Search+"%")
	}
	switch filter.Ordering {
	case "price":
		q = q.Order("price asc")
	case "-price":
		q = q.Order("price desc")
	default:
		q = q.Order("id asc")
	}
	var items []models.MenuItem
	err := q.Find(&items).Error
	return items, err
}

func (r *menuRepository) GetItem(id uint) (*models.MenuItem, error) {
	var item models.MenuItem
	err := r.db.Preload("Category").First(&item, id).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *menuRepository) CreateItem(item *models.MenuItem) error {
	return r.db.Create(item).Error
}

func (r *menuRepository) SaveItem(item *models.MenuItem) error {
	return r.db.Save(item).Error
}

func (r *menuRepository) DeleteItem(id uint) error {
	res := r.db.Delete(&models.MenuItem{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *menuRepository) ListCategories(search string) ([]models.Category, error) {
	q := r.db.Order("id asc")
	if search != "" {
		q = q.Where("title ILIKE ?", "%"+search+"%")
	}
	var categories []models.Category
	err := q.Find(&categories).Error
	return categories, err
}

func (r *menuRepository) GetCategory(id uint) (*models.Category, error) {
	var category models.Category
	err := r.db.First(&category, id).Error
	if err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *menuRepository) CreateCategory(category *models.Category) error {
	return r.db.Create(category).Error
}
