package services

import (
	"errors"
	"fmt"

	"restaurant_api/internal/models"
	"restaurant_api/internal/policy"
	"restaurant_api/internal/repository"

	"gorm.io/gorm"
)

type MenuItemInput struct {
	Title      string  `json:"title"`
	Price      float64 `json:"price"`
	CategoryID uint    `json:"category_id"`
	Featured   bool    `json:"featured"`
}

type MenuService interface {
	ListItems(filter repository.ItemFilter) ([]models.MenuItem, error)
	GetItem(id uint) (*models.MenuItem, error)
	CreateItem(actor *models.User, input MenuItemInput) (*models.MenuItem, error)
	ToggleFeatured(actor *models.User, id uint) (*models.MenuItem, error)
	DeleteItem(actor *models.User, id uint) error
	ListCategories(search string) ([]models.Category, error)
	CreateCategory(actor *models.User, title string) (*models.Category, error)
}

type menuService struct {
	menuRepo repository.MenuRepository
}

func NewMenuService(menuRepo repository.MenuRepository) MenuService {
	return &menuService{menuRepo: menuRepo}
}

func (s *menuService) ListItems(filter repository.ItemFilter) ([]models.MenuItem, error) {
	return s.menuRepo.ListItems(filter)
}

func (s *menuService) GetItem(id uint) (*models.MenuItem, error) {
	item, err := s.menuRepo.GetItem(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return item, nil
}

func (s *menuService) CreateItem(actor *models.User, input MenuItemInput) (*models.MenuItem, error) {
	if !policy.Allow(actor, policy.ResourceMenuItem, policy.ActionCreate) {
		return nil, ErrForbidden
	}
	if input.Title == "" {
		return nil, fmt.Errorf("%w: title is required", ErrValidation)
	}
	if input.Price <= 0 {
		return nil, fmt.Errorf("%w: price must be positive", ErrValidation)
	}
	if _, err := s.menuRepo.GetCategory(input.CategoryID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: category does not exist", ErrValidation)
		}
		return nil, err
	}

	item := &models.MenuItem{
		Title:      input.Title,
		Price:      input.Price,
		CategoryID: input.CategoryID,
		Featured:   input.Featured,
	}
	if err := s.menuRepo.CreateItem(item); err != nil {
		return nil, err
	}
	return item, nil
}

// ToggleFeatured flips the featured flag and nothing else. This is the only
// partial update the catalog permits; any other fields in the request are
// ignored.
func (s *menuService) ToggleFeatured(actor *models.User, id uint) (*models.MenuItem, error) {
	if !policy.Allow(actor, policy.ResourceMenuItem, policy.ActionUpdate) {
		return nil, ErrForbidden
	}
	item, err := s.menuRepo.GetItem(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	item.Featured = !item.Featured
	if err := s.menuRepo.SaveItem(item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *menuService) DeleteItem(actor *models.User, id uint) error {
	if !policy.Allow(actor, policy.ResourceMenuItem, policy.ActionDelete) {
		return ErrForbidden
	}
	err := s.menuRepo.DeleteItem(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}

func (s *menuService) ListCategories(search string) ([]models.Category, error) {
	return s.menuRepo.ListCategories(search)
}

func (s *menuService) CreateCategory(actor *models.User, title string) (*models.Category, error) {
	if !policy.Allow(actor, policy.ResourceCategory, policy.ActionCreate) {
		return nil, ErrForbidden
	}
	if title == "" {
		return nil, fmt.Errorf("%w: title is required", ErrValidation)
	}
	category := &models.Category{Title: title}
	if err := s.menuRepo.CreateCategory(category); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, fmt.Errorf("%w: category title already exists", ErrValidation)
		}
		return nil, err
	}
	return category, nil
}
