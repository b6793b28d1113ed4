package services

import (
	"errors"
	"fmt"
	"math"

	"restaurant_api/internal/models"
	"restaurant_api/internal/repository"

	"gorm.io/gorm"
)

type CartService interface {
	ViewCart(user *models.User) ([]models.CartEntry, error)
	AddToCart(user *models.User, menuItemID uint, quantity int) (*models.CartEntry, error)
	ClearCart(user *models.User) error
}

type cartService struct {
	cartRepo repository.CartRepository
	menuRepo repository.MenuRepository
}

func NewCartService(cartRepo repository.CartRepository, menuRepo repository.MenuRepository) CartService {
	return &cartService{cartRepo: cartRepo, menuRepo: menuRepo}
}

func (s *cartService) ViewCart(user *models.User) ([]models.CartEntry, error) {
	return s.cartRepo.GetByUser(user.ID)
}

// AddToCart snapshots the item's current price into the entry. A second add
// for the same (user, menu item) pair fails instead of merging quantities.
func (s *cartService) AddToCart(user *models.User, menuItemID uint, quantity int) (*models.CartEntry, error) {
	if quantity <= 0 {
		return nil, fmt.Errorf("%w: quantity must be a positive integer", ErrValidation)
	}
	item, err := s.menuRepo.GetItem(menuItemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	entry := &models.CartEntry{
		UserID:     user.ID,
		MenuItemID: item.ID,
		Quantity:   quantity,
		UnitPrice:  item.Price,
		Price:      roundCurrency(float64(quantity) * item.Price),
	}
	if err := s.cartRepo.Add(entry); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateEntry
		}
		return nil, err
	}
	return entry, nil
}

// ClearCart is idempotent; clearing an empty cart succeeds.
func (s *cartService) ClearCart(user *models.User) error {
	return s.cartRepo.ClearUser(user.ID)
}

func roundCurrency(v float64) float64 {
	return math.Round(v*100) / 100
}
