package services

import (
	"errors"
	"fmt"
	"time"

	"restaurant_api/internal/models"
	"restaurant_api/internal/policy"
	"restaurant_api/internal/repository"

	"gorm.io/gorm"
)

// OrderChanges carries the fields an elevated caller may set on an order.
// Nil fields are left untouched.
type OrderChanges struct {
	DeliveryCrewID *uint
	Status         *bool
}

type OrderService interface {
	PlaceOrder(user *models.User) (*models.Order, error)
	ListOrders(actor *models.User) ([]models.Order, error)
	GetOrder(actor *models.User, id uint) (*models.Order, error)
	UpdateOrder(actor *models.User, id uint, changes OrderChanges) (*models.Order, error)
	DeleteOrder(actor *models.User, id uint) error
}

type orderService struct {
	orderRepo repository.OrderRepository
	userRepo  repository.UserRepository
	roleRepo  repository.RoleRepository
}

func NewOrderService(orderRepo repository.OrderRepository, userRepo repository.UserRepository, roleRepo repository.RoleRepository) OrderService {
	return &orderService{orderRepo: orderRepo, userRepo: userRepo, roleRepo: roleRepo}
}

// PlaceOrder turns the caller's cart into an order. The repository runs the
// whole transition in one transaction, so a failed build or write leaves the
// cart intact and no order behind.
func (s *orderService) PlaceOrder(user *models.User) (*models.Order, error) {
	return s.orderRepo.PlaceFromCart(user.ID, func(entries []models.CartEntry) (*models.Order, []models.OrderItem, error) {
		return buildOrder(user.ID, entries)
	})
}

// buildOrder freezes cart entries into an order and its line items. The
// total is the sum of entry prices at placement, rounded to currency
// precision, and is never recomputed afterwards.
func buildOrder(userID uint, entries []models.CartEntry) (*models.Order, []models.OrderItem, error) {
	if len(entries) == 0 {
		return nil, nil, ErrEmptyCart
	}

	total := 0.0
	items := make([]models.OrderItem, 0, len(entries))
	for _, entry := range entries {
		total += entry.Price
		items = append(items, models.OrderItem{
			MenuItemID: entry.MenuItemID,
			Quantity:   entry.Quantity,
		})
	}

	now := time.Now()
	year, month, day := now.Date()
	order := &models.Order{
		UserID: userID,
		Status: false,
		Total:  roundCurrency(total),
		Date:   time.Date(year, month, day, 0, 0, 0, 0, now.Location()),
	}
	return order, items, nil
}

func (s *orderService) ListOrders(actor *models.User) ([]models.Order, error) {
	switch policy.OrderListScope(actor) {
	case policy.ScopeAll:
		return s.orderRepo.GetAll()
	case policy.ScopeAssigned:
		return s.orderRepo.GetByDeliveryCrew(actor.ID)
	default:
		return s.orderRepo.GetByUserID(actor.ID)
	}
}

func (s *orderService) GetOrder(actor *models.User, id uint) (*models.Order, error) {
	order, err := s.orderRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if !policy.CanReadOrder(actor, order) {
		return nil, ErrForbidden
	}
	return order, nil
}

func (s *orderService) UpdateOrder(actor *models.User, id uint, changes OrderChanges) (*models.Order, error) {
	if !policy.Allow(actor, policy.ResourceOrder, policy.ActionUpdate) {
		return nil, ErrForbidden
	}
	order, err := s.orderRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if changes.DeliveryCrewID != nil {
		crewID := *changes.DeliveryCrewID
		if _, err := s.userRepo.GetByID(crewID); err != nil {
			// A bad id in the request body is a validation problem, the
			// same as naming a user outside the delivery roster.
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, fmt.Errorf("%w: delivery crew user does not exist", ErrValidation)
			}
			return nil, err
		}
		isCrew, err := s.roleRepo.HasRole(crewID, models.RoleDeliveryCrew)
		if err != nil {
			return nil, err
		}
		if !isCrew {
			return nil, fmt.Errorf("%w: user is not a delivery crew member", ErrValidation)
		}
		order.DeliveryCrewID = changes.DeliveryCrewID
	}
	if changes.Status != nil {
		order.Status = *changes.Status
	}

	if err := s.orderRepo.Update(order); err != nil {
		return nil, err
	}
	return order, nil
}

func (s *orderService) DeleteOrder(actor *models.User, id uint) error {
	if !policy.Allow(actor, policy.ResourceOrder, policy.ActionDelete) {
		return ErrForbidden
	}
	err := s.orderRepo.Delete(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
