package repository

import (
	"restaurant_api/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type OrderRepository interface {
	// PlaceFromCart runs the cart-to-order transition in one transaction.
	// It locks and reads the user's cart entries, hands them to build for
	// the order and line items, persists both, and deletes the consumed
	// entries. An error from build rolls everything back.
	PlaceFromCart(userID uint, build func(entries []models.CartEntry) (*models.Order, []models.OrderItem, error)) (*models.Order, error)
	GetByID(id uint) (*models.Order, error)
	GetAll() ([]models.Order, error)
	GetByUserID(userID uint) ([]models.Order, error)
	GetByDeliveryCrew(crewID uint) ([]models.Order, error)
	Update(order *models.Order) error
	Delete(id uint) error
}

type orderRepository struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) OrderRepository {
	return &orderRepository{db: db}
}

func (r *orderRepository) PlaceFromCart(userID uint, build func(entries []models.CartEntry) (*models.Order, []models.OrderItem, error)) (*models.Order, error) {
	var placed *models.Order
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var entries []models.CartEntry
		// Row locks keep a concurrent add or second placement from
		// interleaving with this one.
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("user_id = ?", userID).
			Order("id asc").
			Find(&entries).Error
		if err != nil {
			return err
		}

		order, items, err := build(entries)
		if err != nil {
			return err
		}

		if err := tx.Create(order).Error; err != nil {
			return err
		}
		for i := range items {
			items[i].OrderID = order.ID
		}
		if len(items) > 0 {
			if err := tx.Create(&items).Error; err != nil {
				return err
			}
		}
		// Delete only the rows frozen into the order. The row locks do not
		// cover entries inserted after the read, and a user-scoped delete
		// would consume such an entry without it ever becoming a line item.
		entryIDs := make([]uint, 0, len(entries))
		for _, entry := range entries {
			entryIDs = append(entryIDs, entry.ID)
		}
		if len(entryIDs) > 0 {
			if err := tx.Where("id IN ?", entryIDs).Delete(&models.CartEntry{}).Error; err != nil {
				return err
			}
		}

		order.Items = items
		placed = order
		return nil
	})
	if err != nil {
		return nil, err
	}
	return placed, nil
}

func (r *orderRepository) GetByID(id uint) (*models.Order, error) {
	var order models.Order
	err := r.db.Preload("Items").First(&order, id).Error
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *orderRepository) GetAll() ([]models.Order, error) {
	var orders []models.Order
	err := r.db.Preload("Items").Order("id asc").Find(&orders).Error
	return orders, err
}

func (r *orderRepository) GetByUserID(userID uint) ([]models.Order, error) {
	var orders []models.Order
	err := r.db.Preload("Items").Where("user_id = ?", userID).Order("id asc").Find(&orders).Error
	return orders, err
}

func (r *orderRepository) GetByDeliveryCrew(crewID uint) ([]models.Order, error) {
	var orders []models.Order
	err := r.db.Preload("Items").Where("delivery_crew_id = ?", crewID).Order("id asc").Find(&orders).Error
	return orders, err
}

func (r *orderRepository) Update(order *models.Order) error {
	return r.db.Save(order).Error
}

func (r *orderRepository) Delete(id uint) error {
	res := r.db.Delete(&models.Order{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
