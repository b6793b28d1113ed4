package models

import (
	"time"

	"gorm.io/gorm"
)

// Order status is a two-state flag: false while out for preparation and
// delivery, true once delivered. Total is frozen at placement time and never
// recomputed.
type Order struct {
	ID             uint           `json:"id" gorm:"primaryKey"`
	UserID         uint           `json:"user_id" gorm:"not null;index"`
	DeliveryCrewID *uint          `json:"delivery_crew_id" gorm:"index"`
	Status         bool           `json:"status" gorm:"not null;default:false"`
	Total          float64        `json:"total" gorm:"type:decimal(10,2);not null"`
	Date           time.Time      `json:"date" gorm:"type:date;not null"`
	Items          []OrderItem    `json:"items,omitempty" gorm:"foreignKey:OrderID"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
	DeletedAt      gorm.DeletedAt `json:"-" gorm:"index"`
}

// OrderItem is a line item frozen from a cart entry at placement. Immutable
// after creation.
type OrderItem struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	OrderID    uint      `json:"order_id" gorm:"not null;index"`
	MenuItemID uint      `json:"menuitem_id" gorm:"not null"`
	Quantity   int       `json:"quantity" gorm:"not null"`
	CreatedAt  time.Time `json:"created_at"`
}
