package models

import "time"

// CartEntry is one staged selection. At most one entry may exist per
// (user, menu item) pair; the unique index enforces that under concurrent
// adds. Price is the quantity times the unit price snapshotted at add time.
type CartEntry struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	UserID     uint      `json:"user_id" gorm:"not null;uniqueIndex:idx_cart_user_item"`
	MenuItemID uint      `json:"menuitem_id" gorm:"not null;uniqueIndex:idx_cart_user_item"`
	Quantity   int       `json:"quantity" gorm:"not null"`
	UnitPrice  float64   `json:"unit_price" gorm:"type:decimal(8,2);not null"`
	Price      float64   `json:"price" gorm:"type:decimal(8,2);not null"`
	CreatedAt  time.Time `json:"created_at"`
}
