package models

import (
	"time"

	"gorm.io/gorm"
)

type Category struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Title     string    `json:"title" gorm:"unique;not null"`
	CreatedAt time.Time `json:"created_at"`
}

type MenuItem struct {
	ID         uint           `json:"id" gorm:"primaryKey"`
	Title      string         `json:"title" gorm:"not null"`
	Price      float64        `json:"price" gorm:"type:decimal(8,2);not null"`
	Featured   bool           `json:"featured" gorm:"default:false"`
	CategoryID uint           `json:"category_id" gorm:"not null"`
	Category   Category       `json:"category,omitempty"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
	DeletedAt  gorm.DeletedAt `json:"-" gorm:"index"`
}
