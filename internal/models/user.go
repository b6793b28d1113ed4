package models

import (
	"time"

	"gorm.io/gorm"
)

type User struct {
	ID           uint             `json:"id" gorm:"primaryKey"`
	Username     string           `json:"username" gorm:"unique;not null"`
	Email        string           `json:"email" gorm:"unique;not null"`
	PasswordHash string           `json:"-" gorm:"not null"`
	IsSuperuser  bool             `json:"is_superuser" gorm:"default:false"`
	Roles        []RoleAssignment `json:"roles,omitempty" gorm:"foreignKey:UserID"`
	CreatedAt    time.Time        `json:"created_at"`
	UpdatedAt    time.Time        `json:"updated_at"`
	DeletedAt    gorm.DeletedAt   `json:"-" gorm:"index"`
}

// HasRole reports whether the user holds the given role. Roles must have
// been loaded alongside the user.
func (u *User) HasRole(role Role) bool {
	for _, a := range u.Roles {
		if a.Role == role {
			return true
		}
	}
	return false
}
