package models

import "time"

// Role is the closed set of staff roles. A user with no assignments is a
// plain customer.
type Role string

const (
	RoleManager      Role = "manager"
	RoleDeliveryCrew Role = "delivery_crew"
)

func (r Role) Valid() bool {
	return r == RoleManager || r == RoleDeliveryCrew
}

// RoleAssignment is one (user, role) membership row. The unique index makes
// repeated assignment a no-op at the store level.
type RoleAssignment struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"user_id" gorm:"not null;uniqueIndex:idx_user_role"`
	Role      Role      `json:"role" gorm:"not null;uniqueIndex:idx_user_role"`
	CreatedAt time.Time `json:"created_at"`
}
