package repository

import (
	"errors"
	"restaurant_api/internal/models"

	"gorm.io/gorm"
)

type RoleRepository interface {
	Assign(userID uint, role models.Role) error
	Remove(userID uint, role models.Role) error
	HasRole(userID uint, role models.Role) (bool, error)
	ListMembers(role models.Role) ([]models.User, error)
	GetMember(role models.Role, userID uint) (*models.User, error)
}

type roleRepository struct {
	db *gorm.DB
}

func NewRoleRepository(db *gorm.DB) RoleRepository {
	return &roleRepository{db: db}
}

// Assign adds the membership row. Assigning a role the user already holds is
// a no-op; the unique index absorbs the duplicate.
func (r *roleRepository) Assign(userID uint, role models.Role) error {
	err := r.db.Create(&models.RoleAssignment{UserID: userID, Role: role}).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return nil
	}
	return err
}

func (r *roleRepository) Remove(userID uint, role models.Role) error {
	res := r.db.Where("user_id = ? AND role = ?", userID, role).Delete(&models.RoleAssignment{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *roleRepository) HasRole(userID uint, role models.Role) (bool, error) {
	var count int64
	err := r.db.Model(&models.RoleAssignment{}).
		Where("user_id = ? AND role = ?", userID, role).
		Count(&count).Error
	return count > 0, err
}

func (r *roleRepository) ListMembers(role models.Role) ([]models.User, error) {
	var users []models.User
	err := r.db.
		Joins("JOIN role_assignments ON role_assignments.user_id = users.id").
		Where("role_assignments.role = ?", role).
		Find(&users).Error
	return users, err
}

func (r *roleRepository) GetMember(role models.Role, userID uint) (*models.User, error) {
	var user models.User
	err := r.db.
		Joins("JOIN role_assignments ON role_assignments.user_id = users.id").
		Where("role_assignments.role = ? AND users.id = ?", role, userID).
		First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}
