package services

import (
	"errors"

	"restaurant_api/internal/models"
	"restaurant_api/internal/policy"
	"restaurant_api/internal/repository"

	"gorm.io/gorm"
)

type RoleService interface {
	AssignRole(actor *models.User, role models.Role, username string) (*models.User, error)
	ListMembers(actor *models.User, role models.Role) ([]models.User, error)
	GetMember(actor *models.User, role models.Role, userID uint) (*models.User, error)
	RemoveMember(actor *models.User, role models.Role, userID uint) error
}

type roleService struct {
	roleRepo repository.RoleRepository
	userRepo repository.UserRepository
}

func NewRoleService(roleRepo repository.RoleRepository, userRepo repository.UserRepository) RoleService {
	return &roleService{roleRepo: roleRepo, userRepo: userRepo}
}

// AssignRole looks up the target by username and adds the membership.
// Assigning a role the user already holds succeeds without effect.
func (s *roleService) AssignRole(actor *models.User, role models.Role, username string) (*models.User, error) {
	if !policy.Allow(actor, policy.RosterResource(role), policy.ActionCreate) {
		return nil, ErrForbidden
	}
	user, err := s.userRepo.GetByUsername(username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if err := s.roleRepo.Assign(user.ID, role); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *roleService) ListMembers(actor *models.User, role models.Role) ([]models.User, error) {
	if !policy.Allow(actor, policy.RosterResource(role), policy.ActionRead) {
		return nil, ErrForbidden
	}
	return s.roleRepo.ListMembers(role)
}

func (s *roleService) GetMember(actor *models.User, role models.Role, userID uint) (*models.User, error) {
	if !policy.Allow(actor, policy.RosterResource(role), policy.ActionRead) {
		return nil, ErrForbidden
	}
	user, err := s.roleRepo.GetMember(role, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return user, nil
}

func (s *roleService) RemoveMember(actor *models.User, role models.Role, userID uint) error {
	if !policy.Allow(actor, policy.RosterResource(role), policy.ActionDelete) {
		return ErrForbidden
	}
	err := s.roleRepo.Remove(userID, role)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
