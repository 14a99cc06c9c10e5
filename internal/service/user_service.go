package service

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"clinicbook/internal/errors"
	"clinicbook/internal/model"
	"clinicbook/internal/repository"
)

// UserService exposes user management operations.
type UserService interface {
	List(ctx context.Context) ([]model.User, error)
	GetByPESEL(ctx context.Context, pesel string) (*model.User, error)
	UpdateRole(ctx context.Context, id, roleName, specialization string) (*model.User, error)
	Delete(ctx context.Context, id string) error
}

type userService struct {
	userRepo repository.UserRepository
	roleRepo repository.RoleRepository
}

// NewUserService builds a UserService.
func NewUserService(userRepo repository.UserRepository, roleRepo repository.RoleRepository) UserService {
	return &userService{userRepo: userRepo, roleRepo: roleRepo}
}

func (s *userService) List(ctx context.Context) ([]model.User, error) {
	users, err := s.userRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	if len(users) == 0 {
		return nil, errors.ErrNoUsers
	}
	return users, nil
}

func (s *userService) GetByPESEL(ctx context.Context, pesel string) (*model.User, error) {
	user, err := s.userRepo.FindByPESEL(ctx, pesel)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user by pesel: %w", err)
	}
	return user, nil
}

// UpdateRole assigns a named role and specialization to a user. The role name
// must exist in the roles table; specialization is stored as given and is only
// meaningful when the role is "doctor".
func (s *userService) UpdateRole(ctx context.Context, id, roleName, specialization string) (*model.User, error) {
	if roleName == "" {
		return nil, errors.ErrRoleRequired
	}

	role, err := s.roleRepo.FindByName(ctx, roleName)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrRoleNotFound
		}
		return nil, fmt.Errorf("find role: %w", err)
	}

	user, err := s.userRepo.UpdateRole(ctx, id, role.ID, specialization)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrUserNotFound
		}
		return nil, fmt.Errorf("update user role: %w", err)
	}
	return user, nil
}

func (s *userService) Delete(ctx context.Context, id string) error {
	if err := s.userRepo.Delete(ctx, id); err != nil {
		if err == gorm.ErrRecordNotFound {
			return errors.ErrUserNotFound
		}
		return fmt.Errorf("delete user: %w", err)
	}
	return nil
}
