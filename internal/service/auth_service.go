package service

import (
	"context"
	"fmt"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"clinicbook/internal/auth"
	"clinicbook/internal/errors"
	"clinicbook/internal/model"
	"clinicbook/internal/repository"
)

const bcryptCost = 10

// AuthService handles registration and login.
type AuthService interface {
	Register(ctx context.Context, firstName, lastName, pesel, password, phone string) (*model.User, error)
	Login(ctx context.Context, pesel, password string) (token string, err error)
}

type authService struct {
	userRepo   repository.UserRepository
	roleRepo   repository.RoleRepository
	jwtService *auth.JWTService
}

// NewAuthService creates a new authentication service.
func NewAuthService(userRepo repository.UserRepository, roleRepo repository.RoleRepository, jwtService *auth.JWTService) AuthService {
	return &authService{
		userRepo:   userRepo,
		roleRepo:   roleRepo,
		jwtService: jwtService,
	}
}

// Register creates a new user with a hashed password and the default "user"
// role. The pre-check on PESEL is advisory; the unique index is what actually
// enforces the invariant, so a duplicate-key error from the insert is mapped
// to the same conflict error.
func (s *authService) Register(ctx context.Context, firstName, lastName, pesel, password, phone string) (*model.User, error) {
	if firstName == "" || lastName == "" || pesel == "" || password == "" || phone == "" {
		return nil, errors.ErrMissingFields
	}

	existing, err := s.userRepo.FindByPESEL(ctx, pesel)
	if err == nil && existing != nil {
		return nil, errors.ErrUserAlreadyExists
	}
	if err != nil && err != gorm.ErrRecordNotFound {
		return nil, fmt.Errorf("check user existence: %w", err)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &model.User{
		FirstName:    firstName,
		LastName:     lastName,
		PESEL:        pesel,
		PasswordHash: string(hashedPassword),
		Phone:        phone,
	}

	// Default role assignment happens together with creation. A missing role
	// row leaves RoleID nil, which readers treat as "user" semantics.
	if role, err := s.roleRepo.FindByName(ctx, model.DefaultRoleName); err == nil {
		user.RoleID = &role.ID
		user.Role = role
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		if err == gorm.ErrDuplicatedKey {
			return nil, errors.ErrUserAlreadyExists
		}
		return nil, fmt.Errorf("create user: %w", err)
	}

	return user, nil
}

// Login verifies credentials and issues a session token. Unknown PESEL and
// wrong password return the identical error so the response never reveals
// whether an identifier is registered.
func (s *authService) Login(ctx context.Context, pesel, password string) (string, error) {
	user, err := s.userRepo.FindByPESEL(ctx, pesel)
	if err != nil {
		return "", errors.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", errors.ErrInvalidCredentials
	}

	token, err := s.jwtService.Generate(user.ID, user.RoleName())
	if err != nil {
		return "", fmt.Errorf("generate token: %w", err)
	}

	return token, nil
}
