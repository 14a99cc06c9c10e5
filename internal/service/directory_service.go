package service

import (
	"context"
	"fmt"

	"clinicbook/internal/errors"
	"clinicbook/internal/model"
	"clinicbook/internal/repository"
)

// DirectoryService resolves doctors and display names.
type DirectoryService interface {
	FindDoctors(ctx context.Context, specialization string) ([]model.User, error)
	DisplayNameOf(ctx context.Context, userID string) (firstName, lastName string, found bool)
}

type directoryService struct {
	userRepo repository.UserRepository
}

// NewDirectoryService builds a DirectoryService.
func NewDirectoryService(userRepo repository.UserRepository) DirectoryService {
	return &directoryService{userRepo: userRepo}
}

// FindDoctors returns users holding the doctor role. A non-empty
// specialization filters by exact match, as stored.
func (s *directoryService) FindDoctors(ctx context.Context, specialization string) ([]model.User, error) {
	doctors, err := s.userRepo.ListByRole(ctx, model.DoctorRoleName, specialization)
	if err != nil {
		return nil, fmt.Errorf("list doctors: %w", err)
	}
	if len(doctors) == 0 {
		return nil, errors.ErrNoDoctors
	}
	return doctors, nil
}

// DisplayNameOf is best-effort: a missing user yields the unknown sentinel
// rather than an error, because appointment records may reference doctors
// that have since been removed.
func (s *directoryService) DisplayNameOf(ctx context.Context, userID string) (string, string, bool) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return "", "", false
	}
	return user.FirstName, user.LastName, true
}
