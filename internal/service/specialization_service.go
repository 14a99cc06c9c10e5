package service

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"clinicbook/internal/cache"
	"clinicbook/internal/errors"
	"clinicbook/internal/model"
	"clinicbook/internal/repository"
)

const (
	specializationCacheKey = "specializations"
	specializationCacheTTL = 5 * time.Minute
)

// SpecializationService manages the specialization catalog. The catalog rarely
// changes, so the listing is served from redis when available; user and
// appointment reads never go through the cache.
type SpecializationService interface {
	List(ctx context.Context) ([]model.Specialization, error)
	Create(ctx context.Context, name, description string) (*model.Specialization, error)
	Update(ctx context.Context, id uint, name, description string) (*model.Specialization, error)
	Delete(ctx context.Context, id uint) error
}

type specializationService struct {
	repo  repository.SpecializationRepository
	cache *cache.Client
}

// NewSpecializationService builds a SpecializationService.
func NewSpecializationService(repo repository.SpecializationRepository, cache *cache.Client) SpecializationService {
	return &specializationService{repo: repo, cache: cache}
}

func (s *specializationService) List(ctx context.Context) ([]model.Specialization, error) {
	var cached []model.Specialization
	if s.cache.GetJSON(ctx, specializationCacheKey, &cached) {
		return cached, nil
	}

	specs, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list specializations: %w", err)
	}

	s.cache.SetJSON(ctx, specializationCacheKey, specs, specializationCacheTTL)
	return specs, nil
}

func (s *specializationService) Create(ctx context.Context, name, description string) (*model.Specialization, error) {
	if name == "" || description == "" {
		return nil, errors.ErrMissingFields
	}

	spec := &model.Specialization{Name: name, Description: description}
	if err := s.repo.Create(ctx, spec); err != nil {
		return nil, fmt.Errorf("create specialization: %w", err)
	}

	_ = s.cache.Delete(ctx, specializationCacheKey)
	return spec, nil
}

func (s *specializationService) Update(ctx context.Context, id uint, name, description string) (*model.Specialization, error) {
	spec, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrSpecializationNotFound
		}
		return nil, fmt.Errorf("find specialization: %w", err)
	}

	spec.Name = name
	spec.Description = description
	if err := s.repo.Update(ctx, spec); err != nil {
		return nil, fmt.Errorf("update specialization: %w", err)
	}

	_ = s.cache.Delete(ctx, specializationCacheKey)
	return spec, nil
}

func (s *specializationService) Delete(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete specialization: %w", err)
	}
	_ = s.cache.Delete(ctx, specializationCacheKey)
	return nil
}
