package repository

import (
	"context"

	"gorm.io/gorm"

	"clinicbook/internal/model"
)

// SpecializationRepository defines specialization catalog operations.
type SpecializationRepository interface {
	Create(ctx context.Context, spec *model.Specialization) error
	Update(ctx context.Context, spec *model.Specialization) error
	Delete(ctx context.Context, id uint) error
	FindByID(ctx context.Context, id uint) (*model.Specialization, error)
	List(ctx context.Context) ([]model.Specialization, error)
}

type specializationRepository struct {
	db *gorm.DB
}

// NewSpecializationRepository builds a GORM-backed repository.
func NewSpecializationRepository(db *gorm.DB) SpecializationRepository {
	return &specializationRepository{db: db}
}

func (r *specializationRepository) Create(ctx context.Context, spec *model.Specialization) error {
	return r.db.WithContext(ctx).Create(spec).Error
}

func (r *specializationRepository) Update(ctx context.Context, spec *model.Specialization) error {
	return r.db.WithContext(ctx).Save(spec).Error
}

func (r *specializationRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.Specialization{}, id).Error
}

func (r *specializationRepository) FindByID(ctx context.Context, id uint) (*model.Specialization, error) {
	var spec model.Specialization
	if err := r.db.WithContext(ctx).First(&spec, id).Error; err != nil {
		return nil, err
	}
	return &spec, nil
}

func (r *specializationRepository) List(ctx context.Context) ([]model.Specialization, error) {
	var specs []model.Specialization
	if err := r.db.WithContext(ctx).Find(&specs).Error; err != nil {
		return nil, err
	}
	return specs, nil
}
