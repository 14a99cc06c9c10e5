package repository

import (
	"context"

	"gorm.io/gorm"

	"clinicbook/internal/model"
)

// AppointmentRepository defines appointment persistence operations. Records
// are append-only; there is no update or delete.
type AppointmentRepository interface {
	Create(ctx context.Context, appointment *model.Appointment) error
	ListByPESEL(ctx context.Context, pesel string) ([]model.Appointment, error)
}

type appointmentRepository struct {
	db *gorm.DB
}

// NewAppointmentRepository builds a GORM-backed repository.
func NewAppointmentRepository(db *gorm.DB) AppointmentRepository {
	return &appointmentRepository{db: db}
}

func (r *appointmentRepository) Create(ctx context.Context, appointment *model.Appointment) error {
	return r.db.WithContext(ctx).Create(appointment).Error
}

// ListByPESEL returns appointments in insertion order.
func (r *appointmentRepository) ListByPESEL(ctx context.Context, pesel string) ([]model.Appointment, error) {
	var appointments []model.Appointment
	if err := r.db.WithContext(ctx).Where("pesel = ?", pesel).Order("id").Find(&appointments).Error; err != nil {
		return nil, err
	}
	return appointments, nil
}
