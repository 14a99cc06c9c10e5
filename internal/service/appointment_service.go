package service

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"clinicbook/internal/errors"
	"clinicbook/internal/model"
	"clinicbook/internal/repository"
)

// AppointmentService books appointments and lists them per patient, enriched
// with the doctor's display name.
type AppointmentService interface {
	Book(ctx context.Context, doctorID string, date time.Time, pesel string) (*model.Appointment, error)
	ListByPESEL(ctx context.Context, pesel string) ([]model.EnrichedAppointment, error)
}

type appointmentService struct {
	appointmentRepo repository.AppointmentRepository
	directory       DirectoryService
}

// NewAppointmentService creates a new appointment service.
func NewAppointmentService(appointmentRepo repository.AppointmentRepository, directory DirectoryService) AppointmentService {
	return &appointmentService{
		appointmentRepo: appointmentRepo,
		directory:       directory,
	}
}

// Book persists an immutable appointment record. The doctor id is not checked
// for existence, the date is not checked against the clock, and there is no
// conflict detection for the doctor's calendar.
func (s *appointmentService) Book(ctx context.Context, doctorID string, date time.Time, pesel string) (*model.Appointment, error) {
	if doctorID == "" || pesel == "" || date.IsZero() {
		return nil, errors.ErrMissingFields
	}

	appointment := &model.Appointment{
		DoctorID: doctorID,
		PESEL:    pesel,
		Date:     date,
	}
	if err := s.appointmentRepo.Create(ctx, appointment); err != nil {
		return nil, fmt.Errorf("create appointment: %w", err)
	}
	return appointment, nil
}

// ListByPESEL returns the patient's appointments with the doctor's name
// attached to each record. Name lookups fan out concurrently and write their
// result by index, so the output keeps the repository's insertion order. A
// dangling doctor reference leaves both name fields null without failing the
// other records.
func (s *appointmentService) ListByPESEL(ctx context.Context, pesel string) ([]model.EnrichedAppointment, error) {
	appointments, err := s.appointmentRepo.ListByPESEL(ctx, pesel)
	if err != nil {
		return nil, fmt.Errorf("list appointments: %w", err)
	}
	if len(appointments) == 0 {
		return nil, errors.ErrNoAppointments
	}

	enriched := make([]model.EnrichedAppointment, len(appointments))
	g, gctx := errgroup.WithContext(ctx)
	for i, appointment := range appointments {
		g.Go(func() error {
			record := model.EnrichedAppointment{Appointment: appointment}
			if first, last, ok := s.directory.DisplayNameOf(gctx, appointment.DoctorID); ok {
				record.DoctorFirstName = &first
				record.DoctorLastName = &last
			}
			enriched[i] = record
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return enriched, nil
}
