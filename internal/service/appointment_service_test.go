package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"clinicbook/internal/errors"
	"clinicbook/internal/model"
)

// MockAppointmentRepository is a mock implementation of AppointmentRepository.
type MockAppointmentRepository struct {
	mock.Mock
}

func (m *MockAppointmentRepository) Create(ctx context.Context, appointment *model.Appointment) error {
	args := m.Called(ctx, appointment)
	return args.Error(0)
}

func (m *MockAppointmentRepository) ListByPESEL(ctx context.Context, pesel string) ([]model.Appointment, error) {
	args := m.Called(ctx, pesel)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Appointment), args.Error(1)
}

// MockDirectoryService is a mock implementation of DirectoryService.
type MockDirectoryService struct {
	mock.Mock
}

func (m *MockDirectoryService) FindDoctors(ctx context.Context, specialization string) ([]model.User, error) {
	args := m.Called(ctx, specialization)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.User), args.Error(1)
}

func (m *MockDirectoryService) DisplayNameOf(ctx context.Context, userID string) (string, string, bool) {
	args := m.Called(ctx, userID)
	return args.String(0), args.String(1), args.Bool(2)
}

func TestAppointmentService_Book(t *testing.T) {
	date := time.Date(2026, 10, 12, 14, 30, 0, 0, time.UTC)

	tests := []struct {
		name          string
		doctorID      string
		date          time.Time
		pesel         string
		setupMock     func(*MockAppointmentRepository)
		expectedError error
	}{
		{
			name:     "successful booking",
			doctorID: "d2c1a6e4-0000-0000-0000-000000000001",
			date:     date,
			pesel:    "90010112345",
			setupMock: func(m *MockAppointmentRepository) {
				m.On("Create", mock.Anything, mock.AnythingOfType("*model.Appointment")).Return(nil)
			},
		},
		{
			// No existence check on the doctor id: a booking against an
			// unknown doctor still succeeds.
			name:     "unknown doctor id still books",
			doctorID: "no-such-doctor",
			date:     date,
			pesel:    "90010112345",
			setupMock: func(m *MockAppointmentRepository) {
				m.On("Create", mock.Anything, mock.AnythingOfType("*model.Appointment")).Return(nil)
			},
		},
		{
			name:          "missing doctor id",
			doctorID:      "",
			date:          date,
			pesel:         "90010112345",
			setupMock:     func(m *MockAppointmentRepository) {},
			expectedError: errors.ErrMissingFields,
		},
		{
			name:          "missing date",
			doctorID:      "d2c1a6e4-0000-0000-0000-000000000001",
			date:          time.Time{},
			pesel:         "90010112345",
			setupMock:     func(m *MockAppointmentRepository) {},
			expectedError: errors.ErrMissingFields,
		},
		{
			name:          "missing pesel",
			doctorID:      "d2c1a6e4-0000-0000-0000-000000000001",
			date:          date,
			pesel:         "",
			setupMock:     func(m *MockAppointmentRepository) {},
			expectedError: errors.ErrMissingFields,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockAppointmentRepository)
			tt.setupMock(mockRepo)

			svc := NewAppointmentService(mockRepo, new(MockDirectoryService))
			appointment, err := svc.Book(context.Background(), tt.doctorID, tt.date, tt.pesel)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, appointment)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, appointment)
				assert.Equal(t, tt.doctorID, appointment.DoctorID)
				assert.Equal(t, tt.pesel, appointment.PESEL)
			}

			mockRepo.AssertExpectations(t)
		})
	}
}

func TestAppointmentService_ListByPESEL(t *testing.T) {
	date := time.Date(2026, 10, 12, 14, 30, 0, 0, time.UTC)

	t.Run("no appointments", func(t *testing.T) {
		mockRepo := new(MockAppointmentRepository)
		mockRepo.On("ListByPESEL", mock.Anything, "90010112345").Return([]model.Appointment{}, nil)

		svc := NewAppointmentService(mockRepo, new(MockDirectoryService))
		_, err := svc.ListByPESEL(context.Background(), "90010112345")

		assert.ErrorIs(t, err, errors.ErrNoAppointments)
	})

	t.Run("enriches with doctor names", func(t *testing.T) {
		mockRepo := new(MockAppointmentRepository)
		mockRepo.On("ListByPESEL", mock.Anything, "90010112345").Return([]model.Appointment{
			{ID: 1, DoctorID: "doc-1", PESEL: "90010112345", Date: date},
		}, nil)

		mockDirectory := new(MockDirectoryService)
		mockDirectory.On("DisplayNameOf", mock.Anything, "doc-1").Return("Jan", "Kowalski", true)

		svc := NewAppointmentService(mockRepo, mockDirectory)
		enriched, err := svc.ListByPESEL(context.Background(), "90010112345")

		assert.NoError(t, err)
		assert.Len(t, enriched, 1)
		if assert.NotNil(t, enriched[0].DoctorFirstName) {
			assert.Equal(t, "Jan", *enriched[0].DoctorFirstName)
		}
		if assert.NotNil(t, enriched[0].DoctorLastName) {
			assert.Equal(t, "Kowalski", *enriched[0].DoctorLastName)
		}
	})

	t.Run("dangling doctor reference leaves name fields null", func(t *testing.T) {
		mockRepo := new(MockAppointmentRepository)
		mockRepo.On("ListByPESEL", mock.Anything, "90010112345").Return([]model.Appointment{
			{ID: 1, DoctorID: "gone", PESEL: "90010112345", Date: date},
			{ID: 2, DoctorID: "doc-2", PESEL: "90010112345", Date: date},
		}, nil)

		mockDirectory := new(MockDirectoryService)
		mockDirectory.On("DisplayNameOf", mock.Anything, "gone").Return("", "", false)
		mockDirectory.On("DisplayNameOf", mock.Anything, "doc-2").Return("Ewa", "Wisniewska", true)

		svc := NewAppointmentService(mockRepo, mockDirectory)
		enriched, err := svc.ListByPESEL(context.Background(), "90010112345")

		assert.NoError(t, err)
		assert.Len(t, enriched, 2)
		assert.Nil(t, enriched[0].DoctorFirstName)
		assert.Nil(t, enriched[0].DoctorLastName)
		assert.NotNil(t, enriched[1].DoctorFirstName)
	})

	t.Run("output preserves query order despite concurrent enrichment", func(t *testing.T) {
		const n = 20

		appointments := make([]model.Appointment, 0, n)
		mockDirectory := new(MockDirectoryService)
		for i := 0; i < n; i++ {
			doctorID := fmt.Sprintf("doc-%d", i)
			appointments = append(appointments, model.Appointment{
				ID:       uint(i + 1),
				DoctorID: doctorID,
				PESEL:    "90010112345",
				Date:     date,
			})
			mockDirectory.On("DisplayNameOf", mock.Anything, doctorID).Return(fmt.Sprintf("First%d", i), fmt.Sprintf("Last%d", i), true)
		}

		mockRepo := new(MockAppointmentRepository)
		mockRepo.On("ListByPESEL", mock.Anything, "90010112345").Return(appointments, nil)

		svc := NewAppointmentService(mockRepo, mockDirectory)
		enriched, err := svc.ListByPESEL(context.Background(), "90010112345")

		assert.NoError(t, err)
		assert.Len(t, enriched, n)
		for i, record := range enriched {
			assert.Equal(t, uint(i+1), record.ID)
			if assert.NotNil(t, record.DoctorFirstName) {
				assert.Equal(t, fmt.Sprintf("First%d", i), *record.DoctorFirstName)
			}
		}
	})
}
