package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"clinicbook/internal/errors"
	"clinicbook/internal/service"
)

// AppointmentHandler handles booking and listing endpoints.
type AppointmentHandler struct {
	appointmentService service.AppointmentService
}

// NewAppointmentHandler creates a new appointment handler.
func NewAppointmentHandler(appointmentService service.AppointmentService) *AppointmentHandler {
	return &AppointmentHandler{appointmentService: appointmentService}
}

// BookRequest represents a booking request. Date is RFC 3339.
type BookRequest struct {
	DoctorID string    `json:"doctor_id" validate:"required"`
	Date     time.Time `json:"date" validate:"required"`
	PESEL    string    `json:"pesel" validate:"required"`
}

// Book godoc
// @Summary Book an appointment
// @Tags appointments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body BookRequest true "Booking data"
// @Success 201 {object} model.Appointment
// @Failure 400 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /appointments [post]
func (h *AppointmentHandler) Book(c echo.Context) error {
	var req BookRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	appointment, err := h.appointmentService.Book(c.Request().Context(), req.DoctorID, req.Date, req.PESEL)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusCreated, appointment)
}

// ListByPESEL godoc
// @Summary List a patient's appointments with doctor names attached
// @Tags appointments
// @Produce json
// @Security BearerAuth
// @Param pesel path string true "PESEL"
// @Success 200 {array} model.EnrichedAppointment
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /appointments/pesel/{pesel} [get]
func (h *AppointmentHandler) ListByPESEL(c echo.Context) error {
	appointments, err := h.appointmentService.ListByPESEL(c.Request().Context(), c.Param("pesel"))
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, appointments)
}
