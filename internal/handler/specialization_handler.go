package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"clinicbook/internal/errors"
	"clinicbook/internal/service"
)

// SpecializationHandler handles specialization catalog endpoints.
type SpecializationHandler struct {
	specializationService service.SpecializationService
}

// NewSpecializationHandler creates a new specialization handler.
func NewSpecializationHandler(specializationService service.SpecializationService) *SpecializationHandler {
	return &SpecializationHandler{specializationService: specializationService}
}

// SpecializationRequest represents a catalog create/update request.
type SpecializationRequest struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description" validate:"required"`
}

// List godoc
// @Summary List specializations
// @Tags specializations
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.Specialization
// @Failure 403 {object} errors.ErrorResponse
// @Router /specializations [get]
func (h *SpecializationHandler) List(c echo.Context) error {
	specs, err := h.specializationService.List(c.Request().Context())
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, specs)
}

// Create godoc
// @Summary Create a specialization
// @Tags specializations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body SpecializationRequest true "Specialization data"
// @Success 201 {object} model.Specialization
// @Failure 400 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Router /specializations [post]
func (h *SpecializationHandler) Create(c echo.Context) error {
	var req SpecializationRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	spec, err := h.specializationService.Create(c.Request().Context(), req.Name, req.Description)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusCreated, spec)
}

// Update godoc
// @Summary Update a specialization
// @Tags specializations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Specialization ID"
// @Param request body SpecializationRequest true "Specialization data"
// @Success 200 {object} model.Specialization
// @Failure 400 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /specializations/{id} [put]
func (h *SpecializationHandler) Update(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	var req SpecializationRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	spec, err := h.specializationService.Update(c.Request().Context(), uint(id), req.Name, req.Description)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, spec)
}

// Delete godoc
// @Summary Delete a specialization
// @Tags specializations
// @Security BearerAuth
// @Param id path int true "Specialization ID"
// @Success 204
// @Failure 400 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Router /specializations/{id} [delete]
func (h *SpecializationHandler) Delete(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	if err := h.specializationService.Delete(c.Request().Context(), uint(id)); err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.NoContent(http.StatusNoContent)
}
