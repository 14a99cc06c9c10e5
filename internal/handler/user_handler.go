package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"clinicbook/internal/errors"
	"clinicbook/internal/service"
)

// UserHandler handles user management and directory endpoints.
type UserHandler struct {
	userService service.UserService
	directory   service.DirectoryService
}

// NewUserHandler creates a new user handler.
func NewUserHandler(userService service.UserService, directory service.DirectoryService) *UserHandler {
	return &UserHandler{userService: userService, directory: directory}
}

// UpdateRoleRequest represents a role assignment request.
type UpdateRoleRequest struct {
	Role           string `json:"role" validate:"required"`
	Specialization string `json:"specialization"`
}

// ListUsers godoc
// @Summary List all users
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.User
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /users [get]
func (h *UserHandler) ListUsers(c echo.Context) error {
	users, err := h.userService.List(c.Request().Context())
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, users)
}

// ListDoctors godoc
// @Summary List doctors, optionally filtered by specialization
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param specialization query string false "Specialization filter (exact match)"
// @Success 200 {array} model.User
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /users/doctors [get]
func (h *UserHandler) ListDoctors(c echo.Context) error {
	doctors, err := h.directory.FindDoctors(c.Request().Context(), c.QueryParam("specialization"))
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, doctors)
}

// GetByPESEL godoc
// @Summary Get a user by PESEL
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param pesel path string true "PESEL"
// @Success 200 {object} model.User
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /users/pesel/{pesel} [get]
func (h *UserHandler) GetByPESEL(c echo.Context) error {
	user, err := h.userService.GetByPESEL(c.Request().Context(), c.Param("pesel"))
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, user)
}

// UpdateRole godoc
// @Summary Assign a role and specialization to a user
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "User ID"
// @Param request body UpdateRoleRequest true "Role assignment"
// @Success 200 {object} model.User
// @Failure 400 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /users/{id} [put]
func (h *UserHandler) UpdateRole(c echo.Context) error {
	var req UpdateRoleRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if req.Role == "" {
		httpErr := errors.MapErrorToHTTP(errors.ErrRoleRequired)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	user, err := h.userService.UpdateRole(c.Request().Context(), c.Param("id"), req.Role, req.Specialization)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, user)
}

// DeleteUser godoc
// @Summary Delete a user
// @Tags users
// @Security BearerAuth
// @Param id path string true "User ID"
// @Success 204
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /users/{id} [delete]
func (h *UserHandler) DeleteUser(c echo.Context) error {
	if err := h.userService.Delete(c.Request().Context(), c.Param("id")); err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.NoContent(http.StatusNoContent)
}
