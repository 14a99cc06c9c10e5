package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrMissingFields is returned when a required input field is empty.
	ErrMissingFields = errors.New("all fields are required")
	// ErrInvalidCredentials is returned when PESEL or password is incorrect.
	// The same error covers both an unknown PESEL and a wrong password so the
	// response never reveals whether an identifier is registered.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrUserAlreadyExists is returned when a PESEL is already registered.
	ErrUserAlreadyExists = errors.New("user with this PESEL already exists")
	// ErrUserNotFound is returned when a user lookup matches nothing.
	ErrUserNotFound = errors.New("user not found")
	// ErrRoleRequired is returned when a role update omits the role name.
	ErrRoleRequired = errors.New("role is required")
	// ErrRoleNotFound is returned when a role name is not seeded.
	ErrRoleNotFound = errors.New("role not found")
	// ErrNoUsers is returned when the user listing is empty.
	ErrNoUsers = errors.New("no users found")
	// ErrNoDoctors is returned when no doctors match the directory query.
	ErrNoDoctors = errors.New("no doctors found")
	// ErrNoAppointments is returned when a patient has no appointments.
	ErrNoAppointments = errors.New("no appointments found")
	// ErrSpecializationNotFound is returned when a specialization id matches nothing.
	ErrSpecializationNotFound = errors.New("specialization not found")
)

// ErrorResponse represents a standardized error response.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
	Code       string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message, code string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
		Code:       code,
	}
}

// ToErrorResponse converts an HTTPError to ErrorResponse.
func (e *HTTPError) ToErrorResponse() ErrorResponse {
	return ErrorResponse{
		Error: e.Message,
		Code:  e.Code,
	}
}

// MapErrorToHTTP maps domain errors to HTTP errors. Unknown errors collapse to
// an opaque 500 so persistence details never reach the client.
func MapErrorToHTTP(err error) *HTTPError {
	switch {
	case errors.Is(err, ErrMissingFields):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "MISSING_FIELDS")
	case errors.Is(err, ErrRoleRequired):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "ROLE_REQUIRED")
	case errors.Is(err, ErrInvalidCredentials):
		return NewHTTPError(http.StatusUnauthorized, err.Error(), "INVALID_CREDENTIALS")
	case errors.Is(err, ErrUserAlreadyExists):
		return NewHTTPError(http.StatusConflict, err.Error(), "USER_ALREADY_EXISTS")
	case errors.Is(err, ErrUserNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "USER_NOT_FOUND")
	case errors.Is(err, ErrRoleNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "ROLE_NOT_FOUND")
	case errors.Is(err, ErrNoUsers):
		return NewHTTPError(http.StatusNotFound, err.Error(), "NO_USERS")
	case errors.Is(err, ErrNoDoctors):
		return NewHTTPError(http.StatusNotFound, err.Error(), "NO_DOCTORS")
	case errors.Is(err, ErrNoAppointments):
		return NewHTTPError(http.StatusNotFound, err.Error(), "NO_APPOINTMENTS")
	case errors.Is(err, ErrSpecializationNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "SPECIALIZATION_NOT_FOUND")
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal server error", "INTERNAL_ERROR")
	}
}
