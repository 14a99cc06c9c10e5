package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"clinicbook/internal/auth"
)

const testSecret = "test-secret"

func newGuardedEcho(t *testing.T, requiredRole string, executed *bool) *echo.Echo {
	t.Helper()

	e := echo.New()
	handler := func(c echo.Context) error {
		*executed = true
		return c.NoContent(http.StatusNoContent)
	}

	middlewares := []echo.MiddlewareFunc{}
	if requiredRole != "" {
		middlewares = append(middlewares, RequireRole(requiredRole))
	}
	e.DELETE("/guarded", handler, middlewares...)

	// Wrap the whole thing behind the guard the way Register does.
	e.Use(Guard(testSecret))
	return e
}

func doRequest(e *echo.Echo, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodDelete, "/guarded", nil)
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestGuard_MissingToken(t *testing.T) {
	executed := false
	e := newGuardedEcho(t, "", &executed)

	rec := doRequest(e, "")

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Contains(t, rec.Body.String(), "token required")
	assert.False(t, executed)
}

func TestGuard_InvalidToken(t *testing.T) {
	executed := false
	e := newGuardedEcho(t, "", &executed)

	rec := doRequest(e, "garbage.token.value")

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Contains(t, rec.Body.String(), "invalid or expired token")
	assert.False(t, executed)
}

func TestGuard_TokenSignedWithOtherSecret(t *testing.T) {
	executed := false
	e := newGuardedEcho(t, "", &executed)

	token, err := auth.NewJWTService("other-secret").Generate("user-1", "admin")
	assert.NoError(t, err)

	rec := doRequest(e, token)

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Contains(t, rec.Body.String(), "invalid or expired token")
	assert.False(t, executed)
}

func TestGuard_ValidTokenPasses(t *testing.T) {
	executed := false
	e := newGuardedEcho(t, "", &executed)

	token, err := auth.NewJWTService(testSecret).Generate("user-1", "user")
	assert.NoError(t, err)

	rec := doRequest(e, token)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.True(t, executed)
}

func TestRequireRole(t *testing.T) {
	tests := []struct {
		name         string
		role         string
		expectedCode int
		expectedRun  bool
	}{
		{name: "matching role admitted", role: "admin", expectedCode: http.StatusNoContent, expectedRun: true},
		{name: "lesser role rejected", role: "user", expectedCode: http.StatusForbidden, expectedRun: false},
		{name: "empty role rejected", role: "", expectedCode: http.StatusForbidden, expectedRun: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			executed := false
			e := newGuardedEcho(t, "admin", &executed)

			token, err := auth.NewJWTService(testSecret).Generate("user-1", tt.role)
			assert.NoError(t, err)

			rec := doRequest(e, token)

			assert.Equal(t, tt.expectedCode, rec.Code)
			// The gated operation's side effect must never run on rejection.
			assert.Equal(t, tt.expectedRun, executed)
			if !tt.expectedRun {
				assert.Contains(t, rec.Body.String(), "insufficient role")
			}
		})
	}
}
