package auth

import (
	"net/http"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

// contextKey is where the echo-jwt middleware stores the parsed token.
const contextKey = "user"

// FromContext returns the verified claims for the current request. Handlers
// read identity and role exclusively through this accessor; nothing mutates
// the claims after the guard verifies the token.
func FromContext(c echo.Context) (*Claims, error) {
	token, ok := c.Get(contextKey).(*jwt.Token)
	if !ok {
		return nil, echo.NewHTTPError(http.StatusForbidden, "token required")
	}
	claims, ok := token.Claims.(*Claims)
	if !ok {
		return nil, echo.NewHTTPError(http.StatusForbidden, "invalid or expired token")
	}
	return claims, nil
}
