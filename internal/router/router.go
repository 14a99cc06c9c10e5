package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"clinicbook/internal/auth"
	"clinicbook/internal/config"
	"clinicbook/internal/handler"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	authHandler *handler.AuthHandler,
	userHandler *handler.UserHandler,
	appointmentHandler *handler.AppointmentHandler,
	specializationHandler *handler.SpecializationHandler,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	// Add validator
	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api")

	// Public routes
	api.POST("/users/register", authHandler.Register)
	api.POST("/users/login", authHandler.Login)

	// Guarded routes: bearer token verified once here, before any handler runs.
	secured := api.Group("", Guard(cfg.JWTSecret))

	secured.GET("/users", userHandler.ListUsers)
	secured.GET("/users/doctors", userHandler.ListDoctors)
	secured.GET("/users/pesel/:pesel", userHandler.GetByPESEL)
	secured.PUT("/users/:id", userHandler.UpdateRole, RequireRole("admin"))
	secured.DELETE("/users/:id", userHandler.DeleteUser, RequireRole("admin"))

	secured.POST("/appointments", appointmentHandler.Book)
	secured.GET("/appointments/pesel/:pesel", appointmentHandler.ListByPESEL)

	secured.GET("/specializations", specializationHandler.List)
	secured.POST("/specializations", specializationHandler.Create, RequireRole("admin"))
	secured.PUT("/specializations/:id", specializationHandler.Update, RequireRole("admin"))
	secured.DELETE("/specializations/:id", specializationHandler.Delete, RequireRole("admin"))
}

// Guard authenticates the request. The two failure modes are reported
// separately: no token at all versus a token that does not verify or has
// expired. Both are 403, matching the rest of the guard's responses.
func Guard(secret string) echo.MiddlewareFunc {
	return echojwt.WithConfig(echojwt.Config{
		SigningKey:  []byte(secret),
		TokenLookup: "header:" + echo.HeaderAuthorization + ":Bearer ",
		NewClaimsFunc: func(c echo.Context) jwt.Claims {
			return new(auth.Claims)
		},
		ErrorHandler: func(c echo.Context, err error) error {
			if c.Request().Header.Get(echo.HeaderAuthorization) == "" {
				return echo.NewHTTPError(http.StatusForbidden, "token required")
			}
			return echo.NewHTTPError(http.StatusForbidden, "invalid or expired token")
		},
	})
}

// RequireRole admits the request only when the token's embedded role equals
// required. The decision is a pure function of the claims; the role is never
// re-read from storage, so a role change applies at the next login.
func RequireRole(required string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims, err := auth.FromContext(c)
			if err != nil {
				return err
			}
			if claims.Role != required {
				return echo.NewHTTPError(http.StatusForbidden, "insufficient role")
			}
			return next(c)
		}
	}
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
