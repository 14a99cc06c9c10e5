package main

import (
	"log"
	"net/http"

	_ "clinicbook/docs" // swagger docs

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"clinicbook/internal/auth"
	"clinicbook/internal/cache"
	"clinicbook/internal/config"
	"clinicbook/internal/db"
	"clinicbook/internal/handler"
	"clinicbook/internal/model"
	"clinicbook/internal/repository"
	"clinicbook/internal/router"
	"clinicbook/internal/service"
)

// @title Clinic Booking API
// @version 1.0
// @description Clinic booking API with PESEL-based registration, JWT sessions, doctor directory and appointment booking.
// @host localhost:5000
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, relying on environment variables")
	}
	cfg := config.Load()

	e := echo.New()
	e.Use(middleware.RequestID())

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	// Run migrations for all models
	if err := gormDB.AutoMigrate(
		&model.Role{},
		&model.Specialization{},
		&model.User{},
		&model.Appointment{},
	); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	// Initialize repositories
	userRepo := repository.NewUserRepository(gormDB)
	roleRepo := repository.NewRoleRepository(gormDB)
	appointmentRepo := repository.NewAppointmentRepository(gormDB)
	specializationRepo := repository.NewSpecializationRepository(gormDB)

	// Initialize services
	jwtService := auth.NewJWTService(cfg.JWTSecret)
	authService := service.NewAuthService(userRepo, roleRepo, jwtService)
	userService := service.NewUserService(userRepo, roleRepo)
	directoryService := service.NewDirectoryService(userRepo)
	appointmentService := service.NewAppointmentService(appointmentRepo, directoryService)
	specializationService := service.NewSpecializationService(specializationRepo, cacheClient)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService, directoryService)
	appointmentHandler := handler.NewAppointmentHandler(appointmentService)
	specializationHandler := handler.NewSpecializationHandler(specializationService)

	// Register routes
	router.Register(
		e,
		cfg,
		authHandler,
		userHandler,
		appointmentHandler,
		specializationHandler,
	)

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}
