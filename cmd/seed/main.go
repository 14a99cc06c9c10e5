package main

import (
	"context"
	"log"

	"github.com/joho/godotenv"
	"gorm.io/gorm"

	"clinicbook/internal/config"
	"clinicbook/internal/db"
	"clinicbook/internal/model"
	"clinicbook/internal/repository"
)

var baseSpecializations = []model.Specialization{
	{Name: "Cardiology", Description: "Diagnosis and treatment of heart and circulatory system disorders."},
	{Name: "Dermatology", Description: "Diagnosis and treatment of skin, hair and nail conditions."},
	{Name: "Pediatrics", Description: "Medical care of infants, children and adolescents."},
}

func main() {
	log.Println("Starting seed script...")

	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, relying on environment variables")
	}
	cfg := config.Load()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	if err := gormDB.AutoMigrate(&model.Role{}, &model.Specialization{}); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	ctx := context.Background()

	roleRepo := repository.NewRoleRepository(gormDB)
	specNames := make([]string, 0, len(baseSpecializations))
	for _, spec := range baseSpecializations {
		specNames = append(specNames, spec.Name)
	}

	roles := []model.Role{
		{Name: model.AdminRoleName, Specializations: []string{}},
		{Name: model.DefaultRoleName, Specializations: []string{}},
		{Name: model.DoctorRoleName, Specializations: specNames},
	}
	for _, role := range roles {
		if _, err := roleRepo.FindByName(ctx, role.Name); err == nil {
			log.Printf("Role %q already exists, skipping", role.Name)
			continue
		} else if err != gorm.ErrRecordNotFound {
			log.Fatalf("Failed to check role %q: %v", role.Name, err)
		}
		if err := roleRepo.Create(ctx, &role); err != nil {
			log.Fatalf("Failed to create role %q: %v", role.Name, err)
		}
		log.Printf("Created role %q with specializations %v", role.Name, role.Specializations)
	}

	specRepo := repository.NewSpecializationRepository(gormDB)
	existing, err := specRepo.List(ctx)
	if err != nil {
		log.Fatalf("Failed to list specializations: %v", err)
	}
	present := make(map[string]bool, len(existing))
	for _, spec := range existing {
		present[spec.Name] = true
	}
	for _, spec := range baseSpecializations {
		if present[spec.Name] {
			log.Printf("Specialization %q already exists, skipping", spec.Name)
			continue
		}
		if err := specRepo.Create(ctx, &spec); err != nil {
			log.Fatalf("Failed to create specialization %q: %v", spec.Name, err)
		}
		log.Printf("Created specialization %q", spec.Name)
	}

	log.Println("Seed completed successfully!")
}
