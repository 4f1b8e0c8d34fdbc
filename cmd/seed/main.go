package main

import (
	"context"
	"log"
	"os"

	"constructora/internal/auth"
	"constructora/internal/config"
	"constructora/internal/db"
	"constructora/internal/model"
	"constructora/internal/repository"
)

// Starter catalog shown on a fresh install.
var starterServices = []model.Service{
	{
		Title:       "General Construction",
		Description: "Full-scope residential and commercial builds.",
		Details:     "From foundations to finishes: structural work, masonry, carpentry and site management under one contract.",
	},
	{
		Title:       "Renovation & Remodeling",
		Description: "Kitchens, bathrooms and whole-home remodels.",
		Details:     "Demolition, layout changes, plumbing and electrical updates, and complete interior finishing.",
	},
	{
		Title:       "Roofing",
		Description: "Roof installation, repair and waterproofing.",
		Details:     "Tile, shingle and flat-roof systems with insulation and drainage work.",
	},
	{
		Title:       "Painting & Finishes",
		Description: "Interior and exterior painting.",
		Details:     "Surface preparation, priming, decorative finishes and protective coatings.",
	},
}

func main() {
	log.Println("Starting seed script...")

	cfg := config.Load()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	if err := gormDB.AutoMigrate(&model.User{}, &model.Service{}); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database migrations completed")

	ctx := context.Background()
	users := repository.NewUserRepository(gormDB)
	services := repository.NewServiceRepository(gormDB)

	username := getEnv("ADMIN_USERNAME", "admin")
	email := getEnv("ADMIN_EMAIL", "admin@example.com")
	password := getEnv("ADMIN_PASSWORD", "change-me")

	if _, err := users.FindByUsername(ctx, username); err == nil {
		log.Printf("Admin user %q already exists, skipping", username)
	} else {
		hashed, err := auth.HashPassword(password)
		if err != nil {
			log.Fatalf("Failed to hash admin password: %v", err)
		}
		admin := &model.User{
			Username:     username,
			Email:        email,
			PasswordHash: hashed,
			IsActive:     true,
			IsAdmin:      true,
		}
		if err := users.Create(ctx, admin); err != nil {
			log.Fatalf("Failed to create admin user: %v", err)
		}
		log.Printf("Created admin user %q", username)
	}

	existing, err := services.List(ctx, 0, 1)
	if err != nil {
		log.Fatalf("Failed to check service catalog: %v", err)
	}
	if len(existing) > 0 {
		log.Println("Service catalog already seeded, skipping")
		return
	}

	for i := range starterServices {
		svc := starterServices[i]
		svc.IsActive = true
		if err := services.Create(ctx, &svc); err != nil {
			log.Fatalf("Failed to seed service %q: %v", svc.Title, err)
		}
		log.Printf("Seeded service %q", svc.Title)
	}
	log.Println("Seed completed")
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
