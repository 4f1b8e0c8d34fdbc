package main

import (
	"log"
	"net/http"

	_ "constructora/docs" // swagger docs

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"constructora/internal/auth"
	"constructora/internal/cache"
	"constructora/internal/config"
	"constructora/internal/db"
	"constructora/internal/handler"
	"constructora/internal/model"
	"constructora/internal/repository"
	"constructora/internal/router"
	"constructora/internal/service"
	"constructora/internal/storage"
)

// @title Construction Company API
// @version 1.0
// @description Content API for a construction company: portfolio projects with media, service catalog and quote requests, with JWT authentication.
// @host localhost:8080
// @BasePath /api/v1
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	cfg := config.Load()

	e := echo.New()
	e.Use(middleware.RequestID())

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	// Run migrations for all models
	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Project{},
		&model.ProjectMedia{},
		&model.Service{},
		&model.Quote{},
	); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	mediaStore, err := storage.NewDiskStore(cfg.UploadDir)
	if err != nil {
		log.Fatalf("media store init: %v", err)
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(gormDB)
	projectRepo := repository.NewProjectRepository(gormDB)
	mediaRepo := repository.NewProjectMediaRepository(gormDB)
	serviceRepo := repository.NewServiceRepository(gormDB)
	quoteRepo := repository.NewQuoteRepository(gormDB)

	// Initialize auth components
	tokenService := auth.NewTokenService(cfg.JWTSecret, cfg.TokenTTL)
	gate := auth.NewGate(tokenService, userRepo)

	// Initialize services
	authService := service.NewAuthService(userRepo, tokenService)
	uploadValidator := service.NewUploadValidator(cfg.UploadAllowedMimes, cfg.UploadMaxBytes)
	projectService := service.NewProjectService(projectRepo, mediaRepo, mediaStore, uploadValidator, cacheClient)
	catalogService := service.NewCatalogService(serviceRepo, cacheClient)
	quoteService := service.NewQuoteService(quoteRepo)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService)
	projectHandler := handler.NewProjectHandler(projectService)
	serviceHandler := handler.NewServiceHandler(catalogService)
	quoteHandler := handler.NewQuoteHandler(quoteService)

	// Register routes
	router.Register(
		e,
		cfg,
		gate,
		authHandler,
		projectHandler,
		serviceHandler,
		quoteHandler,
		mediaStore.Root(),
	)

	if cfg.SwaggerHost != "" {
		log.Printf("Swagger documentation available at: %s/swagger/index.html", cfg.SwaggerHost)
	} else {
		log.Printf("Swagger documentation available at: http://localhost:%s/swagger/index.html", cfg.ServerPort)
	}

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}
