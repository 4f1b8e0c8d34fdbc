package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"constructora/internal/auth"
	"constructora/internal/config"
	"constructora/internal/handler"
)

const (
	apiName    = "Construction Company API"
	apiVersion = "1.0.0"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	gate *auth.Gate,
	authHandler *handler.AuthHandler,
	projectHandler *handler.ProjectHandler,
	serviceHandler *handler.ServiceHandler,
	quoteHandler *handler.QuoteHandler,
	uploadRoot string,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	// Add validator
	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/", func(c echo.Context) error {
		return c.JSON(http.StatusOK, echo.Map{
			"message":  "Welcome to " + apiName,
			"version":  apiVersion,
			"docs_url": "/swagger/index.html",
		})
	})

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// Uploaded media is served statically under server-generated names.
	e.Static("/uploads", uploadRoot)

	api := e.Group("/api/v1")

	authed := gate.Middleware()
	admin := []echo.MiddlewareFunc{authed, gate.RequireAdmin}

	// Auth
	api.POST("/auth/login", authHandler.Login)
	api.POST("/auth/register", authHandler.Register)

	// Projects: reads are public, mutations are admin-only.
	api.GET("/projects", projectHandler.List)
	api.GET("/projects/:id", projectHandler.Get)
	api.POST("/projects", projectHandler.Create, admin...)
	api.PUT("/projects/:id", projectHandler.Update, admin...)
	api.DELETE("/projects/:id", projectHandler.Delete, admin...)
	api.POST("/projects/:id/media", projectHandler.UploadMedia, admin...)
	api.POST("/projects/:id/media/batch", projectHandler.UploadMediaBatch, admin...)
	api.DELETE("/projects/:id/media/:mediaID", projectHandler.DeleteMedia, admin...)

	// Service catalog
	api.GET("/services", serviceHandler.List)
	api.POST("/services", serviceHandler.Create, admin...)
	api.PUT("/services/:id", serviceHandler.Update, admin...)
	api.DELETE("/services/:id", serviceHandler.Delete, admin...)

	// Quotes: customers submit, admins manage.
	api.POST("/quotes", quoteHandler.Create)
	api.GET("/quotes", quoteHandler.List, admin...)
	api.PUT("/quotes/:id", quoteHandler.UpdateStatus, admin...)
	api.DELETE("/quotes/:id", quoteHandler.Delete, admin...)
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
