package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"constructora/internal/model"
	"constructora/internal/service"
)

// ServiceHandler handles service catalog endpoints.
type ServiceHandler struct {
	catalog service.CatalogService
}

// NewServiceHandler creates a new service catalog handler.
func NewServiceHandler(catalog service.CatalogService) *ServiceHandler {
	return &ServiceHandler{catalog: catalog}
}

// ServiceRequest represents a catalog service create/update payload.
type ServiceRequest struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description" validate:"required"`
	Details     string `json:"details" validate:"required"`
	ImageURL    string `json:"image_url"`
	IsActive    *bool  `json:"is_active"`
}

func (r *ServiceRequest) toModel() *model.Service {
	active := true
	if r.IsActive != nil {
		active = *r.IsActive
	}
	return &model.Service{
		Title:       r.Title,
		Description: r.Description,
		Details:     r.Details,
		ImageURL:    r.ImageURL,
		IsActive:    active,
	}
}

// List godoc
// @Summary List catalog services
// @Tags services
// @Produce json
// @Param skip query int false "Rows to skip"
// @Param limit query int false "Max rows"
// @Success 200 {array} model.Service
// @Router /services [get]
func (h *ServiceHandler) List(c echo.Context) error {
	skip, limit := pagination(c)
	services, err := h.catalog.ListServices(c.Request().Context(), skip, limit)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, services)
}

// Create godoc
// @Summary Create catalog service
// @Tags services
// @Accept json
// @Produce json
// @Param request body ServiceRequest true "Service payload"
// @Success 201 {object} model.Service
// @Failure 400 {object} errors.ErrorResponse
// @Security BearerAuth
// @Router /services [post]
func (h *ServiceHandler) Create(c echo.Context) error {
	var req ServiceRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	created, err := h.catalog.CreateService(c.Request().Context(), req.toModel())
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, created)
}

// Update godoc
// @Summary Update catalog service
// @Tags services
// @Accept json
// @Produce json
// @Param id path string true "Service ID"
// @Param request body ServiceRequest true "Service payload"
// @Success 200 {object} model.Service
// @Failure 404 {object} errors.ErrorResponse
// @Security BearerAuth
// @Router /services/{id} [put]
func (h *ServiceHandler) Update(c echo.Context) error {
	var req ServiceRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	updated, err := h.catalog.UpdateService(c.Request().Context(), c.Param("id"), req.toModel())
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, updated)
}

// Delete godoc
// @Summary Delete catalog service
// @Tags services
// @Produce json
// @Param id path string true "Service ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} errors.ErrorResponse
// @Security BearerAuth
// @Router /services/{id} [delete]
func (h *ServiceHandler) Delete(c echo.Context) error {
	if err := h.catalog.DeleteService(c.Request().Context(), c.Param("id")); err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "success"})
}
