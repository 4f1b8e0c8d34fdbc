package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"constructora/internal/model"
	"constructora/internal/service"
)

// QuoteHandler handles quote request endpoints.
type QuoteHandler struct {
	quotes service.QuoteService
}

// NewQuoteHandler creates a new quote handler.
func NewQuoteHandler(quotes service.QuoteService) *QuoteHandler {
	return &QuoteHandler{quotes: quotes}
}

// QuoteRequest represents a customer quote request payload.
type QuoteRequest struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Phone   string `json:"phone" validate:"required"`
	Service string `json:"service" validate:"required"`
	Message string `json:"message" validate:"required"`
}

// QuoteStatusRequest represents a quote status transition.
type QuoteStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// Create godoc
// @Summary Submit a quote request
// @Tags quotes
// @Accept json
// @Produce json
// @Param request body QuoteRequest true "Quote payload"
// @Success 201 {object} model.Quote
// @Failure 400 {object} errors.ErrorResponse
// @Router /quotes [post]
func (h *QuoteHandler) Create(c echo.Context) error {
	var req QuoteRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	quote, err := h.quotes.CreateQuote(c.Request().Context(), &model.Quote{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Service: req.Service,
		Message: req.Message,
	})
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, quote)
}

// List godoc
// @Summary List quote requests
// @Tags quotes
// @Produce json
// @Param skip query int false "Rows to skip"
// @Param limit query int false "Max rows"
// @Success 200 {array} model.Quote
// @Security BearerAuth
// @Router /quotes [get]
func (h *QuoteHandler) List(c echo.Context) error {
	skip, limit := pagination(c)
	quotes, err := h.quotes.ListQuotes(c.Request().Context(), skip, limit)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, quotes)
}

// UpdateStatus godoc
// @Summary Update quote status
// @Tags quotes
// @Accept json
// @Produce json
// @Param id path string true "Quote ID"
// @Param request body QuoteStatusRequest true "New status"
// @Success 200 {object} model.Quote
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Security BearerAuth
// @Router /quotes/{id} [put]
func (h *QuoteHandler) UpdateStatus(c echo.Context) error {
	var req QuoteStatusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	quote, err := h.quotes.UpdateQuoteStatus(c.Request().Context(), c.Param("id"), req.Status)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, quote)
}

// Delete godoc
// @Summary Delete quote request
// @Tags quotes
// @Produce json
// @Param id path string true "Quote ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} errors.ErrorResponse
// @Security BearerAuth
// @Router /quotes/{id} [delete]
func (h *QuoteHandler) Delete(c echo.Context) error {
	if err := h.quotes.DeleteQuote(c.Request().Context(), c.Param("id")); err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "success"})
}
