package handler

import (
	"strconv"

	"github.com/labstack/echo/v4"

	"constructora/internal/errors"
)

// httpError converts a domain error into an echo HTTP error with a coded body.
func httpError(err error) error {
	he := errors.MapErrorToHTTP(err)
	return echo.NewHTTPError(he.StatusCode, he.ToErrorResponse())
}

// pagination reads skip/limit query params, defaulting to the first 100 rows.
func pagination(c echo.Context) (skip, limit int) {
	skip, limit = 0, 100
	if v, err := strconv.Atoi(c.QueryParam("skip")); err == nil && v >= 0 {
		skip = v
	}
	if v, err := strconv.Atoi(c.QueryParam("limit")); err == nil && v > 0 {
		limit = v
	}
	return skip, limit
}
