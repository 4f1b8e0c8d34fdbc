package auth

import (
	"errors"
	"net/http"

	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"

	"constructora/internal/model"
	"constructora/internal/repository"
)

const userContextKey = "auth_user"

var errUserDisabled = errors.New("user missing or disabled")

// Gate authenticates requests: it verifies the bearer token, loads the user
// behind it and enforces active/admin constraints.
type Gate struct {
	tokens *TokenService
	users  repository.UserRepository
}

// NewGate creates an auth gate.
func NewGate(tokens *TokenService, users repository.UserRepository) *Gate {
	return &Gate{tokens: tokens, users: users}
}

// Middleware verifies the Authorization bearer token, resolves the user and
// stores it in the request context. Every failure mode (bad token, unknown
// subject, inactive user) collapses into the same 401 so callers cannot
// probe which one occurred.
func (g *Gate) Middleware() echo.MiddlewareFunc {
	return echojwt.WithConfig(echojwt.Config{
		ContextKey: userContextKey,
		ParseTokenFunc: func(c echo.Context, token string) (interface{}, error) {
			subject, err := g.tokens.Verify(token)
			if err != nil {
				return nil, err
			}
			user, err := g.users.FindByID(c.Request().Context(), subject)
			if err != nil {
				return nil, errUserDisabled
			}
			if !user.IsActive {
				return nil, errUserDisabled
			}
			return user, nil
		},
		ErrorHandler: func(c echo.Context, err error) error {
			return echo.NewHTTPError(http.StatusUnauthorized, "could not validate credentials")
		},
	})
}

// RequireAdmin rejects authenticated non-admin users with 403.
func (g *Gate) RequireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		user := CurrentUser(c)
		if user == nil {
			return echo.NewHTTPError(http.StatusUnauthorized, "could not validate credentials")
		}
		if !user.IsAdmin {
			return echo.NewHTTPError(http.StatusForbidden, "admin privileges required")
		}
		return next(c)
	}
}

// CurrentUser returns the authenticated user stored by Middleware, or nil.
func CurrentUser(c echo.Context) *model.User {
	user, _ := c.Get(userContextKey).(*model.User)
	return user
}
