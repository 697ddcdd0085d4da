package middleware // middleware provides shared request processing for handlers

import (
	"context"  // context carries the request deadline into the store lookup
	"net/http" // http package defines standard HTTP status codes

	"github.com/labstack/echo/v4" // echo provides middleware chaining and context
)

// RoleLookup resolves the stored role for an email.  The user repository
// satisfies this; tests substitute an in-memory fake.
type RoleLookup interface {
	RoleByEmail(ctx context.Context, email string) (string, error)
}

// RequireAdmin returns a middleware that enforces the admin role.  The role
// is looked up in the user store on every request rather than read from the
// token, so revoking admin takes effect immediately without re-issuing
// tokens.  Composes after JWTAuth; a request with no user record, a lookup
// failure, or a non-admin role is rejected with 403 Forbidden.
func RequireAdmin(users RoleLookup) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			email := ClaimEmail(c)
			if email == "" {
				return c.JSON(http.StatusForbidden, echo.Map{"error": "forbidden access"})
			}
			role, err := users.RoleByEmail(c.Request().Context(), email)
			if err != nil || role != "admin" {
				// Missing record and store failure both read as "not an
				// admin"; neither grants access.
				return c.JSON(http.StatusForbidden, echo.Map{"error": "forbidden access"})
			}
			return next(c)
		}
	}
}
