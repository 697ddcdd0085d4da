package middleware

// identity.go defines helpers shared across middleware files plus the
// RequireSelf gate.  ClaimEmail pulls the email claim out of the verified
// token stored in the Echo context by JWTAuth; it returns an empty string
// when no authenticated identity is present.

import (
	"net/http"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

// ClaimEmail extracts the email claim from the verified token in context.
// It returns "" when the request is unauthenticated or the claim is absent.
func ClaimEmail(c echo.Context) string {
	v := c.Get(claimsKey)
	if v == nil {
		return ""
	}
	if cl, ok := v.(jwt.MapClaims); ok {
		if email, ok := cl["email"].(string); ok {
			return email
		}
	}
	return ""
}

// RequireSelf returns a middleware that compares the verified token's email
// claim against the named path parameter.  A valid token belonging to a
// different identity is rejected with 403, which keeps one participant from
// reading another's registrations or payments.  Composes after JWTAuth.
func RequireSelf(param string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			email := ClaimEmail(c)
			if email == "" || email != c.Param(param) {
				return c.JSON(http.StatusForbidden, echo.Map{"error": "forbidden access"})
			}
			return next(c)
		}
	}
}
