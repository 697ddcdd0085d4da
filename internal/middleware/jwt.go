package middleware // declare the middleware package; contains reusable HTTP middleware functions

import (
	"net/http" // HTTP status codes for responses
	"strings"  // string utilities for prefix checking and trimming

	"github.com/labstack/echo/v4" // Echo framework used for defining middleware and handlers

	"github.com/iliyamo/medical-camp-registration/internal/utils" // token parsing helpers
)

// claimsKey is the context key under which verified token claims are stored.
const claimsKey = "claims"

// JWTAuth returns an Echo middleware that validates a Bearer access token
// and injects the verified claims into the request context.  The provided
// secret must match the one used when issuing tokens.  This middleware
// wraps every protected route; handlers and downstream middleware read the
// caller's identity via ClaimEmail or c.Get("claims").
func JWTAuth(secret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		// The returned handler is invoked for each incoming HTTP request.
		return func(c echo.Context) error {
			// Read the Authorization header.  A valid header starts with
			// "Bearer " followed by the JWT.  If it doesn't, respond with
			// 401 Unauthorized without further processing.
			auth := c.Request().Header.Get("Authorization")
			if !strings.HasPrefix(auth, "Bearer ") {
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized access"})
			}
			raw := strings.TrimPrefix(auth, "Bearer ")

			// ParseToken validates signature, algorithm and expiry in one
			// shot.  Every failure mode maps to the same 401.
			claims, err := utils.ParseToken(secret, raw)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized access"})
			}

			// Store the verified claims in the context for handlers and the
			// admin/self gates that compose after this middleware.
			c.Set(claimsKey, claims)
			return next(c)
		}
	}
}
