package handler

import (
	"net/http" // HTTP status codes
	"strings"  // email normalization

	"github.com/labstack/echo/v4" // Echo framework for HTTP routing

	"github.com/iliyamo/medical-camp-registration/internal/utils" // token issuing
)

// AuthHandler issues access tokens.  There is no credential check here:
// identity is asserted by the client's upstream sign-in flow and the token
// merely makes the claimed identity tamper-proof for the 24h it lives.
// Trust decisions (admin or not) are deferred to the user store on each
// protected request, never embedded in the token.
type AuthHandler struct {
	Secret string
}

func NewAuthHandler(secret string) *AuthHandler { return &AuthHandler{Secret: secret} }

// IssueToken handles POST /jwt.  The request body is an arbitrary claims
// object that must at least carry an email; the signed token embedding
// those claims is returned as {"token": ...}.
func (h *AuthHandler) IssueToken(c echo.Context) error {
	claims := map[string]interface{}{}
	if err := c.Bind(&claims); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	email, _ := claims["email"].(string)
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "email required"})
	}
	claims["email"] = email

	token, err := utils.IssueToken(h.Secret, claims)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "issue token failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{"token": token})
}
