package middleware

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/medical-camp-registration/internal/utils"
)

const testSecret = "test-secret"

// fakeRoles is an in-memory RoleLookup.
type fakeRoles struct {
	roles map[string]string
	err   error
}

func (f *fakeRoles) RoleByEmail(_ context.Context, email string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	role, ok := f.roles[email]
	if !ok {
		return "", sql.ErrNoRows
	}
	return role, nil
}

func issue(t *testing.T, email string) string {
	t.Helper()
	token, err := utils.IssueToken(testSecret, map[string]interface{}{"email": email})
	require.NoError(t, err)
	return token
}

// run sends a request through the given middleware chain terminating in a
// 200 handler and returns the recorder.
func run(t *testing.T, target, authHeader string, mws ...echo.MiddlewareFunc) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	h := func(c echo.Context) error { return c.String(http.StatusOK, "ok") }
	e.GET("/probe/:email", h, mws...)
	e.GET("/plain", h, mws...)

	req := httptest.NewRequest(http.MethodGet, target, nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestJWTAuth(t *testing.T) {
	tests := []struct {
		name       string
		authHeader string
		wantStatus int
	}{
		{"valid token", "Bearer " + issueStatic(t), http.StatusOK},
		{"missing header", "", http.StatusUnauthorized},
		{"not bearer", "Basic abc", http.StatusUnauthorized},
		{"garbage token", "Bearer nope", http.StatusUnauthorized},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := run(t, "/plain", tt.authHeader, JWTAuth(testSecret))
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func issueStatic(t *testing.T) string { return issue(t, "alice@example.com") }

func TestJWTAuthRejectsWrongSecret(t *testing.T) {
	token, err := utils.IssueToken("another-secret", map[string]interface{}{"email": "a@b.com"})
	require.NoError(t, err)
	rec := run(t, "/plain", "Bearer "+token, JWTAuth(testSecret))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRequireAdmin(t *testing.T) {
	roles := &fakeRoles{roles: map[string]string{
		"admin@example.com": "admin",
		"alice@example.com": "participant",
	}}
	tests := []struct {
		name       string
		email      string
		lookup     RoleLookup
		wantStatus int
	}{
		{"admin passes", "admin@example.com", roles, http.StatusOK},
		{"participant forbidden", "alice@example.com", roles, http.StatusForbidden},
		{"unknown user forbidden", "ghost@example.com", roles, http.StatusForbidden},
		{"store failure forbidden", "admin@example.com", &fakeRoles{err: errors.New("down")}, http.StatusForbidden},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := run(t, "/plain", "Bearer "+issue(t, tt.email),
				JWTAuth(testSecret), RequireAdmin(tt.lookup))
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestRequireAdminWithoutAuth(t *testing.T) {
	// RequireAdmin alone (no claims in context) must not grant access.
	rec := run(t, "/plain", "", RequireAdmin(&fakeRoles{}))
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestRequireSelf(t *testing.T) {
	tests := []struct {
		name       string
		tokenEmail string
		target     string
		wantStatus int
	}{
		{"own records", "alice@example.com", "/probe/alice@example.com", http.StatusOK},
		{"someone else's records", "bob@example.com", "/probe/alice@example.com", http.StatusForbidden},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := run(t, tt.target, "Bearer "+issue(t, tt.tokenEmail),
				JWTAuth(testSecret), RequireSelf("email"))
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestClaimEmailUnauthenticated(t *testing.T) {
	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
	assert.Equal(t, "", ClaimEmail(c))
}
