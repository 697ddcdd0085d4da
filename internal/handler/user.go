package handler

import (
	"context"      // context types for the store interface
	"database/sql" // sentinel errors returned from the repository
	"errors"       // errors.Is comparisons
	"net/http"     // HTTP status codes
	"strings"      // email normalization

	"github.com/labstack/echo/v4" // Echo web framework

	"github.com/iliyamo/medical-camp-registration/internal/repository" // repository layer
)

// UserStore is the slice of the user repository the handlers need.  The
// concrete *repository.UserRepo satisfies it; tests plug in an in-memory
// fake.
type UserStore interface {
	Create(ctx context.Context, email, name, photoURL, role string) (uint64, error)
	GetByEmail(ctx context.Context, email string) (repository.User, error)
	RoleByEmail(ctx context.Context, email string) (string, error)
	Update(ctx context.Context, id uint64, upd repository.UserUpdate) (int64, error)
}

// UserHandler serves the user account endpoints.
type UserHandler struct {
	Users UserStore
}

func NewUserHandler(users UserStore) *UserHandler {
	if users == nil {
		panic("nil store passed to NewUserHandler")
	}
	return &UserHandler{Users: users}
}

type createUserReq struct {
	Email    string `json:"email" validate:"required,email"`
	Name     string `json:"name"`
	PhotoURL string `json:"photoURL"`
}

// GetUser handles GET /users/:email.  An absent user answers 200 with a
// null body rather than 404: clients probe this endpoint on first sign-in
// to decide whether to create the account.
func (h *UserHandler) GetUser(c echo.Context) error {
	email := strings.ToLower(strings.TrimSpace(c.Param("email")))
	ctx, cancel := reqCtx(c)
	defer cancel()

	u, err := h.Users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return c.JSON(http.StatusOK, nil)
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	return c.JSON(http.StatusOK, u)
}

// IsAdmin handles GET /users/admin/:email.  The route composes JWTAuth,
// RequireAdmin and RequireSelf, so reaching this handler already proves
// the caller is asking about their own admin standing.
func (h *UserHandler) IsAdmin(c echo.Context) error {
	email := strings.ToLower(strings.TrimSpace(c.Param("email")))
	ctx, cancel := reqCtx(c)
	defer cancel()

	role, err := h.Users.RoleByEmail(ctx, email)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{"admin": role == "admin"})
}

// CreateUser handles POST /users.  Creation only happens when the email is
// absent; a second create for the same email leaves the store unchanged
// and reports no new identifier.
func (h *UserHandler) CreateUser(c echo.Context) error {
	var req createUserReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	id, err := h.Users.Create(ctx, req.Email, req.Name, req.PhotoURL, "participant")
	if err != nil {
		if errors.Is(err, repository.ErrEmailExists) {
			return c.JSON(http.StatusOK, echo.Map{"message": "User already exists", "insertedId": nil})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create user failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{"insertedId": id})
}

// UpdateUser handles PATCH /users/:id, applying only the provided fields.
func (h *UserHandler) UpdateUser(c echo.Context) error {
	id, ok := pathID(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid user id"})
	}
	var upd repository.UserUpdate
	if err := c.Bind(&upd); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	n, err := h.Users.Update(ctx, id, upd)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update user failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{"modifiedCount": n})
}
