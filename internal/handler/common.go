package handler // handler defines http handlers

import (
	"context" // context builds bounded contexts around store calls
	"net/http"
	"strconv" // strconv converts path parameters to numeric ids
	"time"    // time provides the store-call timeout

	"github.com/go-playground/validator/v10" // request DTO validation
	"github.com/labstack/echo/v4"            // echo defines request context types
)

// dbTimeout bounds every store call issued from a handler.  No operation
// blocks longer than the underlying store call.
const dbTimeout = 5 * time.Second

// reqCtx derives a bounded context from the request.
func reqCtx(c echo.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(c.Request().Context(), dbTimeout)
}

// pathID parses the :id path parameter as a positive integer.
func pathID(c echo.Context) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	return id, err == nil && id > 0
}

// Validator adapts go-playground/validator to Echo's Validator interface.
// Handlers run c.Validate on bound DTOs; a failed validation becomes a 400
// before any store call happens.
type Validator struct {
	validate *validator.Validate
}

func NewValidator() *Validator { return &Validator{validate: validator.New()} }

func (v *Validator) Validate(i interface{}) error {
	if err := v.validate.Struct(i); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return nil
}
