package handler

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/medical-camp-registration/internal/repository"
)

// CampStore is the slice of the camp repository the handlers need.
type CampStore interface {
	Create(ctx context.Context, c repository.Camp) (uint64, error)
	List(ctx context.Context) ([]repository.Camp, error)
	GetByID(ctx context.Context, id uint64) (repository.Camp, error)
	Update(ctx context.Context, id uint64, upd repository.CampUpdate) (int64, error)
	Delete(ctx context.Context, id uint64) (int64, error)
	IncrementParticipantCount(ctx context.Context, id uint64) (int64, error)
}

// CampHandler serves camp listing and admin camp management.
type CampHandler struct {
	Camps CampStore
}

func NewCampHandler(camps CampStore) *CampHandler {
	if camps == nil {
		panic("nil store passed to NewCampHandler")
	}
	return &CampHandler{Camps: camps}
}

type createCampReq struct {
	Title                  string     `json:"title" validate:"required"`
	Fees                   float64    `json:"fees" validate:"gte=0"`
	DateTime               *time.Time `json:"dateTime"`
	Location               string     `json:"location"`
	HealthcareProfessional string     `json:"healthcareProfessional"`
	Description            string     `json:"description"`
	ImageURL               string     `json:"imageURL"`
}

// ListCamps handles GET /camps.  Sits behind the Redis response cache.
func (h *CampHandler) ListCamps(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()

	camps, err := h.Camps.List(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	return c.JSON(http.StatusOK, camps)
}

// CreateCamp handles POST /camps.  The participant counter always starts
// at zero regardless of what the client sends.
func (h *CampHandler) CreateCamp(c echo.Context) error {
	var req createCampReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	id, err := h.Camps.Create(ctx, repository.Camp{
		Title:                  req.Title,
		Fees:                   req.Fees,
		DateTime:               req.DateTime,
		Location:               req.Location,
		HealthcareProfessional: req.HealthcareProfessional,
		Description:            req.Description,
		ImageURL:               req.ImageURL,
	})
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create camp failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{"insertedId": id})
}

// GetCamp handles GET /camps/:id with an explicit 404 for missing camps.
func (h *CampHandler) GetCamp(c echo.Context) error {
	id, ok := pathID(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid camp id"})
	}
	ctx, cancel := reqCtx(c)
	defer cancel()

	camp, err := h.Camps.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "camp not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	return c.JSON(http.StatusOK, camp)
}

// UpdateCamp handles PATCH /camps/:id (admin gate applied by the router).
func (h *CampHandler) UpdateCamp(c echo.Context) error {
	id, ok := pathID(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid camp id"})
	}
	var upd repository.CampUpdate
	if err := c.Bind(&upd); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	n, err := h.Camps.Update(ctx, id, upd)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update camp failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{"modifiedCount": n})
}

// DeleteCamp handles DELETE /camps/:id (admin).  Registrations referencing
// the camp stay behind as orphans; the platform accepts that.
func (h *CampHandler) DeleteCamp(c echo.Context) error {
	id, ok := pathID(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid camp id"})
	}
	ctx, cancel := reqCtx(c)
	defer cancel()

	n, err := h.Camps.Delete(ctx, id)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "delete camp failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{"deletedCount": n})
}
