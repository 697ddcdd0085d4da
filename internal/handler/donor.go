package handler

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/medical-camp-registration/internal/repository"
)

// DonorStore is the slice of the donor repository the handlers need.
type DonorStore interface {
	Create(ctx context.Context, d repository.BloodDonor) (uint64, error)
	List(ctx context.Context) ([]repository.BloodDonor, error)
}

// DonorHandler serves the blood-donor signup endpoints.
type DonorHandler struct {
	Donors DonorStore
}

func NewDonorHandler(donors DonorStore) *DonorHandler {
	if donors == nil {
		panic("nil store passed to NewDonorHandler")
	}
	return &DonorHandler{Donors: donors}
}

type createDonorReq struct {
	Name       string `json:"name" validate:"required"`
	Email      string `json:"email" validate:"omitempty,email"`
	BloodGroup string `json:"bloodGroup" validate:"required"`
	Phone      string `json:"phone"`
	Location   string `json:"location"`
}

// List handles GET /donate.  Sits behind the Redis response cache.
func (h *DonorHandler) List(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()

	donors, err := h.Donors.List(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	return c.JSON(http.StatusOK, donors)
}

// Create handles POST /donate.
func (h *DonorHandler) Create(c echo.Context) error {
	var req createDonorReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	id, err := h.Donors.Create(ctx, repository.BloodDonor{
		Name:       req.Name,
		Email:      req.Email,
		BloodGroup: req.BloodGroup,
		Phone:      req.Phone,
		Location:   req.Location,
	})
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create donor failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{"insertedId": id})
}
