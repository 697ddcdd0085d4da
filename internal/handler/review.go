package handler

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/medical-camp-registration/internal/repository"
)

// ReviewStore is the slice of the review repository the handlers need.
type ReviewStore interface {
	Create(ctx context.Context, v repository.Review) (uint64, error)
	List(ctx context.Context) ([]repository.Review, error)
}

// ReviewHandler serves the append-only review endpoints.
type ReviewHandler struct {
	Reviews ReviewStore
}

func NewReviewHandler(reviews ReviewStore) *ReviewHandler {
	if reviews == nil {
		panic("nil store passed to NewReviewHandler")
	}
	return &ReviewHandler{Reviews: reviews}
}

type createReviewReq struct {
	Name    string `json:"name"`
	Email   string `json:"email" validate:"omitempty,email"`
	Rating  uint8  `json:"rating" validate:"lte=5"`
	Comment string `json:"comment"`
}

// List handles GET /reviews.  Sits behind the Redis response cache.
func (h *ReviewHandler) List(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()

	reviews, err := h.Reviews.List(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	return c.JSON(http.StatusOK, reviews)
}

// Create handles POST /reviews.
func (h *ReviewHandler) Create(c echo.Context) error {
	var req createReviewReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	id, err := h.Reviews.Create(ctx, repository.Review{
		Name:    req.Name,
		Email:   req.Email,
		Rating:  req.Rating,
		Comment: req.Comment,
	})
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create review failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{"insertedId": id})
}
