package handler

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/medical-camp-registration/internal/payments"
	"github.com/iliyamo/medical-camp-registration/internal/repository"
)

// PaymentStore is the slice of the payment repository the handlers need.
type PaymentStore interface {
	Create(ctx context.Context, p repository.Payment) (uint64, error)
	ListByEmail(ctx context.Context, email string) ([]repository.Payment, error)
}

// paymentRegStore is the registration side of payment recording.
type paymentRegStore interface {
	MarkPaidByParticipant(ctx context.Context, email string, campID uint64) (int64, error)
}

// PaymentHandler serves intent creation and payment recording.  The
// gateway authorizes; this handler only asks for a client secret and later
// persists the result of a completed authorization.
type PaymentHandler struct {
	Payments PaymentStore
	Regs     paymentRegStore
	Provider payments.Provider
}

func NewPaymentHandler(store PaymentStore, regs paymentRegStore, provider payments.Provider) *PaymentHandler {
	if store == nil || regs == nil || provider == nil {
		panic("nil dependency passed to NewPaymentHandler")
	}
	return &PaymentHandler{Payments: store, Regs: regs, Provider: provider}
}

type intentReq struct {
	Fees float64 `json:"fees" validate:"gt=0"`
}

type recordPaymentReq struct {
	Email         string  `json:"email" validate:"required,email"`
	CampID        uint64  `json:"campId" validate:"required"`
	Amount        float64 `json:"amount" validate:"gte=0"`
	TransactionID string  `json:"transactionId"`
}

// CreateIntent handles POST /create-payment-intent.  The decimal fee is
// scaled to integer cents by truncation; fees are non-negative so this is
// a floor, which is what the gateway expects for minor units.
func (h *PaymentHandler) CreateIntent(c echo.Context) error {
	var req intentReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	amountCents := int64(req.Fees * 100)

	secret, err := h.Provider.CreateIntent(c.Request().Context(), amountCents, "usd")
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create payment intent failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{"clientSecret": secret})
}

// Record handles POST /payments, invoked after the gateway authorization
// succeeded.  It appends the payment record and marks the matching
// registration Paid.  There is no refund path; a mis-recorded payment is
// corrected manually.
func (h *PaymentHandler) Record(c echo.Context) error {
	var req recordPaymentReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	id, err := h.Payments.Create(ctx, repository.Payment{
		Email:         req.Email,
		CampID:        req.CampID,
		Amount:        req.Amount,
		TransactionID: req.TransactionID,
	})
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "record payment failed"})
	}

	if _, err := h.Regs.MarkPaidByParticipant(ctx, req.Email, req.CampID); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update registration failed"})
	}

	return c.JSON(http.StatusOK, echo.Map{"insertedId": id})
}

// ListByEmail handles GET /payments/:email behind RequireSelf.
func (h *PaymentHandler) ListByEmail(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()

	list, err := h.Payments.ListByEmail(ctx, c.Param("email"))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	return c.JSON(http.StatusOK, list)
}
