package handler

import (
	"context"
	"database/sql"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/medical-camp-registration/internal/queue"
	"github.com/iliyamo/medical-camp-registration/internal/repository"
	queue_publisher "github.com/iliyamo/medical-camp-registration/internal/service"
)

// RegistrationStore is the slice of the registration repository the
// lifecycle handlers need.
type RegistrationStore interface {
	Exists(ctx context.Context, email string, campID uint64) (bool, error)
	Create(ctx context.Context, g repository.Registration) (uint64, error)
	ListAll(ctx context.Context) ([]repository.Registration, error)
	ListByEmail(ctx context.Context, email string) ([]repository.Registration, error)
	GetByID(ctx context.Context, id uint64) (repository.Registration, error)
	MarkPaid(ctx context.Context, id uint64) (int64, error)
	Confirm(ctx context.Context, id uint64) (int64, error)
	Delete(ctx context.Context, id uint64) (int64, error)
}

// RegistrationHandler drives the join -> pay -> confirm lifecycle.  Joining
// writes to two stores in sequence: the registration insert and the camp
// counter increment.  The two writes are not one transaction; the unique
// index on (participant_email, camp_id) is what keeps a concurrent
// duplicate join from producing a second row and a double increment.
type RegistrationHandler struct {
	Regs  RegistrationStore
	Camps CampStore

	// PublishConfirmed emits the confirmation event.  Swappable so tests
	// run without a broker.
	PublishConfirmed func(ctx context.Context, ev queue.RegistrationConfirmedEvent) error
}

func NewRegistrationHandler(regs RegistrationStore, camps CampStore) *RegistrationHandler {
	if regs == nil || camps == nil {
		panic("nil store passed to NewRegistrationHandler")
	}
	return &RegistrationHandler{
		Regs:             regs,
		Camps:            camps,
		PublishConfirmed: queue_publisher.PublishRegistrationConfirmed,
	}
}

type joinCampReq struct {
	CampID                 uint64  `json:"campId" validate:"required"`
	ParticipantEmail       string  `json:"participantEmail" validate:"required,email"`
	CampName               string  `json:"campName"`
	CampFees               float64 `json:"campFees" validate:"gte=0"`
	Location               string  `json:"location"`
	HealthcareProfessional string  `json:"healthcareProfessional"`
	ParticipantName        string  `json:"participantName"`
	Age                    uint32  `json:"age"`
	Phone                  string  `json:"phone"`
	Gender                 string  `json:"gender"`
	EmergencyContact       string  `json:"emergencyContact"`
}

// Join handles POST /joinCamp.  Order of operations: duplicate check (no
// writes on conflict), registration insert (Unpaid/Pending), then the camp
// counter increment.  An increment failure after a successful insert leaves
// the counter behind the registration count; the handler reports 500 and
// the registration stands, which is the accepted consistency gap.  The camp
// id is deliberately not checked against the camp store.
func (h *RegistrationHandler) Join(c echo.Context) error {
	var req joinCampReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	joined, err := h.Regs.Exists(ctx, req.ParticipantEmail, req.CampID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	if joined {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "You have already joined this camp"})
	}

	id, err := h.Regs.Create(ctx, repository.Registration{
		CampID:                 req.CampID,
		ParticipantEmail:       req.ParticipantEmail,
		CampName:               req.CampName,
		CampFees:               req.CampFees,
		Location:               req.Location,
		HealthcareProfessional: req.HealthcareProfessional,
		ParticipantName:        req.ParticipantName,
		Age:                    req.Age,
		Phone:                  req.Phone,
		Gender:                 req.Gender,
		EmergencyContact:       req.EmergencyContact,
	})
	if err != nil {
		if errors.Is(err, repository.ErrAlreadyJoined) {
			// Concurrent join lost the race against the unique index.  No
			// row was written, so the counter must not move either.
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "You have already joined this camp"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "join camp failed"})
	}

	if _, err := h.Camps.IncrementParticipantCount(ctx, req.CampID); err != nil {
		log.Printf("joinCamp: registration %d saved but counter increment for camp %d failed: %v", id, req.CampID, err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update participant count failed"})
	}

	return c.JSON(http.StatusOK, echo.Map{"insertedId": id})
}

// ListAll handles GET /regCamps (admin gate applied by the router).
func (h *RegistrationHandler) ListAll(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()

	regs, err := h.Regs.ListAll(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	return c.JSON(http.StatusOK, regs)
}

// ListByEmail handles GET /regCamps/:email.  RequireSelf has already
// matched the path email against the token, so this only reads.
func (h *RegistrationHandler) ListByEmail(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()

	regs, err := h.Regs.ListByEmail(ctx, c.Param("email"))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	return c.JSON(http.StatusOK, regs)
}

// Get handles GET /regCamp/:id with an explicit 404 for missing rows.
func (h *RegistrationHandler) Get(c echo.Context) error {
	id, ok := pathID(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid registration id"})
	}
	ctx, cancel := reqCtx(c)
	defer cancel()

	reg, err := h.Regs.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "registration not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	return c.JSON(http.StatusOK, reg)
}

// MarkPaid handles PATCH /regCamps/:id, flipping payment_status to Paid.
func (h *RegistrationHandler) MarkPaid(c echo.Context) error {
	id, ok := pathID(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid registration id"})
	}
	ctx, cancel := reqCtx(c)
	defer cancel()

	n, err := h.Regs.MarkPaid(ctx, id)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{"modifiedCount": n})
}

// Confirm handles PATCH /regCamp/:id (admin), flipping confirm_status to
// Confirmed and publishing the confirmation event.  Publishing is
// best-effort: a broker failure is logged inside the publisher and does not
// change the response.
func (h *RegistrationHandler) Confirm(c echo.Context) error {
	id, ok := pathID(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid registration id"})
	}
	ctx, cancel := reqCtx(c)
	defer cancel()

	reg, err := h.Regs.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "registration not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}

	n, err := h.Regs.Confirm(ctx, id)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update failed"})
	}

	if h.PublishConfirmed != nil {
		_ = h.PublishConfirmed(ctx, queue.RegistrationConfirmedEvent{
			RegistrationID:   reg.ID,
			CampID:           reg.CampID,
			CampName:         reg.CampName,
			ParticipantEmail: reg.ParticipantEmail,
			ParticipantName:  reg.ParticipantName,
			CampFees:         reg.CampFees,
			PaymentStatus:    reg.PaymentStatus,
			ConfirmedAt:      time.Now().UTC().Format(time.RFC3339),
		})
	}

	return c.JSON(http.StatusOK, echo.Map{"modifiedCount": n})
}

// Cancel handles DELETE /regCamps/:id.  The camp's participant counter is
// not decremented; join and cancel are asymmetric on purpose.
func (h *RegistrationHandler) Cancel(c echo.Context) error {
	id, ok := pathID(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid registration id"})
	}
	ctx, cancel := reqCtx(c)
	defer cancel()

	n, err := h.Regs.Delete(ctx, id)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "delete failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{"deletedCount": n})
}
