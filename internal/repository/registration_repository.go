package repository

import (
	"context"
	"database/sql"
	"strings"
	"time"
)

// Registration mirrors the 'registrations' table.  One row per
// (participant_email, camp_id) pair, enforced by uq_participant_camp.
// Camp details are denormalized onto the row at join time so a deleted
// camp does not blank out a participant's history.
type Registration struct {
	ID                     uint64    `json:"id"`
	CampID                 uint64    `json:"campId"`
	ParticipantEmail       string    `json:"participantEmail"`
	CampName               string    `json:"campName"`
	CampFees               float64   `json:"campFees"`
	Location               string    `json:"location"`
	HealthcareProfessional string    `json:"healthcareProfessional"`
	ParticipantName        string    `json:"participantName"`
	Age                    uint32    `json:"age"`
	Phone                  string    `json:"phone"`
	Gender                 string    `json:"gender"`
	EmergencyContact       string    `json:"emergencyContact"`
	PaymentStatus          string    `json:"paymentStatus"`
	ConfirmStatus          string    `json:"confirmStatus"`
	CreatedAt              time.Time `json:"createdAt"`
}

type RegistrationRepo struct{ DB *sql.DB }

func NewRegistrationRepo(db *sql.DB) *RegistrationRepo { return &RegistrationRepo{DB: db} }

const registrationColumns = "id,camp_id,participant_email,camp_name,camp_fees,location," +
	"healthcare_professional,participant_name,age,phone,gender,emergency_contact," +
	"payment_status,confirm_status,created_at"

func scanRegistration(row interface{ Scan(...interface{}) error }) (Registration, error) {
	var g Registration
	err := row.Scan(&g.ID, &g.CampID, &g.ParticipantEmail, &g.CampName, &g.CampFees,
		&g.Location, &g.HealthcareProfessional, &g.ParticipantName, &g.Age,
		&g.Phone, &g.Gender, &g.EmergencyContact, &g.PaymentStatus,
		&g.ConfirmStatus, &g.CreatedAt)
	return g, err
}

// Exists reports whether the (participant, camp) pair already has a
// registration.  The unique index remains the authority; this read only
// serves the common-path error message before any write happens.
func (r *RegistrationRepo) Exists(ctx context.Context, email string, campID uint64) (bool, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	var one int
	err := r.DB.QueryRowContext(ctx,
		"SELECT 1 FROM registrations WHERE participant_email=? AND camp_id=? LIMIT 1",
		email, campID).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// Create inserts a registration with Unpaid/Pending statuses and returns
// its ID.  A concurrent duplicate that slipped past Exists hits the unique
// index and maps to ErrAlreadyJoined, with no row written.
func (r *RegistrationRepo) Create(ctx context.Context, g Registration) (uint64, error) {
	email := strings.ToLower(strings.TrimSpace(g.ParticipantEmail))
	res, err := r.DB.ExecContext(ctx,
		`INSERT INTO registrations
		 (camp_id, participant_email, camp_name, camp_fees, location, healthcare_professional,
		  participant_name, age, phone, gender, emergency_contact)
		 VALUES (?,?,?,?,?,?,?,?,?,?,?)`,
		g.CampID, email, g.CampName, g.CampFees, g.Location, g.HealthcareProfessional,
		g.ParticipantName, g.Age, g.Phone, g.Gender, g.EmergencyContact)
	if err != nil {
		if isDuplicate(err) {
			return 0, ErrAlreadyJoined
		}
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}

// ListAll returns every registration, newest first.  Admin-only surface.
func (r *RegistrationRepo) ListAll(ctx context.Context) ([]Registration, error) {
	return r.list(ctx, "SELECT "+registrationColumns+" FROM registrations ORDER BY id DESC")
}

// ListByEmail returns the registrations belonging to one participant.
func (r *RegistrationRepo) ListByEmail(ctx context.Context, email string) ([]Registration, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	return r.list(ctx,
		"SELECT "+registrationColumns+" FROM registrations WHERE participant_email=? ORDER BY id DESC",
		email)
}

func (r *RegistrationRepo) list(ctx context.Context, query string, args ...interface{}) ([]Registration, error) {
	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	regs := []Registration{}
	for rows.Next() {
		g, err := scanRegistration(rows)
		if err != nil {
			return nil, err
		}
		regs = append(regs, g)
	}
	return regs, rows.Err()
}

// GetByID fetches a registration by id; sql.ErrNoRows when absent.
func (r *RegistrationRepo) GetByID(ctx context.Context, id uint64) (Registration, error) {
	return scanRegistration(r.DB.QueryRowContext(ctx,
		"SELECT "+registrationColumns+" FROM registrations WHERE id=? LIMIT 1", id))
}

// MarkPaid flips payment_status to Paid for one registration.  There is no
// reverse transition; re-marking a Paid row matches but changes nothing.
func (r *RegistrationRepo) MarkPaid(ctx context.Context, id uint64) (int64, error) {
	res, err := r.DB.ExecContext(ctx,
		"UPDATE registrations SET payment_status='Paid' WHERE id=?", id)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

// MarkPaidByParticipant flips payment_status by (email, camp) pair.  Used by
// payment recording, which identifies the registration the way the gateway
// callback does.
func (r *RegistrationRepo) MarkPaidByParticipant(ctx context.Context, email string, campID uint64) (int64, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	res, err := r.DB.ExecContext(ctx,
		"UPDATE registrations SET payment_status='Paid' WHERE participant_email=? AND camp_id=?",
		email, campID)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

// Confirm flips confirm_status to Confirmed.  No transition back to Pending
// is exposed anywhere.
func (r *RegistrationRepo) Confirm(ctx context.Context, id uint64) (int64, error) {
	res, err := r.DB.ExecContext(ctx,
		"UPDATE registrations SET confirm_status='Confirmed' WHERE id=?", id)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

// Delete cancels a registration.  The camp's participant counter is left
// untouched on purpose; see the counter note on Camp.
func (r *RegistrationRepo) Delete(ctx context.Context, id uint64) (int64, error) {
	res, err := r.DB.ExecContext(ctx, "DELETE FROM registrations WHERE id=?", id)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
