package repository

import (
	"context"
	"database/sql"
	"strings"
	"time"
)

// Payment mirrors the append-only 'payments' table.  Rows are written once
// per completed gateway authorization and never mutated; a mis-recorded
// payment is corrected manually, not through the API.
type Payment struct {
	ID            uint64    `json:"id"`
	Email         string    `json:"email"`
	CampID        uint64    `json:"campId"`
	Amount        float64   `json:"amount"`
	TransactionID string    `json:"transactionId"`
	PaidAt        time.Time `json:"paidAt"`
}

type PaymentRepo struct{ DB *sql.DB }

func NewPaymentRepo(db *sql.DB) *PaymentRepo { return &PaymentRepo{DB: db} }

// Create appends a payment record and returns its ID.
func (r *PaymentRepo) Create(ctx context.Context, p Payment) (uint64, error) {
	email := strings.ToLower(strings.TrimSpace(p.Email))
	res, err := r.DB.ExecContext(ctx,
		"INSERT INTO payments (email, camp_id, amount, transaction_id) VALUES (?,?,?,?)",
		email, p.CampID, p.Amount, p.TransactionID)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}

// ListByEmail returns a participant's payments, newest first.
func (r *PaymentRepo) ListByEmail(ctx context.Context, email string) ([]Payment, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	rows, err := r.DB.QueryContext(ctx,
		"SELECT id,email,camp_id,amount,transaction_id,paid_at FROM payments WHERE email=? ORDER BY id DESC",
		email)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	payments := []Payment{}
	for rows.Next() {
		var p Payment
		if err := rows.Scan(&p.ID, &p.Email, &p.CampID, &p.Amount, &p.TransactionID, &p.PaidAt); err != nil {
			return nil, err
		}
		payments = append(payments, p)
	}
	return payments, rows.Err()
}
