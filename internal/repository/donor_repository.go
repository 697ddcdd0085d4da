package repository

import (
	"context"
	"database/sql"
	"time"
)

// BloodDonor mirrors the append-only 'blood_donors' table.
type BloodDonor struct {
	ID         uint64    `json:"id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	BloodGroup string    `json:"bloodGroup"`
	Phone      string    `json:"phone"`
	Location   string    `json:"location"`
	CreatedAt  time.Time `json:"createdAt"`
}

type DonorRepo struct{ DB *sql.DB }

func NewDonorRepo(db *sql.DB) *DonorRepo { return &DonorRepo{DB: db} }

// Create appends a donor signup and returns its ID.
func (r *DonorRepo) Create(ctx context.Context, d BloodDonor) (uint64, error) {
	res, err := r.DB.ExecContext(ctx,
		"INSERT INTO blood_donors (name, email, blood_group, phone, location) VALUES (?,?,?,?,?)",
		d.Name, d.Email, d.BloodGroup, d.Phone, d.Location)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}

// List returns all donor signups, newest first.
func (r *DonorRepo) List(ctx context.Context) ([]BloodDonor, error) {
	rows, err := r.DB.QueryContext(ctx,
		"SELECT id,name,email,blood_group,phone,location,created_at FROM blood_donors ORDER BY id DESC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	donors := []BloodDonor{}
	for rows.Next() {
		var d BloodDonor
		if err := rows.Scan(&d.ID, &d.Name, &d.Email, &d.BloodGroup, &d.Phone, &d.Location, &d.CreatedAt); err != nil {
			return nil, err
		}
		donors = append(donors, d)
	}
	return donors, rows.Err()
}
