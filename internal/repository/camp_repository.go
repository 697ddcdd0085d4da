package repository

import (
	"context"
	"database/sql"
	"strings"
	"time"
)

// Camp mirrors the 'camps' table.  ParticipantCount starts at 0 and is
// incremented exactly once per successful join; deleting a registration
// does not decrement it, so the counter reads as "ever joined".
type Camp struct {
	ID                     uint64     `json:"id"`
	Title                  string     `json:"title"`
	Fees                   float64    `json:"fees"`
	DateTime               *time.Time `json:"dateTime"`
	Location               string     `json:"location"`
	HealthcareProfessional string     `json:"healthcareProfessional"`
	Description            string     `json:"description"`
	ImageURL               string     `json:"imageURL"`
	ParticipantCount       uint32     `json:"participantCount"`
	CreatedAt              time.Time  `json:"createdAt"`
	UpdatedAt              time.Time  `json:"updatedAt"`
}

// CampUpdate carries the mutable camp fields for admin PATCH requests.
// Nil pointers mean "leave unchanged"; the participant counter is never
// writable through an edit.
type CampUpdate struct {
	Title                  *string    `json:"title"`
	Fees                   *float64   `json:"fees"`
	DateTime               *time.Time `json:"dateTime"`
	Location               *string    `json:"location"`
	HealthcareProfessional *string    `json:"healthcareProfessional"`
	Description            *string    `json:"description"`
	ImageURL               *string    `json:"imageURL"`
}

type CampRepo struct{ DB *sql.DB }

func NewCampRepo(db *sql.DB) *CampRepo { return &CampRepo{DB: db} }

const campColumns = "id,title,fees,date_time,location,healthcare_professional,description,image_url,participant_count,created_at,updated_at"

func scanCamp(row interface{ Scan(...interface{}) error }) (Camp, error) {
	var c Camp
	var desc sql.NullString
	var dt sql.NullTime
	err := row.Scan(&c.ID, &c.Title, &c.Fees, &dt, &c.Location,
		&c.HealthcareProfessional, &desc, &c.ImageURL, &c.ParticipantCount,
		&c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return Camp{}, err
	}
	if desc.Valid {
		c.Description = desc.String
	}
	if dt.Valid {
		t := dt.Time
		c.DateTime = &t
	}
	return c, nil
}

// Create inserts a camp with a zero participant counter and returns its ID.
func (r *CampRepo) Create(ctx context.Context, c Camp) (uint64, error) {
	res, err := r.DB.ExecContext(ctx,
		`INSERT INTO camps (title, fees, date_time, location, healthcare_professional, description, image_url)
		 VALUES (?,?,?,?,?,?,?)`,
		c.Title, c.Fees, c.DateTime, c.Location, c.HealthcareProfessional, c.Description, c.ImageURL)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}

// List returns all camps ordered by creation.
func (r *CampRepo) List(ctx context.Context) ([]Camp, error) {
	rows, err := r.DB.QueryContext(ctx,
		"SELECT "+campColumns+" FROM camps ORDER BY id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	camps := []Camp{}
	for rows.Next() {
		c, err := scanCamp(rows)
		if err != nil {
			return nil, err
		}
		camps = append(camps, c)
	}
	return camps, rows.Err()
}

// GetByID fetches a camp by id; sql.ErrNoRows when absent.
func (r *CampRepo) GetByID(ctx context.Context, id uint64) (Camp, error) {
	return scanCamp(r.DB.QueryRowContext(ctx,
		"SELECT "+campColumns+" FROM camps WHERE id=? LIMIT 1", id))
}

// Update applies the non-nil fields of upd and returns rows matched.
func (r *CampRepo) Update(ctx context.Context, id uint64, upd CampUpdate) (int64, error) {
	sets := make([]string, 0, 7)
	args := make([]interface{}, 0, 8)
	if upd.Title != nil {
		sets = append(sets, "title=?")
		args = append(args, *upd.Title)
	}
	if upd.Fees != nil {
		sets = append(sets, "fees=?")
		args = append(args, *upd.Fees)
	}
	if upd.DateTime != nil {
		sets = append(sets, "date_time=?")
		args = append(args, *upd.DateTime)
	}
	if upd.Location != nil {
		sets = append(sets, "location=?")
		args = append(args, *upd.Location)
	}
	if upd.HealthcareProfessional != nil {
		sets = append(sets, "healthcare_professional=?")
		args = append(args, *upd.HealthcareProfessional)
	}
	if upd.Description != nil {
		sets = append(sets, "description=?")
		args = append(args, *upd.Description)
	}
	if upd.ImageURL != nil {
		sets = append(sets, "image_url=?")
		args = append(args, *upd.ImageURL)
	}
	if len(sets) == 0 {
		return 0, nil
	}
	args = append(args, id)
	res, err := r.DB.ExecContext(ctx,
		"UPDATE camps SET "+strings.Join(sets, ",")+" WHERE id=?", args...)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

// Delete removes a camp.  Registrations referencing it become orphaned;
// there is no cascading cleanup.
func (r *CampRepo) Delete(ctx context.Context, id uint64) (int64, error) {
	res, err := r.DB.ExecContext(ctx, "DELETE FROM camps WHERE id=?", id)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

// IncrementParticipantCount adds 1 to the camp's counter.  Matching zero
// rows is not an error: a registration may reference a camp id that no
// longer exists (or never did) and the join still stands.
func (r *CampRepo) IncrementParticipantCount(ctx context.Context, id uint64) (int64, error) {
	res, err := r.DB.ExecContext(ctx,
		"UPDATE camps SET participant_count = participant_count + 1 WHERE id=?", id)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
