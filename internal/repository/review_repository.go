package repository

import (
	"context"
	"database/sql"
	"time"
)

// Review mirrors the append-only 'reviews' table.
type Review struct {
	ID        uint64    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Rating    uint8     `json:"rating"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"createdAt"`
}

type ReviewRepo struct{ DB *sql.DB }

func NewReviewRepo(db *sql.DB) *ReviewRepo { return &ReviewRepo{DB: db} }

// Create appends a review and returns its ID.
func (r *ReviewRepo) Create(ctx context.Context, v Review) (uint64, error) {
	res, err := r.DB.ExecContext(ctx,
		"INSERT INTO reviews (name, email, rating, comment) VALUES (?,?,?,?)",
		v.Name, v.Email, v.Rating, v.Comment)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}

// List returns all reviews, newest first.
func (r *ReviewRepo) List(ctx context.Context) ([]Review, error) {
	rows, err := r.DB.QueryContext(ctx,
		"SELECT id,name,email,rating,comment,created_at FROM reviews ORDER BY id DESC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	reviews := []Review{}
	for rows.Next() {
		var v Review
		var comment sql.NullString
		if err := rows.Scan(&v.ID, &v.Name, &v.Email, &v.Rating, &comment, &v.CreatedAt); err != nil {
			return nil, err
		}
		if comment.Valid {
			v.Comment = comment.String
		}
		reviews = append(reviews, v)
	}
	return reviews, rows.Err()
}
