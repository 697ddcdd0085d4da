package repository

import (
	"context"
	"database/sql"
	"strings"
	"time"
)

// User mirrors the 'users' table.  Role is either "participant" or "admin";
// new records default to participant and are promoted by an admin edit.
type User struct {
	ID        uint64    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	PhotoURL  string    `json:"photoURL"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// UserUpdate carries the mutable user fields for PATCH requests.  Nil
// pointers mean "leave unchanged".
type UserUpdate struct {
	Name     *string `json:"name"`
	PhotoURL *string `json:"photoURL"`
	Role     *string `json:"role"`
}

type UserRepo struct{ DB *sql.DB }

func NewUserRepo(db *sql.DB) *UserRepo { return &UserRepo{DB: db} }

// Create inserts a user and returns its ID.  A duplicate email maps to
// ErrEmailExists so the handler can answer without a new identifier.
func (r *UserRepo) Create(ctx context.Context, email, name, photoURL, role string) (uint64, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if role != "admin" {
		role = "participant"
	}
	res, err := r.DB.ExecContext(ctx,
		"INSERT INTO users (email, name, photo_url, role) VALUES (?,?,?,?)",
		email, name, photoURL, role)
	if err != nil {
		if isDuplicate(err) {
			return 0, ErrEmailExists
		}
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}

// GetByEmail fetches a user by normalized email.
func (r *UserRepo) GetByEmail(ctx context.Context, email string) (User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	var u User
	err := r.DB.QueryRowContext(ctx,
		"SELECT id,email,name,photo_url,role,created_at,updated_at FROM users WHERE email=? LIMIT 1",
		email).Scan(&u.ID, &u.Email, &u.Name, &u.PhotoURL, &u.Role, &u.CreatedAt, &u.UpdatedAt)
	return u, err
}

// RoleByEmail returns only the stored role for an email.  Queried on every
// admin-gated request so role changes apply without re-issuing tokens.
func (r *UserRepo) RoleByEmail(ctx context.Context, email string) (string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	var role string
	err := r.DB.QueryRowContext(ctx,
		"SELECT role FROM users WHERE email=? LIMIT 1", email).Scan(&role)
	return role, err
}

// Update applies the non-nil fields of upd to the user row and returns the
// number of rows matched.
func (r *UserRepo) Update(ctx context.Context, id uint64, upd UserUpdate) (int64, error) {
	sets := make([]string, 0, 3)
	args := make([]interface{}, 0, 4)
	if upd.Name != nil {
		sets = append(sets, "name=?")
		args = append(args, *upd.Name)
	}
	if upd.PhotoURL != nil {
		sets = append(sets, "photo_url=?")
		args = append(args, *upd.PhotoURL)
	}
	if upd.Role != nil {
		sets = append(sets, "role=?")
		args = append(args, *upd.Role)
	}
	if len(sets) == 0 {
		return 0, nil
	}
	args = append(args, id)
	res, err := r.DB.ExecContext(ctx,
		"UPDATE users SET "+strings.Join(sets, ",")+" WHERE id=?", args...)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
