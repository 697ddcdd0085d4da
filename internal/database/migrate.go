package database

import (
	"database/sql"
	"embed"

	"github.com/pressly/goose/v3"
)

//go:embed migrations/*.sql
var migrations embed.FS

// Migrate applies any pending schema migrations.  Migrations are embedded in
// the binary so a fresh database is usable without external tooling.  The
// unique index on (participant_email, camp_id) lives here; it is what turns
// a concurrent duplicate join into a constraint violation instead of a
// second registration row.
func Migrate(db *sql.DB) error {
	goose.SetBaseFS(migrations)
	if err := goose.SetDialect("mysql"); err != nil {
		return err
	}
	return goose.Up(db, "migrations")
}
