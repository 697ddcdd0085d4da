// Package repository defines error types that are reused across multiple
// repositories. These sentinel values allow higher layers such as
// handlers to distinguish between different failure scenarios. For
// example, ErrAlreadyJoined signals that a participant attempted a
// second registration for the same camp, while ErrEmailExists covers
// a duplicate user insert. Handlers translate these into specific
// HTTP status codes instead of a generic 500.
package repository

import (
	"errors"
	"strings"
)

// ErrEmailExists is returned when a user insert collides with an
// existing email. Handlers report this without creating a record.
var ErrEmailExists = errors.New("email already exists")

// ErrAlreadyJoined is returned when a registration insert (or the
// preceding duplicate check) finds an existing (participant, camp)
// pair. The unique index uq_participant_camp raises this even when
// two concurrent joins both pass the read check. Handlers translate
// it into an HTTP 400.
var ErrAlreadyJoined = errors.New("already joined")

// isDuplicate reports whether err is a MySQL duplicate-key violation
// (error 1062) against a unique index.
func isDuplicate(err error) bool {
	return err != nil && strings.Contains(strings.ToLower(err.Error()), "1062")
}
