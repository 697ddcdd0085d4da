package repository

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCampIncrementParticipantCount(t *testing.T) {
	db, mock := newMock(t)
	repo := NewCampRepo(db)

	query := regexp.QuoteMeta("UPDATE camps SET participant_count = participant_count + 1 WHERE id=?")

	mock.ExpectExec(query).
		WithArgs(uint64(7)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	n, err := repo.IncrementParticipantCount(context.Background(), 7)
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)

	// A stale camp id matches zero rows and that is not an error.
	mock.ExpectExec(query).
		WithArgs(uint64(99)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	n, err = repo.IncrementParticipantCount(context.Background(), 99)
	require.NoError(t, err)
	assert.Zero(t, n)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCampGetByIDScansNullableColumns(t *testing.T) {
	db, mock := newMock(t)
	repo := NewCampRepo(db)

	now := time.Now().UTC().Truncate(time.Second)
	rows := sqlmock.NewRows([]string{
		"id", "title", "fees", "date_time", "location", "healthcare_professional",
		"description", "image_url", "participant_count", "created_at", "updated_at",
	}).AddRow(uint64(7), "Eye Camp", 25.0, nil, "Dhaka", "Dr. Rahman", nil, "", uint32(4), now, now)

	mock.ExpectQuery("SELECT .+ FROM camps WHERE id=\\? LIMIT 1").
		WithArgs(uint64(7)).
		WillReturnRows(rows)

	c, err := repo.GetByID(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, "Eye Camp", c.Title)
	assert.Nil(t, c.DateTime)
	assert.Empty(t, c.Description)
	assert.EqualValues(t, 4, c.ParticipantCount)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCampGetByIDMissing(t *testing.T) {
	db, mock := newMock(t)
	repo := NewCampRepo(db)

	mock.ExpectQuery("SELECT .+ FROM camps WHERE id=\\? LIMIT 1").
		WithArgs(uint64(404)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := repo.GetByID(context.Background(), 404)
	assert.ErrorIs(t, err, sql.ErrNoRows)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCampUpdateBuildsOnlyChangedColumns(t *testing.T) {
	db, mock := newMock(t)
	repo := NewCampRepo(db)

	fees := 30.0
	loc := "Chittagong"
	mock.ExpectExec(regexp.QuoteMeta("UPDATE camps SET fees=?,location=? WHERE id=?")).
		WithArgs(30.0, "Chittagong", uint64(7)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	n, err := repo.Update(context.Background(), 7, CampUpdate{Fees: &fees, Location: &loc})
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)
	assert.NoError(t, mock.ExpectationsWereMet())
}
