package database

import (
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"student-management/app/models"
)

func TestSetMarkStatusTransitionsPendingRow(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectExec("UPDATE exam_marks em SET status").
		WithArgs(models.StatusApproved, 5, 1, models.StatusPending).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, SetMarkStatus(db, 5, 1, models.StatusApproved))
	assert.NoError(t, mock.ExpectationsWereMet())
}

// A decided mark is terminal: the conditional update matches nothing
// and the caller gets a conflict, not a silent re-transition.
func TestSetMarkStatusRejectsDecidedMark(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectExec("UPDATE exam_marks em SET status").
		WithArgs(models.StatusDeclined, 5, 1, models.StatusPending).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery("SELECT em.status FROM exam_marks").
		WithArgs(5, 1).
		WillReturnRows(sqlmock.NewRows([]string{"status"}).AddRow(models.StatusApproved))

	err := SetMarkStatus(db, 5, 1, models.StatusDeclined)
	assert.ErrorIs(t, err, ErrAlreadyDecided)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// Marks outside the principal's tenant are indistinguishable from
// absent ones.
func TestSetMarkStatusUnknownMark(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectExec("UPDATE exam_marks em SET status").
		WithArgs(models.StatusApproved, 5, 2, models.StatusPending).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery("SELECT em.status FROM exam_marks").
		WithArgs(5, 2).
		WillReturnError(sql.ErrNoRows)

	err := SetMarkStatus(db, 5, 2, models.StatusApproved)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
