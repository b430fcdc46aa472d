package database

import (
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"student-management/app/models"
)

func newMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db, mock
}

func TestApproveProposalAppliesAllSideEffects(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectBegin()
	mock.ExpectQuery("UPDATE subject_proposals SET status").
		WithArgs(models.StatusApproved, 9, 1, models.StatusPending).
		WillReturnRows(sqlmock.NewRows([]string{"teacher_id", "name"}).AddRow(4, "Art"))
	mock.ExpectQuery("INSERT INTO subjects").
		WithArgs(1, "Art").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(30))
	mock.ExpectExec("INSERT INTO teacher_subjects").
		WithArgs(1, 4, 30).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	subjectID, err := ApproveProposal(db, 9, 1)
	require.NoError(t, err)
	assert.Equal(t, 30, subjectID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// A proposal that already left Pending must never be approved again:
// the conditional update matches nothing and no subject or grant is
// created.
func TestApproveProposalRejectsDecidedProposal(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectBegin()
	mock.ExpectQuery("UPDATE subject_proposals SET status").
		WithArgs(models.StatusApproved, 9, 1, models.StatusPending).
		WillReturnError(sql.ErrNoRows)
	mock.ExpectQuery("SELECT status FROM subject_proposals").
		WithArgs(9, 1).
		WillReturnRows(sqlmock.NewRows([]string{"status"}).AddRow(models.StatusApproved))
	mock.ExpectRollback()

	_, err := ApproveProposal(db, 9, 1)
	assert.ErrorIs(t, err, ErrAlreadyDecided)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// Absent rows and rows in another principal's tenant look the same.
func TestApproveProposalUnknownProposal(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectBegin()
	mock.ExpectQuery("UPDATE subject_proposals SET status").
		WithArgs(models.StatusApproved, 9, 2, models.StatusPending).
		WillReturnError(sql.ErrNoRows)
	mock.ExpectQuery("SELECT status FROM subject_proposals").
		WithArgs(9, 2).
		WillReturnError(sql.ErrNoRows)
	mock.ExpectRollback()

	_, err := ApproveProposal(db, 9, 2)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// A failed grant insert rolls the whole approval back, including the
// status transition and the subject row.
func TestApproveProposalRollsBackOnGrantFailure(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectBegin()
	mock.ExpectQuery("UPDATE subject_proposals SET status").
		WithArgs(models.StatusApproved, 9, 1, models.StatusPending).
		WillReturnRows(sqlmock.NewRows([]string{"teacher_id", "name"}).AddRow(4, "Art"))
	mock.ExpectQuery("INSERT INTO subjects").
		WithArgs(1, "Art").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(30))
	mock.ExpectExec("INSERT INTO teacher_subjects").
		WithArgs(1, 4, 30).
		WillReturnError(errors.New("connection reset"))
	mock.ExpectRollback()

	_, err := ApproveProposal(db, 9, 1)
	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeclineProposalTransitionsPendingRow(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectExec("UPDATE subject_proposals SET status").
		WithArgs(models.StatusDeclined, 9, 1, models.StatusPending).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, DeclineProposal(db, 9, 1))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeclineProposalRejectsDecidedProposal(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectExec("UPDATE subject_proposals SET status").
		WithArgs(models.StatusDeclined, 9, 1, models.StatusPending).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery("SELECT status FROM subject_proposals").
		WithArgs(9, 1).
		WillReturnRows(sqlmock.NewRows([]string{"status"}).AddRow(models.StatusDeclined))

	err := DeclineProposal(db, 9, 1)
	assert.ErrorIs(t, err, ErrAlreadyDecided)
	assert.NoError(t, mock.ExpectationsWereMet())
}
