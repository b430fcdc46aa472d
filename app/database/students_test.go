package database

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeleteStudentScoped(t *testing.T) {
	t.Run("deletes own student", func(t *testing.T) {
		db, mock := newMockDB(t)

		mock.ExpectExec("DELETE FROM students WHERE id").
			WithArgs(10, 1).
			WillReturnResult(sqlmock.NewResult(0, 1))

		require.NoError(t, DeleteStudentByPrincipal(db, 10, 1))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("absent or foreign student is not found", func(t *testing.T) {
		db, mock := newMockDB(t)

		mock.ExpectExec("DELETE FROM students WHERE id").
			WithArgs(10, 2).
			WillReturnResult(sqlmock.NewResult(0, 0))

		assert.ErrorIs(t, DeleteStudentByPrincipal(db, 10, 2), ErrNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("teacher cannot delete an unassigned student", func(t *testing.T) {
		db, mock := newMockDB(t)

		mock.ExpectExec("DELETE FROM students WHERE id").
			WithArgs(10, 7).
			WillReturnResult(sqlmock.NewResult(0, 0))

		assert.ErrorIs(t, DeleteStudentByTeacher(db, 10, 7), ErrNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestDeleteSubjectScoped(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectExec("DELETE FROM subjects WHERE id").
		WithArgs(3, 2).
		WillReturnResult(sqlmock.NewResult(0, 0))

	assert.ErrorIs(t, DeleteSubject(db, 3, 2), ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
