package students

import (
	"database/sql"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"student-management/app/config"
	"student-management/app/models"
	"student-management/app/routes/auth"
)

func setupApp(t *testing.T) (*fiber.App, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	config.AppConfig = &config.Config{DB: db}

	app := fiber.New()
	SetupStudentsRoutes(app)
	return app, mock
}

func principalRequest(t *testing.T, method, path, body string) *http.Request {
	t.Helper()
	token, err := auth.GenerateSessionToken(models.PrincipalIdentity{UserID: 1, Name: "Head"})
	require.NoError(t, err)

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.AddCookie(&http.Cookie{Name: "session_token", Value: token})
	return req
}

func studentRow() *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "principal_id", "teacher_id", "name", "roll_no",
		"class_name", "standard", "section", "dob", "created_at",
	}).AddRow(10, 1, nil, "Alex", "R1", "", "", "", "2010-01-01", time.Now())
}

// Reassignment only succeeds when the target teacher belongs to the
// acting principal's tenant; a foreign teacher id is reported as not
// found and no update is issued.
func TestUpdateStudentReassignment(t *testing.T) {
	t.Run("foreign teacher is rejected", func(t *testing.T) {
		app, mock := setupApp(t)

		mock.ExpectQuery("FROM students s WHERE s.id").
			WithArgs(10, 1).
			WillReturnRows(studentRow())
		mock.ExpectQuery("FROM teachers t WHERE t.id").
			WithArgs(99, 1).
			WillReturnError(sql.ErrNoRows)

		req := principalRequest(t, http.MethodPut, "/student/10",
			`{"name": "Alex", "teacher_id": 99}`)
		resp, err := app.Test(req)
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("tenant teacher is accepted", func(t *testing.T) {
		app, mock := setupApp(t)

		mock.ExpectQuery("FROM students s WHERE s.id").
			WithArgs(10, 1).
			WillReturnRows(studentRow())
		mock.ExpectQuery("FROM teachers t WHERE t.id").
			WithArgs(4, 1).
			WillReturnRows(sqlmock.NewRows([]string{
				"id", "user_id", "principal_id", "name", "phone",
				"qualification", "specialization", "created_at",
			}).AddRow(4, 2, 1, "Ms Jones", "", "", "", time.Now()))
		mock.ExpectExec("UPDATE students SET").
			WillReturnResult(sqlmock.NewResult(0, 1))

		req := principalRequest(t, http.MethodPut, "/student/10",
			`{"name": "Alex", "teacher_id": 4}`)
		resp, err := app.Test(req)
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
