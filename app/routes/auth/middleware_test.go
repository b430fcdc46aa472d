package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"student-management/app/models"
)

func newGatedApp(t *testing.T) *fiber.App {
	t.Helper()
	app := fiber.New()

	ok := func(c *fiber.Ctx) error { return c.SendString("ok") }
	app.Get("/principal-only", AuthMiddleware, RequirePrincipal, ok)
	app.Get("/teacher-only", AuthMiddleware, RequireTeacher, PasswordGate, ok)
	app.Get("/student-only", AuthMiddleware, RequireStudent, ok)
	return app
}

func tokenFor(t *testing.T, ident models.Identity) string {
	t.Helper()
	token, err := GenerateSessionToken(ident)
	require.NoError(t, err)
	return token
}

func TestAccessControlGates(t *testing.T) {
	app := newGatedApp(t)

	principal := tokenFor(t, models.PrincipalIdentity{UserID: 1, Name: "Head"})
	teacher := tokenFor(t, models.TeacherIdentity{UserID: 2, Name: "Ms Jones"})
	freshTeacher := tokenFor(t, models.TeacherIdentity{UserID: 3, Name: "New Hire", MustChangePassword: true})
	student := tokenFor(t, models.StudentIdentity{StudentID: 4, Name: "Alex"})

	tests := []struct {
		name       string
		path       string
		token      string
		wantStatus int
	}{
		{"no session is unauthorized", "/principal-only", "", http.StatusUnauthorized},
		{"garbage session is unauthorized", "/principal-only", "garbage", http.StatusUnauthorized},
		{"principal reaches principal route", "/principal-only", principal, http.StatusOK},
		{"teacher denied on principal route", "/principal-only", teacher, http.StatusForbidden},
		{"student denied on principal route", "/principal-only", student, http.StatusForbidden},
		{"teacher reaches teacher route", "/teacher-only", teacher, http.StatusOK},
		{"principal denied on teacher route", "/teacher-only", principal, http.StatusForbidden},
		{"unchanged password blocks teacher route", "/teacher-only", freshTeacher, http.StatusForbidden},
		{"student reaches student route", "/student-only", student, http.StatusOK},
		{"teacher denied on student route", "/student-only", teacher, http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			if tt.token != "" {
				req.AddCookie(&http.Cookie{Name: sessionCookie, Value: tt.token})
			}

			resp, err := app.Test(req)
			require.NoError(t, err)
			defer resp.Body.Close()

			assert.Equal(t, tt.wantStatus, resp.StatusCode)
		})
	}
}

func TestBearerTokenAccepted(t *testing.T) {
	app := newGatedApp(t)

	req := httptest.NewRequest(http.MethodGet, "/principal-only", nil)
	req.Header.Set("Authorization", "Bearer "+tokenFor(t, models.PrincipalIdentity{UserID: 1}))

	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
