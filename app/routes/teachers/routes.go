package teachers

import (
	"github.com/gofiber/fiber/v2"

	"student-management/app/routes/auth"
)

// Role middleware is attached per route: principal and teacher
// operations share the /teacher prefix, so a group-level gate would
// lock one role out of the other's routes.
func SetupTeachersRoutes(app *fiber.App) {
	// Registered first so /teacher/profile is never captured by the
	// principal's /teacher/:id parameter.
	app.Get("/teacher/profile", auth.AuthMiddleware, auth.RequireTeacher, auth.PasswordGate, ProfileAPI)
	app.Put("/teacher/profile", auth.AuthMiddleware, auth.RequireTeacher, auth.PasswordGate, UpdateProfileAPI)

	app.Get("/teachers", auth.AuthMiddleware, auth.RequirePrincipal, ListTeachersAPI)
	app.Post("/teacher/add", auth.AuthMiddleware, auth.RequirePrincipal, AddTeacherAPI)
	app.Put("/teacher/:id", auth.AuthMiddleware, auth.RequirePrincipal, UpdateTeacherAPI)
	app.Delete("/teacher/:id", auth.AuthMiddleware, auth.RequirePrincipal, DeleteTeacherAPI)
}
