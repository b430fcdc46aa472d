package students

import (
	"github.com/gofiber/fiber/v2"

	"student-management/app/routes/auth"
)

func SetupStudentsRoutes(app *fiber.App) {
	// Principals and teachers share these routes; the handlers branch
	// on the identity variant for scoping.
	app.Get("/students", auth.AuthMiddleware, auth.PasswordGate, ListStudentsAPI)
	app.Post("/student/add", auth.AuthMiddleware, auth.PasswordGate, AddStudentAPI)
	app.Put("/student/:id", auth.AuthMiddleware, auth.PasswordGate, UpdateStudentAPI)
	app.Delete("/student/:id", auth.AuthMiddleware, auth.PasswordGate, DeleteStudentAPI)
}
