package exams

import (
	"github.com/gofiber/fiber/v2"

	"student-management/app/routes/auth"
)

func SetupExamsRoutes(app *fiber.App) {
	app.Post("/exam/create", auth.AuthMiddleware, auth.RequirePrincipal, CreateExamAPI)
	app.Get("/exams", auth.AuthMiddleware, auth.PasswordGate, ListExamsAPI)

	app.Post("/exam/approve/:mark_id", auth.AuthMiddleware, auth.RequirePrincipal, ApproveMarkAPI)
	app.Post("/exam/reject/:mark_id", auth.AuthMiddleware, auth.RequirePrincipal, RejectMarkAPI)

	app.Post("/exam/:id/enter", auth.AuthMiddleware, auth.RequireTeacher, auth.PasswordGate, EnterMarksAPI)
	app.Get("/exam/:id/pending", auth.AuthMiddleware, auth.RequirePrincipal, PendingMarksAPI)
}
