package results

import (
	"github.com/gofiber/fiber/v2"

	"student-management/app/routes/auth"
)

func SetupResultsRoutes(app *fiber.App) {
	app.Get("/student/result", auth.AuthMiddleware, auth.RequireStudent, StudentResultAPI)
	app.Get("/student/dashboard", auth.AuthMiddleware, auth.RequireStudent, StudentDashboardAPI)

	app.Get("/teacher/student/:id/marks", auth.AuthMiddleware, auth.RequireTeacher, auth.PasswordGate, TeacherStudentMarksAPI)
}
