package subjects

import (
	"github.com/gofiber/fiber/v2"

	"student-management/app/routes/auth"
)

func SetupSubjectsRoutes(app *fiber.App) {
	app.Get("/subjects", auth.AuthMiddleware, auth.PasswordGate, ListSubjectsAPI)
	app.Post("/subject/add", auth.AuthMiddleware, auth.RequirePrincipal, AddSubjectAPI)
	app.Delete("/subject/:id", auth.AuthMiddleware, auth.RequirePrincipal, DeleteSubjectAPI)

	app.Post("/teacher/propose-subject", auth.AuthMiddleware, auth.RequireTeacher, auth.PasswordGate, ProposeSubjectAPI)
	app.Get("/proposals", auth.AuthMiddleware, auth.RequirePrincipal, ListProposalsAPI)
	app.Post("/proposal/approve/:id", auth.AuthMiddleware, auth.RequirePrincipal, ApproveProposalAPI)
	app.Post("/proposal/decline/:id", auth.AuthMiddleware, auth.RequirePrincipal, DeclineProposalAPI)
}
