package dashboard

import (
	"github.com/gofiber/fiber/v2"

	"student-management/app/config"
	"student-management/app/database"
	"student-management/app/models"
	"student-management/app/routes/auth"
)

func SetupDashboardRoutes(app *fiber.App) {
	app.Get("/principal/dashboard", auth.AuthMiddleware, auth.RequirePrincipal, PrincipalDashboardAPI)
	app.Get("/teacher/dashboard", auth.AuthMiddleware, auth.RequireTeacher, auth.PasswordGate, TeacherDashboardAPI)
}

// PrincipalDashboardAPI aggregates the tenant's headline numbers and
// the moderation queue size.
func PrincipalDashboardAPI(c *fiber.Ctx) error {
	principal := auth.Principal(c)
	db := config.GetDB()

	studentsCount, err := database.CountStudents(db, principal.UserID)
	if err != nil {
		return err
	}
	teachersCount, err := database.CountTeachers(db, principal.UserID)
	if err != nil {
		return err
	}
	subjectsCount, err := database.CountSubjects(db, principal.UserID)
	if err != nil {
		return err
	}
	pendingMarks, err := database.CountPendingMarks(db, principal.UserID)
	if err != nil {
		return err
	}
	recentExams, err := database.ListExams(db, principal.UserID)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"students_count": studentsCount,
		"teachers_count": teachersCount,
		"subjects_count": subjectsCount,
		"pending_marks":  pendingMarks,
		"recent_exams":   recentExams,
	})
}

// TeacherDashboardAPI shows the teacher's roster, granted subjects and
// the tenant's exams. A missing profile is not an error here; the
// response just carries an empty teacher section.
func TeacherDashboardAPI(c *fiber.Ctx) error {
	ident := auth.CurrentIdentity(c).(models.TeacherIdentity)
	db := config.GetDB()

	teacher, err := database.GetTeacherByUserID(db, ident.UserID)
	if err == database.ErrNotFound {
		return c.JSON(fiber.Map{
			"teacher":  nil,
			"students": []*models.Student{},
			"subjects": []*models.Subject{},
			"exams":    []*models.Exam{},
		})
	}
	if err != nil {
		return err
	}

	students, err := database.ListStudentsByTeacher(db, teacher.ID)
	if err != nil {
		return err
	}
	subjects, err := database.ListGrantedSubjects(db, teacher.ID, teacher.PrincipalID)
	if err != nil {
		return err
	}
	exams, err := database.ListExams(db, teacher.PrincipalID)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"teacher":  teacher,
		"students": students,
		"subjects": subjects,
		"exams":    exams,
	})
}
