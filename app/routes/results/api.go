package results

import (
	"github.com/gofiber/fiber/v2"

	"student-management/app/config"
	"student-management/app/database"
	"student-management/app/routes/auth"
)

// StudentResultAPI returns the student's approved marks grouped per
// exam with totals and grades. Pending and declined marks are
// filtered out in the query, never here.
func StudentResultAPI(c *fiber.Ctx) error {
	ident := auth.Student(c)

	student, err := database.GetStudentWithTeacher(config.GetDB(), ident.StudentID)
	if err == database.ErrNotFound {
		return fiber.NewError(fiber.StatusNotFound, "Not found")
	}
	if err != nil {
		return err
	}

	rows, err := database.ListApprovedMarks(config.GetDB(), ident.StudentID)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"student": student,
		"exams":   GroupResults(rows),
	})
}

func StudentDashboardAPI(c *fiber.Ctx) error {
	ident := auth.Student(c)

	student, err := database.GetStudentWithTeacher(config.GetDB(), ident.StudentID)
	if err == database.ErrNotFound {
		return fiber.NewError(fiber.StatusNotFound, "Not found")
	}
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{"student": student})
}

// TeacherStudentMarksAPI shows a teacher the approved marks of one of
// their own students. Students outside the teacher's roster are
// reported as not found, the same as absent ones.
func TeacherStudentMarksAPI(c *fiber.Ctx) error {
	teacher, err := auth.TeacherProfile(c)
	if err != nil {
		return err
	}

	studentID, err := c.ParamsInt("id")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid student id")
	}

	student, err := database.GetStudentForTeacher(config.GetDB(), studentID, teacher.ID)
	if err == database.ErrNotFound {
		return fiber.NewError(fiber.StatusNotFound, "Student not found")
	}
	if err != nil {
		return err
	}

	rows, err := database.ListApprovedMarks(config.GetDB(), student.ID)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"student": student,
		"marks":   rows,
	})
}
