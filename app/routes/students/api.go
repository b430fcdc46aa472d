package students

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"student-management/app/config"
	"student-management/app/database"
	"student-management/app/models"
	"student-management/app/routes/auth"
)

// ListStudentsAPI returns the whole tenant for a principal and only
// the assigned students for a teacher.
func ListStudentsAPI(c *fiber.Ctx) error {
	var (
		students []*models.Student
		err      error
	)

	switch ident := auth.CurrentIdentity(c).(type) {
	case models.PrincipalIdentity:
		students, err = database.ListStudentsByPrincipal(config.GetDB(), ident.UserID)
	case models.TeacherIdentity:
		teacher, terr := auth.TeacherProfile(c)
		if terr != nil {
			return terr
		}
		students, err = database.ListStudentsByTeacher(config.GetDB(), teacher.ID)
	default:
		return fiber.NewError(fiber.StatusForbidden, "Access denied")
	}
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"students": students,
		"count":    len(students),
	})
}

type studentRequest struct {
	Name      string `json:"name"`
	RollNo    string `json:"roll_no"`
	ClassName string `json:"class_name"`
	Standard  string `json:"standard"`
	Section   string `json:"section"`
	DOB       string `json:"dob"`
	TeacherID *int   `json:"teacher_id"`
}

// AddStudentAPI lets a principal assign any teacher in the tenant (or
// none); a teacher always gets the new student assigned to themselves.
func AddStudentAPI(c *fiber.Ctx) error {
	var req studentRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request")
	}

	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		return fiber.NewError(fiber.StatusBadRequest, "Student name is required")
	}

	student := &models.Student{
		Name:      req.Name,
		RollNo:    strings.TrimSpace(req.RollNo),
		ClassName: strings.TrimSpace(req.ClassName),
		Standard:  strings.TrimSpace(req.Standard),
		Section:   strings.TrimSpace(req.Section),
		DOB:       strings.TrimSpace(req.DOB),
	}

	switch ident := auth.CurrentIdentity(c).(type) {
	case models.PrincipalIdentity:
		student.PrincipalID = ident.UserID
		if req.TeacherID != nil {
			if _, err := database.GetTeacherByID(config.GetDB(), *req.TeacherID, ident.UserID); err != nil {
				if err == database.ErrNotFound {
					return fiber.NewError(fiber.StatusNotFound, "Teacher not found")
				}
				return err
			}
			student.TeacherID = req.TeacherID
		}
	case models.TeacherIdentity:
		teacher, err := auth.TeacherProfile(c)
		if err != nil {
			return err
		}
		student.PrincipalID = teacher.PrincipalID
		student.TeacherID = &teacher.ID
	default:
		return fiber.NewError(fiber.StatusForbidden, "Access denied")
	}

	id, err := database.CreateStudent(config.GetDB(), student)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Student added",
		"id":      id,
	})
}

// fetchScopedStudent loads a student visible to the caller: tenant-wide
// for a principal, own students only for a teacher.
func fetchScopedStudent(c *fiber.Ctx, studentID int) (*models.Student, error) {
	switch ident := auth.CurrentIdentity(c).(type) {
	case models.PrincipalIdentity:
		return database.GetStudentForPrincipal(config.GetDB(), studentID, ident.UserID)
	case models.TeacherIdentity:
		teacher, err := auth.TeacherProfile(c)
		if err != nil {
			return nil, err
		}
		return database.GetStudentForTeacher(config.GetDB(), studentID, teacher.ID)
	}
	return nil, fiber.NewError(fiber.StatusForbidden, "Access denied")
}

func UpdateStudentAPI(c *fiber.Ctx) error {
	studentID, err := c.ParamsInt("id")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid student id")
	}

	student, err := fetchScopedStudent(c, studentID)
	if err == database.ErrNotFound {
		return fiber.NewError(fiber.StatusNotFound, "Student not found")
	}
	if err != nil {
		return err
	}

	var req studentRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request")
	}

	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		return fiber.NewError(fiber.StatusBadRequest, "Student name is required")
	}

	student.Name = req.Name
	student.RollNo = strings.TrimSpace(req.RollNo)
	student.ClassName = strings.TrimSpace(req.ClassName)
	student.Standard = strings.TrimSpace(req.Standard)
	student.Section = strings.TrimSpace(req.Section)
	student.DOB = strings.TrimSpace(req.DOB)

	// Only a principal may reassign the student, and only to a teacher
	// inside their own tenant.
	if ident, ok := auth.CurrentIdentity(c).(models.PrincipalIdentity); ok {
		if req.TeacherID != nil {
			if _, err := database.GetTeacherByID(config.GetDB(), *req.TeacherID, ident.UserID); err != nil {
				if err == database.ErrNotFound {
					return fiber.NewError(fiber.StatusNotFound, "Teacher not found")
				}
				return err
			}
		}
		student.TeacherID = req.TeacherID
	}

	if err := database.UpdateStudent(config.GetDB(), student); err != nil {
		return err
	}

	return c.JSON(fiber.Map{"message": "Student updated"})
}

func DeleteStudentAPI(c *fiber.Ctx) error {
	studentID, err := c.ParamsInt("id")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid student id")
	}

	switch ident := auth.CurrentIdentity(c).(type) {
	case models.PrincipalIdentity:
		err = database.DeleteStudentByPrincipal(config.GetDB(), studentID, ident.UserID)
	case models.TeacherIdentity:
		teacher, terr := auth.TeacherProfile(c)
		if terr != nil {
			return terr
		}
		err = database.DeleteStudentByTeacher(config.GetDB(), studentID, teacher.ID)
	default:
		return fiber.NewError(fiber.StatusForbidden, "Access denied")
	}
	if err == database.ErrNotFound {
		return fiber.NewError(fiber.StatusNotFound, "Student not found")
	}
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{"message": "Student deleted"})
}
