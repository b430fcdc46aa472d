package exams

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"student-management/app/config"
	"student-management/app/database"
	"student-management/app/models"
	"student-management/app/routes/auth"
)

// ParseMark coerces a submitted mark value to an integer. Malformed
// input becomes 0 instead of an error; this permissive policy matches
// the documented submission behavior.
func ParseMark(v string) int {
	m, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return 0
	}
	return m
}

func CreateExamAPI(c *fiber.Ctx) error {
	principal := auth.Principal(c)

	type ExamRequest struct {
		Name     string `json:"name"`
		MaxMarks int    `json:"max_marks"`
	}
	var req ExamRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request")
	}

	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		return fiber.NewError(fiber.StatusBadRequest, "Exam name required")
	}
	if req.MaxMarks <= 0 {
		req.MaxMarks = 100
	}

	id, err := database.CreateExam(config.GetDB(), principal.UserID, req.Name, req.MaxMarks)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Exam created",
		"id":      id,
	})
}

func ListExamsAPI(c *fiber.Ctx) error {
	var principalID int

	switch ident := auth.CurrentIdentity(c).(type) {
	case models.PrincipalIdentity:
		principalID = ident.UserID
	case models.TeacherIdentity:
		teacher, err := auth.TeacherProfile(c)
		if err != nil {
			return err
		}
		principalID = teacher.PrincipalID
	default:
		return fiber.NewError(fiber.StatusForbidden, "Access denied")
	}

	exams, err := database.ListExams(config.GetDB(), principalID)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"exams": exams,
		"count": len(exams),
	})
}

// EnterMarksAPI records one Pending mark per assigned student with a
// non-empty value, under the teacher's selected subject. Submissions
// only land on students assigned to the acting teacher, and only for
// exams inside the teacher's tenant.
func EnterMarksAPI(c *fiber.Ctx) error {
	teacher, err := auth.TeacherProfile(c)
	if err != nil {
		return err
	}

	examID, err := c.ParamsInt("id")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid exam id")
	}

	exam, err := database.GetExam(config.GetDB(), examID, teacher.PrincipalID)
	if err == database.ErrNotFound {
		return fiber.NewError(fiber.StatusNotFound, "Exam not found")
	}
	if err != nil {
		return err
	}

	type EnterMarksRequest struct {
		SubjectName string            `json:"subject_name"`
		Marks       map[string]string `json:"marks"` // student id -> raw mark value
	}
	var req EnterMarksRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request")
	}

	req.SubjectName = strings.TrimSpace(req.SubjectName)
	if req.SubjectName == "" {
		return fiber.NewError(fiber.StatusBadRequest, "Select subject")
	}

	students, err := database.ListStudentsByTeacher(config.GetDB(), teacher.ID)
	if err != nil {
		return err
	}

	submitted := 0
	for _, stu := range students {
		v, ok := req.Marks[strconv.Itoa(stu.ID)]
		if !ok || strings.TrimSpace(v) == "" {
			continue
		}
		if err := database.InsertMark(config.GetDB(), exam.ID, stu.ID, req.SubjectName, ParseMark(v), teacher.ID); err != nil {
			return err
		}
		submitted++
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message":   "Marks submitted and are pending approval",
		"submitted": submitted,
	})
}

func PendingMarksAPI(c *fiber.Ctx) error {
	principal := auth.Principal(c)

	examID, err := c.ParamsInt("id")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid exam id")
	}

	exam, err := database.GetExam(config.GetDB(), examID, principal.UserID)
	if err == database.ErrNotFound {
		return fiber.NewError(fiber.StatusNotFound, "Exam not found")
	}
	if err != nil {
		return err
	}

	marks, err := database.ListPendingMarks(config.GetDB(), exam.ID)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"exam":  exam,
		"marks": marks,
		"count": len(marks),
	})
}

func decideMark(c *fiber.Ctx, status, message string) error {
	principal := auth.Principal(c)

	markID, err := c.ParamsInt("mark_id")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid mark id")
	}

	err = database.SetMarkStatus(config.GetDB(), markID, principal.UserID, status)
	switch err {
	case nil:
	case database.ErrNotFound:
		return fiber.NewError(fiber.StatusNotFound, "Not found")
	case database.ErrAlreadyDecided:
		return fiber.NewError(fiber.StatusConflict, "Mark already decided")
	default:
		return err
	}

	return c.JSON(fiber.Map{"message": message})
}

func ApproveMarkAPI(c *fiber.Ctx) error {
	return decideMark(c, models.StatusApproved, "Mark approved")
}

func RejectMarkAPI(c *fiber.Ctx) error {
	return decideMark(c, models.StatusDeclined, "Mark declined")
}
