package teachers

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"student-management/app/config"
	"student-management/app/database"
	"student-management/app/routes/auth"
)

// defaultPassword is issued at provisioning; the teacher must replace
// it on first login before reaching anything else.
const defaultPassword = "teacher123"

func ListTeachersAPI(c *fiber.Ctx) error {
	principal := auth.Principal(c)
	teachers, err := database.ListTeachers(config.GetDB(), principal.UserID)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"teachers": teachers,
		"count":    len(teachers),
	})
}

type teacherRequest struct {
	Name           string `json:"name"`
	Email          string `json:"email"`
	Phone          string `json:"phone"`
	Qualification  string `json:"qualification"`
	Specialization string `json:"specialization"`
}

func AddTeacherAPI(c *fiber.Ctx) error {
	principal := auth.Principal(c)

	var req teacherRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request")
	}

	req.Email = strings.TrimSpace(req.Email)
	if req.Email == "" {
		return fiber.NewError(fiber.StatusBadRequest, "Email is required")
	}

	exists, err := database.EmailExists(config.GetDB(), req.Email)
	if err != nil {
		return err
	}
	if exists {
		return fiber.NewError(fiber.StatusConflict, "Email already exists")
	}

	hash, err := auth.HashPassword(defaultPassword)
	if err != nil {
		return err
	}

	id, err := database.ProvisionTeacher(config.GetDB(), principal.UserID,
		strings.TrimSpace(req.Name), req.Email, strings.TrimSpace(req.Phone),
		strings.TrimSpace(req.Qualification), strings.TrimSpace(req.Specialization), hash)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message":          "Teacher added",
		"id":               id,
		"default_password": defaultPassword,
	})
}

func UpdateTeacherAPI(c *fiber.Ctx) error {
	principal := auth.Principal(c)
	teacherID, err := c.ParamsInt("id")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid teacher id")
	}

	if _, err := database.GetTeacherByID(config.GetDB(), teacherID, principal.UserID); err != nil {
		if err == database.ErrNotFound {
			return fiber.NewError(fiber.StatusNotFound, "Teacher not found")
		}
		return err
	}

	var req teacherRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request")
	}

	err = database.UpdateTeacher(config.GetDB(), teacherID,
		strings.TrimSpace(req.Name), strings.TrimSpace(req.Phone),
		strings.TrimSpace(req.Qualification), strings.TrimSpace(req.Specialization))
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{"message": "Teacher updated"})
}

func DeleteTeacherAPI(c *fiber.Ctx) error {
	principal := auth.Principal(c)
	teacherID, err := c.ParamsInt("id")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid teacher id")
	}

	err = database.DeleteTeacher(config.GetDB(), teacherID, principal.UserID)
	if err == database.ErrNotFound {
		return fiber.NewError(fiber.StatusNotFound, "Teacher not found")
	}
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{"message": "Teacher deleted"})
}

// ProfileAPI returns the acting teacher's profile together with their
// own subject proposals and their current statuses.
func ProfileAPI(c *fiber.Ctx) error {
	teacher, err := auth.TeacherProfile(c)
	if err != nil {
		return err
	}

	proposals, err := database.ListProposalsByTeacher(config.GetDB(), teacher.ID)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"teacher":   teacher,
		"proposals": proposals,
	})
}

func UpdateProfileAPI(c *fiber.Ctx) error {
	teacher, err := auth.TeacherProfile(c)
	if err != nil {
		return err
	}

	var req teacherRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request")
	}

	err = database.UpdateTeacher(config.GetDB(), teacher.ID,
		strings.TrimSpace(req.Name), strings.TrimSpace(req.Phone),
		strings.TrimSpace(req.Qualification), strings.TrimSpace(req.Specialization))
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{"message": "Profile updated"})
}
