package auth

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"student-management/app/config"
	"student-management/app/database"
	"student-management/app/models"
)

func setSessionCookie(c *fiber.Ctx, token string) {
	c.Cookie(&fiber.Cookie{
		Name:     sessionCookie,
		Value:    token,
		Expires:  time.Now().Add(24 * time.Hour),
		HTTPOnly: true,
		SameSite: "Lax",
	})
}

func RegisterPrincipalAPI(c *fiber.Ctx) error {
	type RegisterRequest struct {
		Name     string `json:"name"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}

	var req RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request")
	}

	req.Email = strings.TrimSpace(req.Email)
	req.Password = strings.TrimSpace(req.Password)
	if req.Email == "" || req.Password == "" {
		return fiber.NewError(fiber.StatusBadRequest, "Email and password are required")
	}

	exists, err := database.EmailExists(config.GetDB(), req.Email)
	if err != nil {
		return err
	}
	if exists {
		return fiber.NewError(fiber.StatusConflict, "Email already exists")
	}

	hash, err := HashPassword(req.Password)
	if err != nil {
		return err
	}

	id, err := database.CreateUser(config.GetDB(), strings.TrimSpace(req.Name), req.Email, hash, models.RolePrincipal, false)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Principal registered. You may login now.",
		"id":      id,
	})
}

func loginUser(c *fiber.Ctx, role string) (*models.User, error) {
	type LoginRequest struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}

	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Invalid request")
	}

	user, err := database.GetUserByEmailAndRole(config.GetDB(), strings.TrimSpace(req.Email), role)
	if err == database.ErrNotFound {
		return nil, fiber.NewError(fiber.StatusUnauthorized, "Invalid credentials")
	}
	if err != nil {
		return nil, err
	}

	if !CheckPasswordHash(strings.TrimSpace(req.Password), user.Password) {
		return nil, fiber.NewError(fiber.StatusUnauthorized, "Invalid credentials")
	}
	return user, nil
}

func LoginPrincipalAPI(c *fiber.Ctx) error {
	user, err := loginUser(c, models.RolePrincipal)
	if err != nil {
		return err
	}

	token, err := GenerateSessionToken(models.PrincipalIdentity{UserID: user.ID, Name: user.Name})
	if err != nil {
		return err
	}
	setSessionCookie(c, token)

	return c.JSON(fiber.Map{
		"message": "Login successful",
		"role":    user.Role,
		"name":    user.Name,
	})
}

func LoginTeacherAPI(c *fiber.Ctx) error {
	user, err := loginUser(c, models.RoleTeacher)
	if err != nil {
		return err
	}

	token, err := GenerateSessionToken(models.TeacherIdentity{
		UserID:             user.ID,
		Name:               user.Name,
		MustChangePassword: user.MustChangePassword,
	})
	if err != nil {
		return err
	}
	setSessionCookie(c, token)

	resp := fiber.Map{
		"message": "Login successful",
		"role":    user.Role,
		"name":    user.Name,
	}
	if user.MustChangePassword {
		resp["must_change_password"] = true
		resp["message"] = "Please change your temporary password"
	}
	return c.JSON(resp)
}

func StudentLoginAPI(c *fiber.Ctx) error {
	type StudentLoginRequest struct {
		RollNo string `json:"roll_no"`
		DOB    string `json:"dob"`
	}

	var req StudentLoginRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request")
	}

	student, err := database.GetStudentByCredentials(config.GetDB(),
		strings.TrimSpace(req.RollNo), strings.TrimSpace(req.DOB))
	if err == database.ErrNotFound {
		return fiber.NewError(fiber.StatusUnauthorized, "Invalid roll number or DOB")
	}
	if err != nil {
		return err
	}

	token, err := GenerateSessionToken(models.StudentIdentity{StudentID: student.ID, Name: student.Name})
	if err != nil {
		return err
	}
	setSessionCookie(c, token)

	return c.JSON(fiber.Map{
		"message": "Login successful",
		"name":    student.Name,
	})
}

func LogoutAPI(c *fiber.Ctx) error {
	c.Cookie(&fiber.Cookie{
		Name:     sessionCookie,
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
	})
	return c.JSON(fiber.Map{"message": "Logged out successfully"})
}

// ChangePasswordAPI verifies the old password before replacing it and
// clearing the forced-change flag. The session keeps its old claims,
// so the client is told to log in again.
func ChangePasswordAPI(c *fiber.Ctx) error {
	type ChangePasswordRequest struct {
		Old string `json:"old"`
		New string `json:"new"`
	}

	var req ChangePasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request")
	}
	if strings.TrimSpace(req.New) == "" {
		return fiber.NewError(fiber.StatusBadRequest, "New password is required")
	}

	ident := CurrentIdentity(c).(models.TeacherIdentity)
	user, err := database.GetUserByID(config.GetDB(), ident.UserID)
	if err != nil {
		return err
	}

	if !CheckPasswordHash(strings.TrimSpace(req.Old), user.Password) {
		return fiber.NewError(fiber.StatusBadRequest, "Old password incorrect")
	}

	hash, err := HashPassword(strings.TrimSpace(req.New))
	if err != nil {
		return err
	}
	if err := database.UpdateUserPassword(config.GetDB(), user.ID, hash); err != nil {
		return err
	}

	return c.JSON(fiber.Map{"message": "Password changed. Please login again."})
}
