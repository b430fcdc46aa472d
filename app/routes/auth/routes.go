package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"student-management/app/config"
	"student-management/app/database"
	"student-management/app/models"
)

func SetupAuthRoutes(app *fiber.App) {
	app.Post("/register/principal", RegisterPrincipalAPI)
	app.Post("/login/principal", LoginPrincipalAPI)
	app.Post("/login/teacher", LoginTeacherAPI)
	app.Post("/student/login", StudentLoginAPI)
	app.Post("/logout", LogoutAPI)

	// The change-password route skips the password gate so a freshly
	// provisioned teacher can clear the flag.
	app.Post("/teacher/change-password", AuthMiddleware, RequireTeacher, ChangePasswordAPI)
}

// AuthMiddleware validates the session token and attaches the caller's
// identity to the request.
func AuthMiddleware(c *fiber.Ctx) error {
	tokenString := c.Cookies(sessionCookie)

	if tokenString == "" {
		auth := c.Get("Authorization")
		if strings.HasPrefix(auth, "Bearer ") {
			tokenString = strings.TrimPrefix(auth, "Bearer ")
		}
	}

	if tokenString == "" {
		return fiber.NewError(fiber.StatusUnauthorized, "Please login first")
	}

	claims, err := ValidateSessionToken(tokenString)
	if err != nil {
		return fiber.NewError(fiber.StatusUnauthorized, "Please login first")
	}

	ident, err := IdentityFromClaims(claims)
	if err != nil {
		return fiber.NewError(fiber.StatusUnauthorized, "Please login first")
	}

	c.Locals("identity", ident)
	return c.Next()
}

// CurrentIdentity returns the identity attached by AuthMiddleware.
func CurrentIdentity(c *fiber.Ctx) models.Identity {
	ident, _ := c.Locals("identity").(models.Identity)
	return ident
}

// RequirePrincipal gates an operation to principals. The denial
// message never states whether the target resource exists.
func RequirePrincipal(c *fiber.Ctx) error {
	if _, ok := CurrentIdentity(c).(models.PrincipalIdentity); !ok {
		return fiber.NewError(fiber.StatusForbidden, "Access denied")
	}
	return c.Next()
}

func RequireTeacher(c *fiber.Ctx) error {
	if _, ok := CurrentIdentity(c).(models.TeacherIdentity); !ok {
		return fiber.NewError(fiber.StatusForbidden, "Access denied")
	}
	return c.Next()
}

func RequireStudent(c *fiber.Ctx) error {
	if _, ok := CurrentIdentity(c).(models.StudentIdentity); !ok {
		return fiber.NewError(fiber.StatusForbidden, "Access denied")
	}
	return c.Next()
}

// PasswordGate blocks a teacher who still carries a provisioning
// password from everything except the change-password operation.
func PasswordGate(c *fiber.Ctx) error {
	if ident, ok := CurrentIdentity(c).(models.TeacherIdentity); ok && ident.MustChangePassword {
		return fiber.NewError(fiber.StatusForbidden, "Please change your temporary password")
	}
	return c.Next()
}

// Principal returns the principal identity; the route must be guarded
// by RequirePrincipal.
func Principal(c *fiber.Ctx) models.PrincipalIdentity {
	return CurrentIdentity(c).(models.PrincipalIdentity)
}

func Student(c *fiber.Ctx) models.StudentIdentity {
	return CurrentIdentity(c).(models.StudentIdentity)
}

// TeacherProfile resolves the acting teacher's profile row. Provisioned
// accounts without a profile get a 403 telling them to complete it.
func TeacherProfile(c *fiber.Ctx) (*models.Teacher, error) {
	ident := CurrentIdentity(c).(models.TeacherIdentity)
	teacher, err := database.GetTeacherByUserID(config.GetDB(), ident.UserID)
	if err == database.ErrNotFound {
		return nil, fiber.NewError(fiber.StatusForbidden, "Please complete your teacher profile")
	}
	if err != nil {
		return nil, err
	}
	return teacher, nil
}
