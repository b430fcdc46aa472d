package main

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/joho/godotenv"

	"student-management/app/config"
	"student-management/app/database"
	"student-management/app/routes/auth"
	"student-management/app/routes/dashboard"
	"student-management/app/routes/exams"
	"student-management/app/routes/results"
	"student-management/app/routes/students"
	"student-management/app/routes/subjects"
	"student-management/app/routes/teachers"
)

// errorHandler converts every handler error into a JSON notice. No
// error is fatal to the process; a failed statement aborts only the
// current request.
func errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "Internal server error"

	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
		message = e.Message
	}

	return c.Status(code).JSON(fiber.Map{
		"success": false,
		"error":   message,
		"code":    code,
	})
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment")
	}

	config.InitDB()

	// Best effort: the server still starts against a partially
	// provisioned schema.
	database.EnsureSchema(config.GetDB())

	app := fiber.New(fiber.Config{
		AppName:      "Student Management System",
		ErrorHandler: errorHandler,
	})

	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowCredentials: true,
		AllowOrigins:     config.GetEnv("CORS_ORIGINS", "http://localhost:3000"),
	}))

	auth.SetupAuthRoutes(app)
	teachers.SetupTeachersRoutes(app)
	students.SetupStudentsRoutes(app)
	subjects.SetupSubjectsRoutes(app)
	exams.SetupExamsRoutes(app)
	results.SetupResultsRoutes(app)
	dashboard.SetupDashboardRoutes(app)

	port := config.GetEnv("PORT", "3000")
	log.Printf("Server starting on port %s", port)
	if err := app.Listen(":" + port); err != nil {
		log.Fatal(err)
	}
}
