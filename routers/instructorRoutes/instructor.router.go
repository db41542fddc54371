package instructorRoutes

import (
	"courseadmin/controllers"
	"courseadmin/validators"

	"github.com/gofiber/fiber/v2"
)

// SetupInstructorRoutes sets up the instructor routes
func SetupInstructorRoutes(app *fiber.App) {
	instructorGroup := app.Group("/instructors")

	instructorGroup.Get("/", controllers.ListInstructors)
	instructorGroup.Get("/:id", controllers.GetInstructor)
	instructorGroup.Get("/:id/courses", controllers.CoursesByInstructor)
	instructorGroup.Post("/", validators.InstructorForm(), controllers.CreateInstructor)
	instructorGroup.Patch("/:id", validators.InstructorForm(), controllers.UpdateInstructor)
	instructorGroup.Delete("/:id", controllers.DeleteInstructor)
}
