package courseRoutes

import (
	"courseadmin/controllers"
	"courseadmin/validators"

	"github.com/gofiber/fiber/v2"
)

// SetupCourseRoutes sets up the course and dashboard routes
func SetupCourseRoutes(app *fiber.App) {
	courseGroup := app.Group("/courses")

	courseGroup.Get("/", controllers.ListCourses)
	courseGroup.Get("/:id", controllers.GetCourse)
	courseGroup.Post("/", validators.CourseForm(), controllers.CreateCourse)
	courseGroup.Patch("/:id", validators.CourseForm(), controllers.UpdateCourse)
	courseGroup.Delete("/:id", controllers.DeleteCourse)

	dashGroup := app.Group("/dashboard")
	dashGroup.Get("/stats", controllers.DashboardStats)
}
