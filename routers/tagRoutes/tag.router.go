package tagRoutes

import (
	"courseadmin/controllers"
	"courseadmin/validators"

	"github.com/gofiber/fiber/v2"
)

// SetupTagRoutes sets up the tag routes
func SetupTagRoutes(app *fiber.App) {
	tagGroup := app.Group("/tags")

	tagGroup.Get("/", controllers.ListTags)
	tagGroup.Get("/:id", controllers.GetTag)
	tagGroup.Post("/", validators.TagForm(), controllers.CreateTag)
	tagGroup.Patch("/:id", validators.TagForm(), controllers.UpdateTag)
	tagGroup.Delete("/:id", controllers.DeleteTag)
}
