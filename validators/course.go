package validators

import (
	"courseadmin/middleware"
	"courseadmin/models"

	"github.com/gofiber/fiber/v2"
)

// CourseForm validates a course submission (create and update share the
// shape: the form always carries the full desired module/lesson/tag tree).
func CourseForm() fiber.Handler {
	return func(c *fiber.Ctx) error {
		payload := new(struct {
			Data models.CourseForm `json:"data"`
		})

		if err := c.BodyParser(payload); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if err := validate.Struct(&payload.Data); err != nil {
			return middleware.ValidationErrorResponse(c, fieldErrors(err))
		}

		c.Locals("courseForm", &payload.Data)
		return c.Next()
	}
}
