package validators

import (
	"courseadmin/middleware"
	"courseadmin/models"

	"github.com/gofiber/fiber/v2"
)

// InstructorForm validates an instructor submission.
func InstructorForm() fiber.Handler {
	return func(c *fiber.Ctx) error {
		payload := new(struct {
			Data models.InstructorForm `json:"data"`
		})

		if err := c.BodyParser(payload); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if err := validate.Struct(&payload.Data); err != nil {
			return middleware.ValidationErrorResponse(c, fieldErrors(err))
		}

		c.Locals("instructorForm", &payload.Data)
		return c.Next()
	}
}
