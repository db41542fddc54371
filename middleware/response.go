package middleware

import (
	"errors"

	"courseadmin/store"

	"github.com/gofiber/fiber/v2"
)

// JsonResponse writes the uniform response envelope
func JsonResponse(c *fiber.Ctx, statusCode int, status bool, message string, data interface{}) error {
	return c.Status(statusCode).JSON(fiber.Map{
		"status":  status,
		"message": message,
		"data":    data,
	})
}

// ValidationErrorResponse writes the field-error map for a rejected payload
func ValidationErrorResponse(c *fiber.Ctx, errors map[string]string) error {
	return JsonResponse(c, fiber.StatusBadRequest, false, "Validation failed!", errors)
}

// StoreErrorResponse maps normalized store errors to status codes. Raw
// store failures were already logged with detail by the store layer; the
// caller only sees the generic message.
func StoreErrorResponse(c *fiber.Ctx, err error, notFoundMsg, duplicateMsg string) error {
	switch {
	case errors.Is(err, store.ErrNotFound):
		return JsonResponse(c, fiber.StatusNotFound, false, notFoundMsg, nil)
	case errors.Is(err, store.ErrDuplicate):
		return JsonResponse(c, fiber.StatusConflict, false, duplicateMsg, nil)
	case errors.Is(err, store.ErrConflict):
		return JsonResponse(c, fiber.StatusConflict, false, "The course was modified by someone else. Reload and try again.", nil)
	default:
		return JsonResponse(c, fiber.StatusInternalServerError, false, "Something went wrong. Please try again.", nil)
	}
}
