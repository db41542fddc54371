package controllers

import (
	"courseadmin/middleware"
	"courseadmin/models"

	"github.com/gofiber/fiber/v2"
)

// ListInstructors returns all instructors ordered by name, with course counts.
func ListInstructors(c *fiber.Ctx) error {
	useCache := c.Query("refresh") != "true"

	instructors, err := Store.Instructors.List(useCache)
	if err != nil {
		return middleware.StoreErrorResponse(c, err, "No instructors found!", "")
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Instructors fetched successfully!", instructors)
}

// GetInstructor returns one instructor by id.
func GetInstructor(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Instructor id is required!", nil)
	}

	instructor, err := Store.Instructors.GetByID(id, true)
	if err != nil {
		return middleware.StoreErrorResponse(c, err, "Instructor not found!", "")
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Instructor fetched successfully!", instructor)
}

// CreateInstructor inserts a new instructor.
func CreateInstructor(c *fiber.Ctx) error {
	form, ok := c.Locals("instructorForm").(*models.InstructorForm)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	id, err := Store.Instructors.Create(form)
	if err != nil {
		return middleware.StoreErrorResponse(c, err, "Instructor not found!",
			"An instructor with this email already exists!")
	}

	instructor, err := Store.Instructors.GetByID(id, false)
	if err != nil {
		return middleware.StoreErrorResponse(c, err, "Instructor not found!", "")
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Instructor created successfully!", instructor)
}

// UpdateInstructor rewrites an instructor's fields.
func UpdateInstructor(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Instructor id is required!", nil)
	}

	form, ok := c.Locals("instructorForm").(*models.InstructorForm)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	if err := Store.Instructors.Update(id, form); err != nil {
		return middleware.StoreErrorResponse(c, err, "Instructor not found!",
			"An instructor with this email already exists!")
	}

	instructor, err := Store.Instructors.GetByID(id, false)
	if err != nil {
		return middleware.StoreErrorResponse(c, err, "Instructor not found!", "")
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Instructor updated successfully!", instructor)
}

// DeleteInstructor removes an instructor. Refused while the instructor
// still owns courses.
func DeleteInstructor(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Instructor id is required!", nil)
	}

	count, err := Store.Instructors.CourseCount(id)
	if err != nil {
		return middleware.StoreErrorResponse(c, err, "Instructor not found!", "")
	}
	if count > 0 {
		return middleware.JsonResponse(c, fiber.StatusConflict, false,
			"Cannot delete an instructor who still owns courses!", nil)
	}

	if err := Store.Instructors.Delete(id); err != nil {
		return middleware.StoreErrorResponse(c, err, "Instructor not found!", "")
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Instructor deleted successfully!", nil)
}
