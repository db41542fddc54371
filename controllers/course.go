package controllers

import (
	"errors"

	"courseadmin/middleware"
	"courseadmin/models"
	"courseadmin/store"

	"github.com/gofiber/fiber/v2"
)

// ListCourses returns every course with its full aggregate, newest first.
// ?refresh=true bypasses the cache read and forces a fresh fetch.
func ListCourses(c *fiber.Ctx) error {
	useCache := c.Query("refresh") != "true"

	courses, err := Store.Courses.List(useCache)
	if err != nil {
		return middleware.StoreErrorResponse(c, err, "No courses found!", "")
	}

	if len(courses) == 0 {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "No courses found!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Courses fetched successfully!", courses)
}

// GetCourse returns one course by id.
func GetCourse(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Course id is required!", nil)
	}

	course, err := Store.Courses.GetByID(id, true)
	if err != nil {
		return middleware.StoreErrorResponse(c, err, "Course not found!", "")
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course fetched successfully!", course)
}

// CreateCourse fans the submission out into the course aggregate.
func CreateCourse(c *fiber.Ctx) error {
	form, ok := c.Locals("courseForm").(*models.CourseForm)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	id, err := Store.Courses.Create(form)
	if err != nil {
		return middleware.StoreErrorResponse(c, err, "Course not found!", "")
	}

	course, err := Store.Courses.GetByID(id, false)
	if err != nil {
		return middleware.StoreErrorResponse(c, err, "Course not found!", "")
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course created successfully!", course)
}

// UpdateCourse replaces the course's children wholesale from the submission.
func UpdateCourse(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Course id is required!", nil)
	}

	form, ok := c.Locals("courseForm").(*models.CourseForm)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	if err := Store.Courses.Update(id, form); err != nil {
		return middleware.StoreErrorResponse(c, err, "Course not found!", "")
	}

	course, err := Store.Courses.GetByID(id, false)
	if err != nil {
		return middleware.StoreErrorResponse(c, err, "Course not found!", "")
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course updated successfully!", course)
}

// DeleteCourse removes the course and everything it owns.
func DeleteCourse(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Course id is required!", nil)
	}

	if err := Store.Courses.Delete(id); err != nil {
		return middleware.StoreErrorResponse(c, err, "Course not found!", "")
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course deleted successfully!", nil)
}

// CoursesByInstructor lists one instructor's courses.
func CoursesByInstructor(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Instructor id is required!", nil)
	}

	if _, err := Store.Instructors.GetByID(id, true); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Instructor not found!", nil)
		}
		return middleware.StoreErrorResponse(c, err, "Instructor not found!", "")
	}

	courses, err := Store.Courses.ListByInstructor(id)
	if err != nil {
		return middleware.StoreErrorResponse(c, err, "Instructor not found!", "")
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Courses fetched successfully!", courses)
}
