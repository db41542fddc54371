package controllers

import (
	"courseadmin/middleware"
	"courseadmin/models"

	"github.com/gofiber/fiber/v2"
)

// ListTags returns all tags ordered by name, with usage counts.
func ListTags(c *fiber.Ctx) error {
	useCache := c.Query("refresh") != "true"

	tags, err := Store.Tags.List(useCache)
	if err != nil {
		return middleware.StoreErrorResponse(c, err, "No tags found!", "")
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Tags fetched successfully!", tags)
}

// GetTag returns one tag by id.
func GetTag(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Tag id is required!", nil)
	}

	tag, err := Store.Tags.GetByID(id, true)
	if err != nil {
		return middleware.StoreErrorResponse(c, err, "Tag not found!", "")
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Tag fetched successfully!", tag)
}

// CreateTag inserts a new tag.
func CreateTag(c *fiber.Ctx) error {
	form, ok := c.Locals("tagForm").(*models.TagForm)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	id, err := Store.Tags.Create(form)
	if err != nil {
		return middleware.StoreErrorResponse(c, err, "Tag not found!",
			"A tag with this name already exists!")
	}

	tag, err := Store.Tags.GetByID(id, false)
	if err != nil {
		return middleware.StoreErrorResponse(c, err, "Tag not found!", "")
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Tag created successfully!", tag)
}

// UpdateTag rewrites a tag's fields.
func UpdateTag(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Tag id is required!", nil)
	}

	form, ok := c.Locals("tagForm").(*models.TagForm)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	if err := Store.Tags.Update(id, form); err != nil {
		return middleware.StoreErrorResponse(c, err, "Tag not found!",
			"A tag with this name already exists!")
	}

	tag, err := Store.Tags.GetByID(id, false)
	if err != nil {
		return middleware.StoreErrorResponse(c, err, "Tag not found!", "")
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Tag updated successfully!", tag)
}

// DeleteTag removes a tag. Refused while any course still uses it.
func DeleteTag(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Tag id is required!", nil)
	}

	count, err := Store.Tags.UsageCount(id)
	if err != nil {
		return middleware.StoreErrorResponse(c, err, "Tag not found!", "")
	}
	if count > 0 {
		return middleware.JsonResponse(c, fiber.StatusConflict, false,
			"Cannot delete a tag that is still in use!", nil)
	}

	if err := Store.Tags.Delete(id); err != nil {
		return middleware.StoreErrorResponse(c, err, "Tag not found!", "")
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Tag deleted successfully!", nil)
}
