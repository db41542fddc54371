package controllers

import (
	"sync"

	"courseadmin/middleware"

	"github.com/gofiber/fiber/v2"
)

// DashboardStats fetches the three catalog listings concurrently and
// reports their sizes. One failing fetch does not block the other two:
// its section reports -1 and the response is flagged partial.
func DashboardStats(c *fiber.Ctx) error {
	var (
		wg          sync.WaitGroup
		courses     int64 = -1
		instructors int64 = -1
		tags        int64 = -1
	)

	wg.Add(3)
	go func() {
		defer wg.Done()
		if list, err := Store.Courses.List(true); err == nil {
			courses = int64(len(list))
		}
	}()
	go func() {
		defer wg.Done()
		if list, err := Store.Instructors.List(true); err == nil {
			instructors = int64(len(list))
		}
	}()
	go func() {
		defer wg.Done()
		if list, err := Store.Tags.List(true); err == nil {
			tags = int64(len(list))
		}
	}()
	wg.Wait()

	partial := courses < 0 || instructors < 0 || tags < 0

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Stats fetched successfully!", fiber.Map{
		"totalCourses":     courses,
		"totalInstructors": instructors,
		"totalTags":        tags,
		"partial":          partial,
	})
}
