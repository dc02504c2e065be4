package routes

import (
	"course-catalog/src/controllers"

	"github.com/gofiber/fiber/v2"
)

// CourseRoutes mounts the course resource on any router group.
func CourseRoutes(router fiber.Router, h *controllers.CourseController) {
	router.Get("/", h.GetAllCourses)
	router.Get("/get/count", h.GetCourseCount)
	router.Get("/get/featured/:count?", h.GetFeaturedCourses)
	router.Get("/:id", h.GetCourseByID)
	router.Post("/", h.CreateCourse)
	router.Put("/:id", h.UpdateCourse)
	router.Delete("/:courseId", h.DeleteCourse)
}
