package routes

import (
	"course-catalog/src/controllers"

	"github.com/gofiber/fiber/v2"
)

// Handlers are the controllers the routes are bound to.
type Handlers struct {
	Courses    *controllers.CourseController
	OrderItems *controllers.OrderItemController
}

func InitRoutes(app *fiber.App, h Handlers) {
	CourseRoutes(app.Group("/courses"), h.Courses)
	OrderItemRoutes(app.Group("/order-items"), h.OrderItems)

	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("✅ API is running...")
	})
}
