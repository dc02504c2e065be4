package routes

import (
	"course-catalog/src/controllers"

	"github.com/gofiber/fiber/v2"
)

func OrderItemRoutes(router fiber.Router, h *controllers.OrderItemController) {
	router.Post("/", h.CreateOrderItem)
	router.Get("/", h.GetOrderItems)
	router.Get("/:id", h.GetOrderItemByID)
}
