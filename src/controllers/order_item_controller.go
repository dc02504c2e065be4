package controllers

import (
	"errors"

	"course-catalog/src/models"
	"course-catalog/src/services/orderitems"
	"course-catalog/src/utils"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type OrderItemController struct {
	OrderItems *orderitems.Service
}

func NewOrderItemController(svc *orderitems.Service) *OrderItemController {
	return &OrderItemController{OrderItems: svc}
}

// CreateOrderItem godoc
// @Summary      Create an order item
// @Tags         order-items
// @Accept       json
// @Produce      json
// @Param        body body models.OrderItemInput true "Order item"
// @Success      201  {object}  models.OrderItem
// @Failure      400  {object}  models.ErrorResponse
// @Failure      500  {object}  models.ErrorResponse
// @Router       /order-items [post]
func (h *OrderItemController) CreateOrderItem(c *fiber.Ctx) error {
	var input models.OrderItemInput
	if err := c.BodyParser(&input); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input: "+err.Error())
	}
	if err := input.Validate(); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, err.Error())
	}

	item := models.OrderItem{Quantity: *input.Quantity}
	if input.Course != "" {
		id, err := primitive.ObjectIDFromHex(input.Course)
		if err != nil {
			return utils.HandleError(c, fiber.StatusBadRequest, "Invalid course id")
		}
		item.Course = &id
	}

	created, err := h.OrderItems.Create(c.UserContext(), item)
	if err != nil {
		return utils.HandleError(c, fiber.StatusInternalServerError, "Error creating order item")
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}

// GetOrderItems godoc
// @Summary      List order items
// @Tags         order-items
// @Produce      json
// @Success      200  {array}   models.OrderItem
// @Failure      500  {object}  models.ErrorResponse
// @Router       /order-items [get]
func (h *OrderItemController) GetOrderItems(c *fiber.Ctx) error {
	items, err := h.OrderItems.List(c.UserContext())
	if err != nil {
		return utils.HandleError(c, fiber.StatusInternalServerError, "Error fetching order items")
	}
	return c.JSON(items)
}

// GetOrderItemByID godoc
// @Summary      Get an order item by ID
// @Tags         order-items
// @Produce      json
// @Param        id   path  string  true  "Order item ID"
// @Success      200  {object}  models.OrderItem
// @Failure      400  {object}  models.ErrorResponse
// @Failure      404  {object}  models.ErrorResponse
// @Router       /order-items/{id} [get]
func (h *OrderItemController) GetOrderItemByID(c *fiber.Ctx) error {
	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid ID")
	}
	item, err := h.OrderItems.Get(c.UserContext(), id)
	if errors.Is(err, orderitems.ErrOrderItemNotFound) {
		return utils.HandleError(c, fiber.StatusNotFound, "Order item not found")
	}
	if err != nil {
		return utils.HandleError(c, fiber.StatusInternalServerError, err.Error())
	}
	return c.JSON(item)
}
