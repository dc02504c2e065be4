// error_utils.go
package utils

import (
	"course-catalog/src/models"

	"github.com/gofiber/fiber/v2"
)

func HandleError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(models.ErrorResponse{
		Status:  status,
		Message: message,
	})
}

// Fail writes a {success:false} body with an optional message.
func Fail(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(models.ResultResponse{
		Success: false,
		Message: message,
	})
}

// SendText writes a plain-text body.
func SendText(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).SendString(message)
}
