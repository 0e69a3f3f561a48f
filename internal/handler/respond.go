package handler

import (
	"go-warehouse-api/internal/apperr"

	"github.com/gofiber/fiber/v2"
)

// Every response is the same envelope: {success, data?, message?, error?}.

func respondOK(c *fiber.Ctx, data interface{}) error {
	return c.JSON(fiber.Map{"success": true, "data": data})
}

func respondMessage(c *fiber.Ctx, status int, message string, data interface{}) error {
	body := fiber.Map{"success": true, "message": message}
	if data != nil {
		body["data"] = data
	}
	return c.Status(status).JSON(body)
}

// respondList includes the count alongside the data, matching what the web
// client expects from listing endpoints.
func respondList(c *fiber.Ctx, count int, data interface{}) error {
	return c.JSON(fiber.Map{"success": true, "count": count, "data": data})
}

func respondError(c *fiber.Ctx, err error) error {
	status := apperr.Status(err)
	body := fiber.Map{"success": false, "message": apperr.Message(err)}
	if status == fiber.StatusInternalServerError {
		body["error"] = err.Error()
	}
	return c.Status(status).JSON(body)
}

func respondBadRequest(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": message})
}

// Helpers for user info placed in the request context by RequireAuth.

func getUserID(c *fiber.Ctx) string {
	if id, ok := c.Locals("user_id").(string); ok {
		return id
	}
	return ""
}

// getActor returns the display name used for audit columns and broadcasts.
func getActor(c *fiber.Ctx) string {
	if name, ok := c.Locals("user_name").(string); ok && name != "" {
		return name
	}
	return "System"
}
