package handlers

import (
	"log"

	"institut_backend/models"

	"github.com/gofiber/fiber/v2"
)

// internalError logs the underlying failure server-side and returns a
// generic 500; the cause is never leaked to the client.
func internalError(c *fiber.Ctx, message string, err error) error {
	log.Printf("%s %s: %v", c.Method(), c.Path(), err)
	return c.Status(fiber.StatusInternalServerError).JSON(models.Error(message))
}
