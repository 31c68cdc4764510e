package handlers

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"designstudio/internal/repositories"
	"designstudio/internal/services"
)

// respondError maps service errors to HTTP responses: malformed ids and
// failed field validation are client errors, missing documents are 404s,
// anything else (store unreachable) is a 500.
func respondError(c *fiber.Ctx, resource string, err error) error {
	var validationErrs validator.ValidationErrors
	switch {
	case errors.Is(err, services.ErrInvalidID):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": fmt.Sprintf("Invalid %s id", resource),
			"error":   err.Error(),
		})
	case errors.As(err, &validationErrs):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": fmt.Sprintf("Validation failed for %s", resource),
			"error":   err.Error(),
		})
	case errors.Is(err, repositories.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": fmt.Sprintf("%s not found", resource),
		})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": fmt.Sprintf("Could not process %s request", resource),
			"error":   err.Error(),
		})
	}
}
