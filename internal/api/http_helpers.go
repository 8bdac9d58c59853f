package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/habitual/internal/logger"
	"github.com/terraincognita07/habitual/internal/services"
)

func apiError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{"error": message})
}

// serviceError maps service sentinel errors to HTTP statuses. Unknown failures are logged
// and reported without detail.
func serviceError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, services.ErrInvalidSchedule),
		errors.Is(err, services.ErrInvalidDuration),
		errors.Is(err, services.ErrInvalidHabit),
		errors.Is(err, services.ErrInvalidCheckIn):
		return apiError(c, fiber.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, services.ErrNotFound):
		return apiError(c, fiber.StatusNotFound, err.Error())
	case errors.Is(err, services.ErrDuplicateCheckIn), errors.Is(err, services.ErrNoActiveHabit):
		return apiError(c, fiber.StatusConflict, err.Error())
	default:
		logger.Error("request failed", "method", c.Method(), "path", c.Path(), "err", err)
		return apiError(c, fiber.StatusInternalServerError, "internal error")
	}
}
