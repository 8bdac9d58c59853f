package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/habitual/internal/services"
)

func (handler *Handler) GetReport(c *fiber.Ctx) error {
	snapshot, err := handler.checkIns.Snapshot(c.UserContext(), currentOwner(c), handler.today())
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(services.BuildReport(snapshot))
}

func (handler *Handler) GetHistory(c *fiber.Ctx) error {
	snapshot, err := handler.checkIns.Snapshot(c.UserContext(), currentOwner(c), handler.today())
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(services.BuildHistory(snapshot))
}
