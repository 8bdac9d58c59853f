package api

import "github.com/gofiber/fiber/v2"

func (handler *Handler) GetInsight(c *fiber.Ctx) error {
	snapshot, err := handler.checkIns.Snapshot(c.UserContext(), currentOwner(c), handler.today())
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(handler.insights.Insight(c.UserContext(), snapshot))
}

func (handler *Handler) GetQuote(c *fiber.Ctx) error {
	quote := handler.quotes.Today(c.UserContext(), currentOwner(c), handler.today())
	return c.JSON(fiber.Map{
		"date":    quote.Date,
		"content": quote.Content,
	})
}
