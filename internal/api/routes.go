package api

import "github.com/gofiber/fiber/v2"

func RegisterRoutes(app *fiber.App, handler *Handler) {
	app.Get("/healthz", handler.Health)

	api := app.Group("/api", handler.AuthRequired)

	api.Get("/habit", handler.GetActiveHabit)
	habits := api.Group("/habits")
	habits.Get("", handler.ListHabits)
	habits.Post("", handler.CreateHabit)
	habits.Post("/:id/archive", handler.ArchiveHabit)
	habits.Delete("/:id", handler.DeleteHabit)

	checkIns := api.Group("/checkins")
	checkIns.Post("", handler.RecordCheckIn)
	checkIns.Get("/recent", handler.GetRecentCheckIns)
	checkIns.Get("/:date", handler.GetCheckIn)

	api.Get("/history", handler.GetHistory)
	api.Get("/stats", handler.GetStats)
	api.Get("/calendar", handler.GetCalendar)
	api.Get("/reports", handler.GetReport)
	api.Get("/insight", handler.GetInsight)
	api.Get("/quote", handler.GetQuote)
}
