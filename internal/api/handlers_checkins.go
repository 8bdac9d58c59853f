package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/habitual/internal/models"
	"github.com/terraincognita07/habitual/internal/services"
)

type checkInPayload struct {
	Date             string   `json:"date"`
	Status           string   `json:"status"`
	Challenges       []string `json:"challenges"`
	Motivations      []string `json:"motivations"`
	SabotagePatterns []string `json:"sabotage_patterns"`
	TimeOfDay        string   `json:"time_of_day"`
	EnergyLevel      *int     `json:"energy_level"`
	Satisfaction     *int     `json:"satisfaction"`
	Mood             *int     `json:"mood"`
	Reflection       string   `json:"reflection"`
}

func (payload checkInPayload) input() services.CheckInInput {
	return services.CheckInInput{
		Date:             payload.Date,
		Status:           models.CheckInStatus(payload.Status),
		Challenges:       payload.Challenges,
		Motivations:      payload.Motivations,
		SabotagePatterns: payload.SabotagePatterns,
		TimeOfDay:        payload.TimeOfDay,
		EnergyLevel:      payload.EnergyLevel,
		Satisfaction:     payload.Satisfaction,
		Mood:             payload.Mood,
		Reflection:       payload.Reflection,
	}
}

func (handler *Handler) RecordCheckIn(c *fiber.Ctx) error {
	payload := checkInPayload{}
	if err := c.BodyParser(&payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	checkIn, err := handler.checkIns.Record(c.UserContext(), currentOwner(c), payload.input(), handler.today())
	if err != nil {
		return serviceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(checkIn)
}

func (handler *Handler) GetCheckIn(c *fiber.Ctx) error {
	day, err := parseDayParam(c.Params("date"))
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid date")
	}

	checkIn, found, err := handler.checkIns.FindByDate(c.UserContext(), currentOwner(c), day)
	if err != nil {
		return serviceError(c, err)
	}
	if !found {
		return apiError(c, fiber.StatusNotFound, "no check-in for this date")
	}
	return c.JSON(checkIn)
}

func (handler *Handler) GetRecentCheckIns(c *fiber.Ctx) error {
	windowDays, err := parseWindowQuery(c.Query("days"), handler.recentWindowDays)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid days")
	}

	recent, err := handler.checkIns.FindRecent(c.UserContext(), currentOwner(c), windowDays, handler.today())
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(recent)
}
