package api

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/habitual/internal/services"
)

type habitPayload struct {
	Name               string `json:"name"`
	Motivation         string `json:"motivation"`
	ScheduledWeekdays  []int  `json:"scheduled_weekdays"`
	TargetDurationDays int    `json:"target_duration_days"`
	StartDate          string `json:"start_date"`
}

func (payload habitPayload) input() services.HabitInput {
	weekdays := make([]time.Weekday, 0, len(payload.ScheduledWeekdays))
	for _, weekday := range payload.ScheduledWeekdays {
		weekdays = append(weekdays, time.Weekday(weekday))
	}
	return services.HabitInput{
		Name:               payload.Name,
		Motivation:         payload.Motivation,
		ScheduledWeekdays:  weekdays,
		TargetDurationDays: payload.TargetDurationDays,
		StartDate:          payload.StartDate,
	}
}

func (handler *Handler) GetActiveHabit(c *fiber.Ctx) error {
	habit, found, err := handler.habits.GetActive(c.UserContext(), currentOwner(c))
	if err != nil {
		return serviceError(c, err)
	}
	if !found {
		return apiError(c, fiber.StatusNotFound, services.ErrNoActiveHabit.Error())
	}
	return c.JSON(habit)
}

func (handler *Handler) ListHabits(c *fiber.Ctx) error {
	habits, err := handler.habits.List(c.UserContext(), currentOwner(c))
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(habits)
}

func (handler *Handler) CreateHabit(c *fiber.Ctx) error {
	payload := habitPayload{}
	if err := c.BodyParser(&payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	habit, err := handler.habits.Create(c.UserContext(), currentOwner(c), payload.input(), handler.today())
	if err != nil {
		return serviceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(habit)
}

func (handler *Handler) ArchiveHabit(c *fiber.Ctx) error {
	habit, err := handler.habits.Archive(c.UserContext(), currentOwner(c), c.Params("id"))
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(habit)
}

func (handler *Handler) DeleteHabit(c *fiber.Ctx) error {
	if err := handler.habits.Delete(c.UserContext(), currentOwner(c), c.Params("id")); err != nil {
		return serviceError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
