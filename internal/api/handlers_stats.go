package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/habitual/internal/models"
	"github.com/terraincognita07/habitual/internal/services"
)

type statsResponse struct {
	Habit          *models.Habit   `json:"habit"`
	Streak         int             `json:"streak"`
	SuccessRate    int             `json:"success_rate"`
	DaysActive     int             `json:"days_active"`
	CheckIns       int             `json:"check_ins"`
	CheckedInToday bool            `json:"checked_in_today"`
	TodayCheckIn   *models.CheckIn `json:"today_check_in"`
}

type CalendarDay struct {
	Date        string               `json:"date"`
	Day         int                  `json:"day"`
	InMonth     bool                 `json:"in_month"`
	IsToday     bool                 `json:"is_today"`
	IsScheduled bool                 `json:"is_scheduled"`
	HasCheckIn  bool                 `json:"has_check_in"`
	Status      models.CheckInStatus `json:"status,omitempty"`
}

func (handler *Handler) GetStats(c *fiber.Ctx) error {
	snapshot, err := handler.checkIns.Snapshot(c.UserContext(), currentOwner(c), handler.today())
	if err != nil {
		return serviceError(c, err)
	}

	adherence := snapshot.Adherence()
	summary := adherence.Summary()
	response := statsResponse{
		Habit:       snapshot.Active(),
		Streak:      summary.Streak,
		SuccessRate: summary.SuccessRate,
		DaysActive:  summary.DaysActive,
		CheckIns:    summary.CheckIns,
	}
	if checkIn, ok := adherence.Lookup(snapshot.Today); ok {
		response.CheckedInToday = true
		response.TodayCheckIn = &checkIn
	}
	return c.JSON(response)
}

func (handler *Handler) GetCalendar(c *fiber.Ctx) error {
	today := handler.today()
	month, err := parseMonthQuery(c.Query("month"), today)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid month")
	}

	snapshot, err := handler.checkIns.Snapshot(c.UserContext(), currentOwner(c), today)
	if err != nil {
		return serviceError(c, err)
	}

	days := make([]CalendarDay, 0, 42)
	for state := range snapshot.Adherence().CalendarGrid(month) {
		days = append(days, calendarDayView(state))
	}
	return c.JSON(fiber.Map{
		"month": month.Format("2006-01"),
		"days":  days,
	})
}

func calendarDayView(state services.CalendarDayState) CalendarDay {
	return CalendarDay{
		Date:        state.DateString,
		Day:         state.Day,
		InMonth:     state.InMonth,
		IsToday:     state.IsToday,
		IsScheduled: state.IsScheduled,
		HasCheckIn:  state.HasCheckIn,
		Status:      state.Status,
	}
}
