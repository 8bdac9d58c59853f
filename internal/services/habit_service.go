package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/terraincognita07/habitual/internal/logger"
	"github.com/terraincognita07/habitual/internal/metrics"
	"github.com/terraincognita07/habitual/internal/models"
)

// maxStartDateOffsetDays bounds how far a habit's start may lie from today either way.
const maxStartDateOffsetDays = 366

type HabitInput struct {
	Name               string
	Motivation         string
	ScheduledWeekdays  []time.Weekday
	TargetDurationDays int
	StartDate          string
}

type HabitRepository interface {
	ListByOwner(ctx context.Context, ownerID string) ([]models.Habit, error)
	FindActive(ctx context.Context, ownerID string) (models.Habit, bool, error)
	FindByOwnerAndID(ctx context.Context, ownerID string, habitID string) (models.Habit, bool, error)
	ReplaceActive(ctx context.Context, habit *models.Habit) error
	Update(ctx context.Context, habitID string, patch map[string]any) (models.Habit, error)
	DeleteWithCheckIns(ctx context.Context, ownerID string, habitID string) error
}

type HabitService struct {
	habits HabitRepository
}

func NewHabitService(habits HabitRepository) *HabitService {
	return &HabitService{habits: habits}
}

func (service *HabitService) GetActive(ctx context.Context, ownerID string) (models.Habit, bool, error) {
	habit, found, err := service.habits.FindActive(ctx, ownerID)
	if err != nil {
		return models.Habit{}, false, fmt.Errorf("%w: %v", ErrHabitLoadFailed, err)
	}
	return habit, found, nil
}

func (service *HabitService) List(ctx context.Context, ownerID string) ([]models.Habit, error) {
	habits, err := service.habits.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrHabitLoadFailed, err)
	}
	return habits, nil
}

func ValidateHabitInput(input HabitInput, today time.Time) (HabitInput, error) {
	weekdays, ok := NormalizeWeekdays(input.ScheduledWeekdays)
	if !ok {
		return HabitInput{}, ErrInvalidSchedule
	}
	if !models.IsValidDuration(input.TargetDurationDays) {
		return HabitInput{}, ErrInvalidDuration
	}

	name := strings.TrimSpace(input.Name)
	if name == "" {
		return HabitInput{}, fmt.Errorf("%w: name is required", ErrInvalidHabit)
	}

	startDate := strings.TrimSpace(input.StartDate)
	if startDate == "" {
		startDate = FormatDay(CalendarDay(today))
	} else {
		start, err := ParseDay(startDate)
		if err != nil {
			return HabitInput{}, fmt.Errorf("%w: start date must be YYYY-MM-DD", ErrInvalidHabit)
		}
		if offset := DaysBetween(today, start); offset < -maxStartDateOffsetDays || offset > maxStartDateOffsetDays {
			return HabitInput{}, fmt.Errorf("%w: start date must be within %d days of today", ErrInvalidHabit, maxStartDateOffsetDays)
		}
	}

	return HabitInput{
		Name:               name,
		Motivation:         strings.TrimSpace(input.Motivation),
		ScheduledWeekdays:  weekdays,
		TargetDurationDays: input.TargetDurationDays,
		StartDate:          startDate,
	}, nil
}

// Create makes the habit the owner's only active habit. Any previously active habit is
// archived in the same transaction.
func (service *HabitService) Create(ctx context.Context, ownerID string, input HabitInput, today time.Time) (models.Habit, error) {
	normalized, err := ValidateHabitInput(input, today)
	if err != nil {
		return models.Habit{}, err
	}

	habit := models.Habit{
		ID:                 uuid.NewString(),
		OwnerID:            ownerID,
		Name:               normalized.Name,
		Motivation:         normalized.Motivation,
		ScheduledWeekdays:  normalized.ScheduledWeekdays,
		TargetDurationDays: normalized.TargetDurationDays,
		StartDate:          normalized.StartDate,
		IsActive:           true,
	}
	if err := service.habits.ReplaceActive(ctx, &habit); err != nil {
		return models.Habit{}, fmt.Errorf("%w: %v", ErrHabitSaveFailed, err)
	}

	metrics.HabitsCreated.Inc()
	logger.Debug("habit created", "owner", ownerID, "habit", habit.ID)
	return habit, nil
}

func (service *HabitService) Archive(ctx context.Context, ownerID string, habitID string) (models.Habit, error) {
	habit, found, err := service.habits.FindByOwnerAndID(ctx, ownerID, habitID)
	if err != nil {
		return models.Habit{}, fmt.Errorf("%w: %v", ErrHabitLoadFailed, err)
	}
	if !found {
		return models.Habit{}, ErrNotFound
	}
	if !habit.IsActive {
		return habit, nil
	}

	archived, err := service.habits.Update(ctx, habit.ID, map[string]any{"is_active": false})
	if errors.Is(err, models.ErrRecordNotFound) {
		return models.Habit{}, ErrNotFound
	}
	if err != nil {
		return models.Habit{}, fmt.Errorf("%w: %v", ErrHabitSaveFailed, err)
	}

	metrics.HabitsArchived.Inc()
	return archived, nil
}

// Delete removes the habit together with all of its check-ins.
func (service *HabitService) Delete(ctx context.Context, ownerID string, habitID string) error {
	err := service.habits.DeleteWithCheckIns(ctx, ownerID, habitID)
	if errors.Is(err, models.ErrRecordNotFound) {
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("%w: %v", ErrHabitSaveFailed, err)
	}
	logger.Debug("habit deleted", "owner", ownerID, "habit", habitID)
	return nil
}
