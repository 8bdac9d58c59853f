package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/terraincognita07/habitual/internal/metrics"
	"github.com/terraincognita07/habitual/internal/models"
)

type CheckInInput struct {
	Date             string
	Status           models.CheckInStatus
	Challenges       []string
	Motivations      []string
	SabotagePatterns []string
	TimeOfDay        string
	EnergyLevel      *int
	Satisfaction     *int
	Mood             *int
	Reflection       string
}

type CheckInRepository interface {
	ListByOwner(ctx context.Context, ownerID string) ([]models.CheckIn, error)
	FindByHabitAndDate(ctx context.Context, habitID string, date string) (models.CheckIn, bool, error)
	Create(ctx context.Context, checkIn *models.CheckIn) error
}

type CheckInHabitReader interface {
	ListByOwner(ctx context.Context, ownerID string) ([]models.Habit, error)
	FindActive(ctx context.Context, ownerID string) (models.Habit, bool, error)
}

type CheckInService struct {
	habits   CheckInHabitReader
	checkIns CheckInRepository
}

func NewCheckInService(habits CheckInHabitReader, checkIns CheckInRepository) *CheckInService {
	return &CheckInService{
		habits:   habits,
		checkIns: checkIns,
	}
}

func (service *CheckInService) Snapshot(ctx context.Context, ownerID string, today time.Time) (Snapshot, error) {
	return LoadSnapshot(ctx, service.habits, service.checkIns, ownerID, today)
}

func ValidateCheckInInput(input CheckInInput, today time.Time) (CheckInInput, error) {
	today = CalendarDay(today)

	status := models.CheckInStatus(strings.ToLower(strings.TrimSpace(string(input.Status))))
	if !models.IsValidStatus(status) {
		return CheckInInput{}, fmt.Errorf("%w: status must be completed, partial or missed", ErrInvalidCheckIn)
	}

	timeOfDay := strings.ToLower(strings.TrimSpace(input.TimeOfDay))
	if !models.IsValidTimeOfDay(timeOfDay) {
		return CheckInInput{}, fmt.Errorf("%w: time of day must be morning, afternoon or evening", ErrInvalidCheckIn)
	}

	for name, level := range map[string]*int{
		"energy level": input.EnergyLevel,
		"satisfaction": input.Satisfaction,
		"mood":         input.Mood,
	} {
		if level != nil && (*level < models.MinLevel || *level > models.MaxLevel) {
			return CheckInInput{}, fmt.Errorf("%w: %s must be between %d and %d", ErrInvalidCheckIn, name, models.MinLevel, models.MaxLevel)
		}
	}

	day := today
	if raw := strings.TrimSpace(input.Date); raw != "" {
		parsed, err := ParseDay(raw)
		if err != nil {
			return CheckInInput{}, fmt.Errorf("%w: date must be YYYY-MM-DD", ErrInvalidCheckIn)
		}
		day = parsed
	}
	if day.After(today) {
		return CheckInInput{}, fmt.Errorf("%w: date cannot be in the future", ErrInvalidCheckIn)
	}

	return CheckInInput{
		Date:             FormatDay(day),
		Status:           status,
		Challenges:       NormalizeTags(input.Challenges),
		Motivations:      NormalizeTags(input.Motivations),
		SabotagePatterns: NormalizeTags(input.SabotagePatterns),
		TimeOfDay:        timeOfDay,
		EnergyLevel:      input.EnergyLevel,
		Satisfaction:     input.Satisfaction,
		Mood:             input.Mood,
		Reflection:       strings.TrimSpace(input.Reflection),
	}, nil
}

// Record stores a check-in for the owner's active habit. Only one check-in per habit and
// date is accepted; the unique index settles races between concurrent writers.
func (service *CheckInService) Record(ctx context.Context, ownerID string, input CheckInInput, today time.Time) (models.CheckIn, error) {
	normalized, err := ValidateCheckInInput(input, today)
	if err != nil {
		return models.CheckIn{}, err
	}

	habit, found, err := service.habits.FindActive(ctx, ownerID)
	if err != nil {
		return models.CheckIn{}, fmt.Errorf("%w: %v", ErrHabitLoadFailed, err)
	}
	if !found {
		return models.CheckIn{}, ErrNoActiveHabit
	}
	// ISO dates order lexically.
	if normalized.Date < habit.StartDate {
		return models.CheckIn{}, fmt.Errorf("%w: date is before the habit started on %s", ErrInvalidCheckIn, habit.StartDate)
	}

	_, exists, err := service.checkIns.FindByHabitAndDate(ctx, habit.ID, normalized.Date)
	if err != nil {
		return models.CheckIn{}, fmt.Errorf("%w: %v", ErrCheckInLoadFailed, err)
	}
	if exists {
		metrics.DuplicateCheckIns.Inc()
		return models.CheckIn{}, ErrDuplicateCheckIn
	}

	checkIn := models.CheckIn{
		ID:               uuid.NewString(),
		HabitID:          habit.ID,
		OwnerID:          ownerID,
		Date:             normalized.Date,
		Status:           normalized.Status,
		Challenges:       normalized.Challenges,
		Motivations:      normalized.Motivations,
		SabotagePatterns: normalized.SabotagePatterns,
		TimeOfDay:        normalized.TimeOfDay,
		EnergyLevel:      normalized.EnergyLevel,
		Satisfaction:     normalized.Satisfaction,
		Mood:             normalized.Mood,
		Reflection:       normalized.Reflection,
	}
	if err := service.checkIns.Create(ctx, &checkIn); err != nil {
		if errors.Is(err, models.ErrDuplicateRecord) {
			metrics.DuplicateCheckIns.Inc()
			return models.CheckIn{}, ErrDuplicateCheckIn
		}
		return models.CheckIn{}, fmt.Errorf("%w: %v", ErrCheckInSaveFailed, err)
	}

	metrics.CheckInsRecorded.WithLabelValues(string(checkIn.Status)).Inc()
	return checkIn, nil
}

func (service *CheckInService) FindByDate(ctx context.Context, ownerID string, day time.Time) (models.CheckIn, bool, error) {
	habit, found, err := service.habits.FindActive(ctx, ownerID)
	if err != nil {
		return models.CheckIn{}, false, fmt.Errorf("%w: %v", ErrHabitLoadFailed, err)
	}
	if !found {
		return models.CheckIn{}, false, nil
	}

	checkIn, found, err := service.checkIns.FindByHabitAndDate(ctx, habit.ID, FormatDay(CalendarDay(day)))
	if err != nil {
		return models.CheckIn{}, false, fmt.Errorf("%w: %v", ErrCheckInLoadFailed, err)
	}
	return checkIn, found, nil
}

func (service *CheckInService) FindRecent(ctx context.Context, ownerID string, windowDays int, today time.Time) ([]models.CheckIn, error) {
	snapshot, err := service.Snapshot(ctx, ownerID, today)
	if err != nil {
		return nil, err
	}
	return snapshot.FindRecent(windowDays), nil
}
