package services

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/terraincognita07/habitual/internal/models"
)

type SnapshotHabitReader interface {
	ListByOwner(ctx context.Context, ownerID string) ([]models.Habit, error)
}

type SnapshotCheckInReader interface {
	ListByOwner(ctx context.Context, ownerID string) ([]models.CheckIn, error)
}

// Snapshot is every habit and check-in of one owner as of a single calendar day. Metrics
// are derived from it on demand and never stored.
type Snapshot struct {
	OwnerID  string
	Habits   []models.Habit
	CheckIns []models.CheckIn
	Today    time.Time
}

func LoadSnapshot(ctx context.Context, habits SnapshotHabitReader, checkIns SnapshotCheckInReader, ownerID string, today time.Time) (Snapshot, error) {
	ownerHabits, err := habits.ListByOwner(ctx, ownerID)
	if err != nil {
		return Snapshot{}, fmt.Errorf("%w: %v", ErrHabitLoadFailed, err)
	}
	ownerCheckIns, err := checkIns.ListByOwner(ctx, ownerID)
	if err != nil {
		return Snapshot{}, fmt.Errorf("%w: %v", ErrCheckInLoadFailed, err)
	}

	return Snapshot{
		OwnerID:  ownerID,
		Habits:   ownerHabits,
		CheckIns: ownerCheckIns,
		Today:    CalendarDay(today),
	}, nil
}

// Active returns a copy of the owner's active habit, or nil.
func (snapshot Snapshot) Active() *models.Habit {
	for index := range snapshot.Habits {
		if snapshot.Habits[index].IsActive {
			habit := snapshot.Habits[index]
			return &habit
		}
	}
	return nil
}

func (snapshot Snapshot) ActiveCheckIns() []models.CheckIn {
	habit := snapshot.Active()
	if habit == nil {
		return []models.CheckIn{}
	}
	result := make([]models.CheckIn, 0, len(snapshot.CheckIns))
	for _, checkIn := range snapshot.CheckIns {
		if checkIn.HabitID == habit.ID {
			result = append(result, checkIn)
		}
	}
	return result
}

func (snapshot Snapshot) Adherence() Adherence {
	return NewAdherence(snapshot.Active(), snapshot.CheckIns, snapshot.Today)
}

func (snapshot Snapshot) FindByDate(day time.Time) (models.CheckIn, bool) {
	return snapshot.Adherence().Lookup(day)
}

// FindRecent returns the active habit's check-ins dated less than windowDays before today,
// newest first.
func (snapshot Snapshot) FindRecent(windowDays int) []models.CheckIn {
	recent := make([]models.CheckIn, 0)
	if windowDays <= 0 {
		return recent
	}

	for _, checkIn := range snapshot.ActiveCheckIns() {
		day, err := ParseDay(checkIn.Date)
		if err != nil {
			continue
		}
		if DaysBetween(day, snapshot.Today) < windowDays {
			recent = append(recent, checkIn)
		}
	}

	sort.SliceStable(recent, func(i, j int) bool {
		return recent[i].Date > recent[j].Date
	})
	return recent
}

func (snapshot Snapshot) habitNames() map[string]string {
	names := make(map[string]string, len(snapshot.Habits))
	for _, habit := range snapshot.Habits {
		names[habit.ID] = habit.Name
	}
	return names
}
