package services

import (
	"context"
	"sort"
	"time"

	"github.com/terraincognita07/habitual/internal/models"
)

func mustDay(raw string) time.Time {
	day, err := ParseDay(raw)
	if err != nil {
		panic(err)
	}
	return day
}

func intPtr(value int) *int {
	return &value
}

type habitRepositoryStub struct {
	habits    map[string]models.Habit
	checkIns  *checkInRepositoryStub
	listErr   error
	findErr   error
	createErr error
	updateErr error
	deleteErr error
}

func newHabitRepositoryStub(checkIns *checkInRepositoryStub) *habitRepositoryStub {
	return &habitRepositoryStub{
		habits:   make(map[string]models.Habit),
		checkIns: checkIns,
	}
}

func (stub *habitRepositoryStub) ListByOwner(_ context.Context, ownerID string) ([]models.Habit, error) {
	if stub.listErr != nil {
		return nil, stub.listErr
	}
	habits := make([]models.Habit, 0)
	for _, habit := range stub.habits {
		if habit.OwnerID == ownerID {
			habits = append(habits, habit)
		}
	}
	sort.Slice(habits, func(i, j int) bool {
		if habits[i].IsActive != habits[j].IsActive {
			return habits[i].IsActive
		}
		return habits[i].StartDate > habits[j].StartDate
	})
	return habits, nil
}

func (stub *habitRepositoryStub) FindActive(_ context.Context, ownerID string) (models.Habit, bool, error) {
	if stub.findErr != nil {
		return models.Habit{}, false, stub.findErr
	}
	for _, habit := range stub.habits {
		if habit.OwnerID == ownerID && habit.IsActive {
			return habit, true, nil
		}
	}
	return models.Habit{}, false, nil
}

func (stub *habitRepositoryStub) FindByOwnerAndID(_ context.Context, ownerID string, habitID string) (models.Habit, bool, error) {
	if stub.findErr != nil {
		return models.Habit{}, false, stub.findErr
	}
	habit, ok := stub.habits[habitID]
	if !ok || habit.OwnerID != ownerID {
		return models.Habit{}, false, nil
	}
	return habit, true, nil
}

func (stub *habitRepositoryStub) ReplaceActive(_ context.Context, habit *models.Habit) error {
	if stub.createErr != nil {
		return stub.createErr
	}
	for id, existing := range stub.habits {
		if existing.OwnerID == habit.OwnerID && existing.IsActive {
			existing.IsActive = false
			stub.habits[id] = existing
		}
	}
	habit.IsActive = true
	stub.habits[habit.ID] = *habit
	return nil
}

func (stub *habitRepositoryStub) Update(_ context.Context, habitID string, patch map[string]any) (models.Habit, error) {
	if stub.updateErr != nil {
		return models.Habit{}, stub.updateErr
	}
	habit, ok := stub.habits[habitID]
	if !ok {
		return models.Habit{}, models.ErrRecordNotFound
	}
	if active, ok := patch["is_active"].(bool); ok {
		habit.IsActive = active
	}
	stub.habits[habitID] = habit
	return habit, nil
}

func (stub *habitRepositoryStub) DeleteWithCheckIns(_ context.Context, ownerID string, habitID string) error {
	if stub.deleteErr != nil {
		return stub.deleteErr
	}
	habit, ok := stub.habits[habitID]
	if !ok || habit.OwnerID != ownerID {
		return models.ErrRecordNotFound
	}
	delete(stub.habits, habitID)
	if stub.checkIns != nil {
		kept := stub.checkIns.entries[:0]
		for _, checkIn := range stub.checkIns.entries {
			if checkIn.HabitID != habitID {
				kept = append(kept, checkIn)
			}
		}
		stub.checkIns.entries = kept
	}
	return nil
}

type checkInRepositoryStub struct {
	entries   []models.CheckIn
	listErr   error
	findErr   error
	createErr error
	// hideExisting makes FindByHabitAndDate miss so Create must detect the conflict.
	hideExisting bool
}

func (stub *checkInRepositoryStub) ListByOwner(_ context.Context, ownerID string) ([]models.CheckIn, error) {
	if stub.listErr != nil {
		return nil, stub.listErr
	}
	result := make([]models.CheckIn, 0)
	for _, checkIn := range stub.entries {
		if checkIn.OwnerID == ownerID {
			result = append(result, checkIn)
		}
	}
	return result, nil
}

func (stub *checkInRepositoryStub) FindByHabitAndDate(_ context.Context, habitID string, date string) (models.CheckIn, bool, error) {
	if stub.findErr != nil {
		return models.CheckIn{}, false, stub.findErr
	}
	if stub.hideExisting {
		return models.CheckIn{}, false, nil
	}
	for _, checkIn := range stub.entries {
		if checkIn.HabitID == habitID && checkIn.Date == date {
			return checkIn, true, nil
		}
	}
	return models.CheckIn{}, false, nil
}

func (stub *checkInRepositoryStub) Create(_ context.Context, checkIn *models.CheckIn) error {
	if stub.createErr != nil {
		return stub.createErr
	}
	for _, existing := range stub.entries {
		if existing.HabitID == checkIn.HabitID && existing.Date == checkIn.Date {
			return models.ErrDuplicateRecord
		}
	}
	checkIn.CreatedAt = time.Now()
	stub.entries = append(stub.entries, *checkIn)
	return nil
}

func (stub *checkInRepositoryStub) countByHabit(habitID string) int {
	count := 0
	for _, checkIn := range stub.entries {
		if checkIn.HabitID == habitID {
			count++
		}
	}
	return count
}
