package db

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/terraincognita07/habitual/internal/models"
)

func newHabitForTest(id string, ownerID string) *models.Habit {
	return &models.Habit{
		ID:                 id,
		OwnerID:            ownerID,
		Name:               "Read",
		ScheduledWeekdays:  []time.Weekday{time.Monday, time.Wednesday, time.Friday},
		TargetDurationDays: models.DurationMedium,
		StartDate:          "2026-01-30",
	}
}

func TestHabitRepositoryReplaceActiveKeepsSingleActiveHabit(t *testing.T) {
	ctx := context.Background()
	repos := NewRepositories(openSQLiteForTest(t))

	if err := repos.Habits.ReplaceActive(ctx, newHabitForTest("habit-1", "owner-1")); err != nil {
		t.Fatalf("create first habit: %v", err)
	}
	if err := repos.Habits.ReplaceActive(ctx, newHabitForTest("habit-2", "owner-1")); err != nil {
		t.Fatalf("create second habit: %v", err)
	}
	if err := repos.Habits.ReplaceActive(ctx, newHabitForTest("habit-3", "owner-2")); err != nil {
		t.Fatalf("create other owner habit: %v", err)
	}

	active, found, err := repos.Habits.FindActive(ctx, "owner-1")
	if err != nil || !found {
		t.Fatalf("find active habit: found=%v err=%v", found, err)
	}
	if active.ID != "habit-2" {
		t.Fatalf("expected habit-2 to be active, got %s", active.ID)
	}
	if len(active.ScheduledWeekdays) != 3 || active.ScheduledWeekdays[2] != time.Friday {
		t.Fatalf("expected weekdays to round-trip, got %v", active.ScheduledWeekdays)
	}

	habits, err := repos.Habits.ListByOwner(ctx, "owner-1")
	if err != nil {
		t.Fatalf("list habits: %v", err)
	}
	if len(habits) != 2 || !habits[0].IsActive || habits[1].IsActive {
		t.Fatalf("expected active habit first and one archived habit, got %+v", habits)
	}

	otherActive, found, err := repos.Habits.FindActive(ctx, "owner-2")
	if err != nil || !found || otherActive.ID != "habit-3" {
		t.Fatalf("expected owner-2 active habit to be untouched, got %+v found=%v err=%v", otherActive, found, err)
	}
}

func TestHabitsTableRejectsSecondActiveHabitPerOwner(t *testing.T) {
	ctx := context.Background()
	database := openSQLiteForTest(t)

	first := newHabitForTest("habit-1", "owner-1")
	first.IsActive = true
	if err := database.WithContext(ctx).Create(first).Error; err != nil {
		t.Fatalf("insert first habit: %v", err)
	}

	second := newHabitForTest("habit-2", "owner-1")
	second.IsActive = true
	err := translateError(database.WithContext(ctx).Create(second).Error)
	if !errors.Is(err, models.ErrDuplicateRecord) {
		t.Fatalf("expected ErrDuplicateRecord, got %v", err)
	}
}

func TestHabitRepositoryUpdate(t *testing.T) {
	ctx := context.Background()
	repos := NewRepositories(openSQLiteForTest(t))

	if err := repos.Habits.ReplaceActive(ctx, newHabitForTest("habit-1", "owner-1")); err != nil {
		t.Fatalf("create habit: %v", err)
	}

	updated, err := repos.Habits.Update(ctx, "habit-1", map[string]any{"is_active": false, "motivation": "focus"})
	if err != nil {
		t.Fatalf("update habit: %v", err)
	}
	if updated.IsActive || updated.Motivation != "focus" {
		t.Fatalf("unexpected updated habit: %+v", updated)
	}

	if _, err := repos.Habits.Update(ctx, "missing", map[string]any{"is_active": false}); !errors.Is(err, models.ErrRecordNotFound) {
		t.Fatalf("expected ErrRecordNotFound for unknown habit, got %v", err)
	}
}

func TestCheckInRepositoryRejectsDuplicateDate(t *testing.T) {
	ctx := context.Background()
	repos := NewRepositories(openSQLiteForTest(t))

	if err := repos.Habits.ReplaceActive(ctx, newHabitForTest("habit-1", "owner-1")); err != nil {
		t.Fatalf("create habit: %v", err)
	}

	first := &models.CheckIn{ID: "c-1", HabitID: "habit-1", OwnerID: "owner-1", Date: "2026-02-02", Status: models.StatusCompleted, Challenges: []string{"time"}}
	if err := repos.CheckIns.Create(ctx, first); err != nil {
		t.Fatalf("create check-in: %v", err)
	}

	second := &models.CheckIn{ID: "c-2", HabitID: "habit-1", OwnerID: "owner-1", Date: "2026-02-02", Status: models.StatusMissed}
	if err := repos.CheckIns.Create(ctx, second); !errors.Is(err, models.ErrDuplicateRecord) {
		t.Fatalf("expected ErrDuplicateRecord, got %v", err)
	}

	stored, found, err := repos.CheckIns.FindByHabitAndDate(ctx, "habit-1", "2026-02-02")
	if err != nil || !found {
		t.Fatalf("find check-in: found=%v err=%v", found, err)
	}
	if stored.Status != models.StatusCompleted || len(stored.Challenges) != 1 || stored.Challenges[0] != "time" {
		t.Fatalf("expected first check-in to survive, got %+v", stored)
	}
}

func TestHabitRepositoryDeleteWithCheckIns(t *testing.T) {
	ctx := context.Background()
	repos := NewRepositories(openSQLiteForTest(t))

	if err := repos.Habits.ReplaceActive(ctx, newHabitForTest("habit-1", "owner-1")); err != nil {
		t.Fatalf("create habit: %v", err)
	}
	for index, date := range []string{"2026-02-02", "2026-02-04"} {
		checkIn := &models.CheckIn{ID: "c-" + date, HabitID: "habit-1", OwnerID: "owner-1", Date: date, Status: models.StatusCompleted}
		if err := repos.CheckIns.Create(ctx, checkIn); err != nil {
			t.Fatalf("create check-in %d: %v", index, err)
		}
	}

	if err := repos.Habits.DeleteWithCheckIns(ctx, "owner-1", "habit-1"); err != nil {
		t.Fatalf("delete habit: %v", err)
	}

	remaining, err := repos.CheckIns.ListByOwner(ctx, "owner-1")
	if err != nil {
		t.Fatalf("list check-ins: %v", err)
	}
	if len(remaining) != 0 {
		t.Fatalf("expected check-ins to be removed, got %d", len(remaining))
	}
	if _, found, _ := repos.Habits.FindByOwnerAndID(ctx, "owner-1", "habit-1"); found {
		t.Fatal("expected habit to be removed")
	}

	if err := repos.Habits.DeleteWithCheckIns(ctx, "owner-1", "habit-1"); !errors.Is(err, models.ErrRecordNotFound) {
		t.Fatalf("expected ErrRecordNotFound on second delete, got %v", err)
	}
}

func TestQuoteRepositoryDeleteBefore(t *testing.T) {
	ctx := context.Background()
	repos := NewRepositories(openSQLiteForTest(t))

	for _, date := range []string{"2026-01-01", "2026-01-15", "2026-02-01"} {
		quote := &models.DailyQuote{ID: "q-" + date, OwnerID: "owner-1", Date: date, Content: "keep going"}
		if err := repos.Quotes.Create(ctx, quote); err != nil {
			t.Fatalf("create quote %s: %v", date, err)
		}
	}

	duplicate := &models.DailyQuote{ID: "q-dup", OwnerID: "owner-1", Date: "2026-02-01", Content: "again"}
	if err := repos.Quotes.Create(ctx, duplicate); !errors.Is(err, models.ErrDuplicateRecord) {
		t.Fatalf("expected ErrDuplicateRecord for same owner and date, got %v", err)
	}

	removed, err := repos.Quotes.DeleteBefore(ctx, "2026-01-20")
	if err != nil {
		t.Fatalf("delete quotes: %v", err)
	}
	if removed != 2 {
		t.Fatalf("expected 2 quotes removed, got %d", removed)
	}
	if _, found, _ := repos.Quotes.FindByOwnerAndDate(ctx, "owner-1", "2026-02-01"); !found {
		t.Fatal("expected recent quote to survive")
	}
}
