package services

import (
	"reflect"
	"testing"
	"time"

	"github.com/terraincognita07/habitual/internal/models"
)

func reportSnapshot() Snapshot {
	active := mondayWednesdayFridayHabit("2026-02-16")
	archived := models.Habit{ID: "habit-old", OwnerID: "owner-1", Name: "Run", StartDate: "2026-01-01"}
	created := time.Date(2026, time.February, 1, 9, 0, 0, 0, time.UTC)

	return Snapshot{
		OwnerID: "owner-1",
		Today:   mustDay("2026-02-20"),
		Habits:  []models.Habit{*active, archived},
		CheckIns: []models.CheckIn{
			{ID: "1", HabitID: "habit-old", Date: "2026-01-05", Status: models.StatusMissed, TimeOfDay: models.TimeOfDayMorning, SabotagePatterns: []string{"phone"}, CreatedAt: created},
			{ID: "2", HabitID: active.ID, Date: "2026-02-16", Status: models.StatusCompleted, Motivations: []string{"health", "family"}, CreatedAt: created},
			{ID: "3", HabitID: active.ID, Date: "2026-02-18", Status: models.StatusMissed, TimeOfDay: models.TimeOfDayEvening, SabotagePatterns: []string{"phone", "tired"}, Challenges: []string{"time"}, CreatedAt: created},
			{ID: "4", HabitID: active.ID, Date: "2026-02-20", Status: models.StatusCompleted, Motivations: []string{"health"}, CreatedAt: created},
		},
	}
}

func TestBuildReport(t *testing.T) {
	report := BuildReport(reportSnapshot())

	if report.TotalCheckIns != 4 {
		t.Fatalf("expected 4 check-ins, got %d", report.TotalCheckIns)
	}
	// Feb 16, 18, 20 scheduled; two successes.
	if report.SuccessRate != 67 {
		t.Fatalf("expected success rate 67, got %d", report.SuccessRate)
	}

	wantBalance := []TagCount{{Name: "completed", Count: 2}, {Name: "missed", Count: 2}}
	if !reflect.DeepEqual(report.ExecutionBalance, wantBalance) {
		t.Fatalf("expected %v, got %v", wantBalance, report.ExecutionBalance)
	}

	wantMissed := []TagCount{{Name: "morning", Count: 1}, {Name: "afternoon", Count: 0}, {Name: "evening", Count: 1}}
	if !reflect.DeepEqual(report.MissedByTimeOfDay, wantMissed) {
		t.Fatalf("expected %v, got %v", wantMissed, report.MissedByTimeOfDay)
	}

	wantSabotage := []TagCount{{Name: "phone", Count: 2}, {Name: "tired", Count: 1}}
	if !reflect.DeepEqual(report.SabotagePatterns, wantSabotage) {
		t.Fatalf("expected %v, got %v", wantSabotage, report.SabotagePatterns)
	}

	wantMotivations := []TagCount{{Name: "health", Count: 2}, {Name: "family", Count: 1}}
	if !reflect.DeepEqual(report.Motivations, wantMotivations) {
		t.Fatalf("expected %v, got %v", wantMotivations, report.Motivations)
	}
}

func TestBuildReportLimitsSabotagePatterns(t *testing.T) {
	snapshot := Snapshot{Today: mustDay("2026-02-20"), CheckIns: []models.CheckIn{
		{Status: models.StatusMissed, SabotagePatterns: []string{"a", "b", "c", "d", "e", "f", "g"}},
	}}

	report := BuildReport(snapshot)
	if len(report.SabotagePatterns) != 5 || report.SabotagePatterns[0].Name != "a" || report.SabotagePatterns[4].Name != "e" {
		t.Fatalf("expected top 5 alphabetical on ties, got %v", report.SabotagePatterns)
	}
	if report.SuccessRate != 0 {
		t.Fatalf("expected 0 success rate without active habit, got %d", report.SuccessRate)
	}
}

func TestBuildHistoryIncludesArchivedHabits(t *testing.T) {
	history := BuildHistory(reportSnapshot())

	if len(history) != 4 {
		t.Fatalf("expected 4 entries, got %d", len(history))
	}
	if history[0].Date != "2026-02-20" || history[0].HabitName != "Read" {
		t.Fatalf("unexpected newest entry %+v", history[0])
	}
	if last := history[3]; last.Date != "2026-01-05" || last.HabitName != "Run" {
		t.Fatalf("unexpected oldest entry %+v", last)
	}
}
