package services

import (
	"sort"

	"github.com/terraincognita07/habitual/internal/models"
)

const maxReportSabotagePatterns = 5

type TagCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

type Report struct {
	TotalCheckIns     int        `json:"total_check_ins"`
	SuccessRate       int        `json:"success_rate"`
	ExecutionBalance  []TagCount `json:"execution_balance"`
	MissedByTimeOfDay []TagCount `json:"missed_by_time_of_day"`
	SabotagePatterns  []TagCount `json:"sabotage_patterns"`
	Motivations       []TagCount `json:"motivations"`
	Challenges        []TagCount `json:"challenges"`
}

type HistoryEntry struct {
	models.CheckIn
	HabitName string `json:"habit_name"`
}

// BuildReport aggregates every check-in of the owner, archived habits included. The
// success rate is the active habit's.
func BuildReport(snapshot Snapshot) Report {
	report := Report{
		TotalCheckIns: len(snapshot.CheckIns),
		SuccessRate:   snapshot.Adherence().SuccessRate(),
	}

	statusCounts := map[models.CheckInStatus]int{}
	missedByTime := map[string]int{}
	for _, checkIn := range snapshot.CheckIns {
		statusCounts[checkIn.Status]++
		if checkIn.Status == models.StatusMissed {
			missedByTime[checkIn.TimeOfDay]++
		}
	}

	report.ExecutionBalance = make([]TagCount, 0, 3)
	for _, status := range []models.CheckInStatus{models.StatusCompleted, models.StatusPartial, models.StatusMissed} {
		if count := statusCounts[status]; count > 0 {
			report.ExecutionBalance = append(report.ExecutionBalance, TagCount{Name: string(status), Count: count})
		}
	}

	report.MissedByTimeOfDay = []TagCount{
		{Name: models.TimeOfDayMorning, Count: missedByTime[models.TimeOfDayMorning]},
		{Name: models.TimeOfDayAfternoon, Count: missedByTime[models.TimeOfDayAfternoon]},
		{Name: models.TimeOfDayEvening, Count: missedByTime[models.TimeOfDayEvening]},
	}

	report.SabotagePatterns = countTags(snapshot.CheckIns, func(checkIn models.CheckIn) []string { return checkIn.SabotagePatterns })
	if len(report.SabotagePatterns) > maxReportSabotagePatterns {
		report.SabotagePatterns = report.SabotagePatterns[:maxReportSabotagePatterns]
	}
	report.Motivations = countTags(snapshot.CheckIns, func(checkIn models.CheckIn) []string { return checkIn.Motivations })
	report.Challenges = countTags(snapshot.CheckIns, func(checkIn models.CheckIn) []string { return checkIn.Challenges })
	return report
}

func countTags(checkIns []models.CheckIn, field func(models.CheckIn) []string) []TagCount {
	counts := map[string]int{}
	for _, checkIn := range checkIns {
		for _, tag := range field(checkIn) {
			counts[tag]++
		}
	}

	result := make([]TagCount, 0, len(counts))
	for name, count := range counts {
		result = append(result, TagCount{Name: name, Count: count})
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].Count == result[j].Count {
			return result[i].Name < result[j].Name
		}
		return result[i].Count > result[j].Count
	})
	return result
}

// BuildHistory lists every check-in of the owner, newest first, with the name of the habit
// it belongs to.
func BuildHistory(snapshot Snapshot) []HistoryEntry {
	names := snapshot.habitNames()
	entries := make([]HistoryEntry, 0, len(snapshot.CheckIns))
	for _, checkIn := range snapshot.CheckIns {
		entries = append(entries, HistoryEntry{CheckIn: checkIn, HabitName: names[checkIn.HabitID]})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].Date == entries[j].Date {
			return entries[i].CreatedAt.After(entries[j].CreatedAt)
		}
		return entries[i].Date > entries[j].Date
	})
	return entries
}
