package quest

import (
	"fmt"

	"github.com/julianstephens/sanctum/internal/models"
	"github.com/julianstephens/sanctum/internal/utils"
)

// DayIndex is the whole number of days from the quest's start to date, never
// negative. Malformed dates index to 0.
func DayIndex(q models.Quest, date string) int {
	diff, err := utils.DaysBetween(q.StartDate, date)
	if err != nil || diff < 0 {
		return 0
	}
	return diff
}

// Upsert stores day for q, replacing any entry with the same (quest, date).
// The day index is always recomputed. The input slice is not modified.
func Upsert(q models.Quest, days []models.QuestDay, day models.QuestDay) []models.QuestDay {
	day.QuestID = q.ID
	day.DayIndex = DayIndex(q, day.Date)

	out := append([]models.QuestDay(nil), days...)
	for i, existing := range out {
		if existing.QuestID == q.ID && existing.Date == day.Date {
			out[i] = day
			return out
		}
	}
	return append(out, day)
}

// IsCompleted reports whether q's furthest logged day reaches its duration.
// A quest with nothing logged is never complete.
func IsCompleted(q models.Quest, days []models.QuestDay) bool {
	last := -1
	for _, d := range days {
		if d.QuestID == q.ID && d.DayIndex > last {
			last = d.DayIndex
		}
	}
	if last < 0 {
		return false
	}
	return last+1 >= q.DurationDays
}

// ProgressLabel renders "Day N of M" for today, clamped to the duration
func ProgressLabel(q models.Quest, today string) string {
	idx := DayIndex(q, today)
	if idx > q.DurationDays-1 {
		idx = q.DurationDays - 1
	}
	if idx < 0 {
		idx = 0
	}
	display := idx + 1
	if display > q.DurationDays {
		display = q.DurationDays
	}
	return fmt.Sprintf("Day %d of %d", display, q.DurationDays)
}

// TypeLabel is the display name of a quest type
func TypeLabel(t models.QuestType) string {
	if t == models.QuestTypeMetric {
		return "Metric"
	}
	return "Manual"
}
