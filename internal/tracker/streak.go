package tracker

import (
	"github.com/julianstephens/sanctum/internal/constants"
	"github.com/julianstephens/sanctum/internal/models"
	"github.com/julianstephens/sanctum/internal/utils"
)

// Streak counts consecutive days ending at anchor with at least one completed
// habit. It stops at the first missing or empty day.
func Streak(days models.DaysState, anchor string) int {
	cursor, err := utils.ParseDate(anchor)
	if err != nil {
		return 0
	}

	streak := 0
	for days.CompletedCount(cursor.Format(constants.DateFormat)) > 0 {
		streak++
		cursor = cursor.AddDate(0, 0, -1)
	}
	return streak
}

// WeeklyScore sums completed habits over the 7 days starting at weekStart
func WeeklyScore(days models.DaysState, weekStart string) int {
	score := 0
	for i := 0; i < constants.DaysPerWeek; i++ {
		score += days.CompletedCount(utils.ShiftDate(weekStart, i))
	}
	return score
}

// DayCount is one point of a completion series
type DayCount struct {
	Date  string
	Count int
}

// LastNDays returns the completion counts for the n days ending at today,
// oldest first.
func LastNDays(days models.DaysState, today string, n int) []DayCount {
	if n <= 0 {
		return nil
	}
	out := make([]DayCount, 0, n)
	for i := n - 1; i >= 0; i-- {
		d := utils.ShiftDate(today, -i)
		out = append(out, DayCount{Date: d, Count: days.CompletedCount(d)})
	}
	return out
}
