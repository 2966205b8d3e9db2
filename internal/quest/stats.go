package quest

import (
	"sort"

	"github.com/julianstephens/sanctum/internal/constants"
	"github.com/julianstephens/sanctum/internal/models"
)

type StreakStats struct {
	CurrentSuccessStreak int
	RecentFailCount      int
}

type SummaryStats struct {
	StreakStats
	TotalSuccesses int
	TotalFails     int
}

// Resources is the running sum of a quest's deltas
type Resources struct {
	Vigor      int
	Resolve    int
	Corruption int
}

// sortByDayIndex returns a copy of days ordered by day index. Ties keep their
// stored order.
func sortByDayIndex(days []models.QuestDay) []models.QuestDay {
	sorted := append([]models.QuestDay(nil), days...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].DayIndex < sorted[j].DayIndex
	})
	return sorted
}

func loggedDays(days []models.QuestDay) []models.QuestDay {
	var out []models.QuestDay
	for _, d := range sortByDayIndex(days) {
		if d.Status != models.QuestDayPending {
			out = append(out, d)
		}
	}
	return out
}

// ComputeStreakStats counts the trailing run of successes and the failures
// among the last three logged (non-pending) days.
func ComputeStreakStats(days []models.QuestDay) StreakStats {
	logged := loggedDays(days)

	var stats StreakStats
	for i := len(logged) - 1; i >= 0; i-- {
		if logged[i].Status != models.QuestDaySuccess {
			break
		}
		stats.CurrentSuccessStreak++
	}

	window := logged
	if len(window) > constants.RecentFailWindow {
		window = window[len(window)-constants.RecentFailWindow:]
	}
	for _, d := range window {
		if d.Status == models.QuestDayFail {
			stats.RecentFailCount++
		}
	}

	return stats
}

// OutcomeCounts returns the number of SUCCESS and FAIL days logged for q
func OutcomeCounts(q models.Quest, days []models.QuestDay) (successes, fails int) {
	for _, d := range days {
		if d.QuestID != q.ID {
			continue
		}
		switch d.Status {
		case models.QuestDaySuccess:
			successes++
		case models.QuestDayFail:
			fails++
		}
	}
	return successes, fails
}

// Summary combines streak stats with outcome totals for q
func Summary(q models.Quest, days []models.QuestDay) SummaryStats {
	var own []models.QuestDay
	for _, d := range days {
		if d.QuestID == q.ID {
			own = append(own, d)
		}
	}

	summary := SummaryStats{StreakStats: ComputeStreakStats(own)}
	summary.TotalSuccesses, summary.TotalFails = OutcomeCounts(q, own)
	return summary
}

// Totals sums the deltas of q's days
func Totals(q models.Quest, days []models.QuestDay) Resources {
	var t Resources
	for _, d := range days {
		if d.QuestID != q.ID {
			continue
		}
		t.Vigor += d.VigorDelta
		t.Resolve += d.ResolveDelta
		t.Corruption += d.CorruptionDelta
	}
	return t
}
