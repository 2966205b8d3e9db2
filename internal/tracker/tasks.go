package tracker

import (
	"math"

	"github.com/julianstephens/sanctum/internal/constants"
	"github.com/julianstephens/sanctum/internal/models"
	"github.com/julianstephens/sanctum/internal/utils"
)

// TaskXP is the weekly experience earned from side contracts
type TaskXP struct {
	XP      int
	MaxXP   int
	Percent int
	Label   string
}

// WeeklyTaskXP awards 5 XP per completed task across the week, capped at 100
func WeeklyTaskXP(weekStart string, board models.TaskBoard) TaskXP {
	completed := 0
	for i := 0; i < constants.DaysPerWeek; i++ {
		for _, task := range board[utils.ShiftDate(weekStart, i)] {
			if task.Completed {
				completed++
			}
		}
	}

	xp := completed * constants.TaskXPPerTask
	if xp > constants.TaskXPMax {
		xp = constants.TaskXPMax
	}
	percent := int(math.Round(float64(xp) / float64(constants.TaskXPMax) * 100))

	var label string
	switch {
	case xp == 0:
		label = "No XP gained from side contracts."
	case percent < 40:
		label = "A trickle of XP flows from scattered efforts."
	case percent < 80:
		label = "Solid XP accumulates from consistent side contracts."
	default:
		label = "Task XP surges, empowering this week's encounter."
	}

	return TaskXP{XP: xp, MaxXP: constants.TaskXPMax, Percent: percent, Label: label}
}

// WeeklyTaskBuff averages the per-day completion percentage over the days of
// the week that have tasks. It returns "" when no day has any.
func WeeklyTaskBuff(weekStart string, board models.TaskBoard) string {
	var total, counted int
	for i := 0; i < constants.DaysPerWeek; i++ {
		tasks := board[utils.ShiftDate(weekStart, i)]
		if len(tasks) == 0 {
			continue
		}
		total += completionPercent(tasks)
		counted++
	}

	if counted == 0 {
		return ""
	}

	avg := float64(total) / float64(counted)
	switch {
	case avg < 40:
		return "Yet your side contracts lay mostly neglected, granting the foe small but telling advantages."
	case avg < 80:
		return "Steady attention to lesser contracts blunted the enemy's advance."
	default:
		return "Meticulous completion of every side contract turned small gains into a crushing strategic edge."
	}
}

// TaskMeta summarizes a single day's checklist
type TaskMeta struct {
	Percent     int
	Completed   int
	Total       int
	TitleSuffix string
	Flavor      string
}

// DayTaskMeta buckets one day's checklist completion for display
func DayTaskMeta(tasks []models.DailyTask) TaskMeta {
	if len(tasks) == 0 {
		return TaskMeta{
			TitleSuffix: "No Contracts Posted",
			Flavor:      "No contracts were posted for this day. The ledger waits in eerie silence.",
		}
	}

	meta := TaskMeta{Total: len(tasks), Percent: completionPercent(tasks)}
	for _, t := range tasks {
		if t.Completed {
			meta.Completed++
		}
	}

	switch {
	case meta.Percent == 0:
		meta.TitleSuffix, meta.Flavor = "A Day Unscripted", "The ledger lies untouched. Ambition idle and unspent."
	case meta.Percent < 50:
		meta.TitleSuffix, meta.Flavor = "Unfinished Errands", "Some contracts were honored. Many yet gather dust."
	case meta.Percent < 90:
		meta.TitleSuffix, meta.Flavor = "A Hard-Fought Campaign", "The day's labors have broken the back of indolence."
	case meta.Percent < 100:
		meta.TitleSuffix, meta.Flavor = "Only Trifles Remain", "Only trifling deeds remain, taunting from the margins."
	default:
		meta.TitleSuffix, meta.Flavor = "Every Deed Accounted For", "Every task struck from the ledger. A rare and precious thing."
	}
	return meta
}

// completionPercent rounds completed/total to a whole percent. tasks must be non-empty.
func completionPercent(tasks []models.DailyTask) int {
	completed := 0
	for _, t := range tasks {
		if t.Completed {
			completed++
		}
	}
	return int(math.Round(float64(completed) / float64(len(tasks)) * 100))
}
