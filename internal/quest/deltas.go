package quest

import (
	"github.com/julianstephens/sanctum/internal/constants"
	"github.com/julianstephens/sanctum/internal/models"
)

type Deltas struct {
	Vigor      int
	Resolve    int
	Corruption int
}

// ResolveDeltas maps a logged status to its resource changes. Resolve only
// accrues once the success streak including this day reaches three.
func ResolveDeltas(status models.QuestDayStatus, stats StreakStats) Deltas {
	switch status {
	case models.QuestDaySuccess:
		d := Deltas{Vigor: 1}
		if stats.CurrentSuccessStreak+1 >= constants.ResolveStreakThreshold {
			d.Resolve = 1
		}
		return d
	case models.QuestDayFail:
		return Deltas{Corruption: 1}
	default:
		return Deltas{}
	}
}
