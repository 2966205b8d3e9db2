package quest

import (
	"math/rand/v2"

	"github.com/julianstephens/sanctum/internal/constants"
	"github.com/julianstephens/sanctum/internal/models"
	"github.com/julianstephens/sanctum/internal/seed"
)

// Picker chooses an index in [0, n). *rand.Rand satisfies it.
type Picker interface {
	IntN(n int) int
}

// SeededPicker returns a picker whose sequence is fixed by key
func SeededPicker(key string) Picker {
	return rand.New(rand.NewPCG(uint64(seed.Hash(key)), 0))
}

// Narrator selects flavor lines for logged quest days
type Narrator struct {
	banks map[models.QuestArchetype]models.FlavorBank
}

func NewNarrator(banks map[models.QuestArchetype]models.FlavorBank) *Narrator {
	return &Narrator{banks: banks}
}

// Bank returns the flavor bank for archetype, or the custom bank for anything
// unrecognized or missing.
func (n *Narrator) Bank(archetype models.QuestArchetype) models.FlavorBank {
	switch archetype {
	case models.ArchetypeDisciplinePact, models.ArchetypeHealthRite, models.ArchetypeRecoveryVigil:
		if bank, ok := n.banks[archetype]; ok {
			return bank
		}
		return n.banks[models.ArchetypeCustom]
	default:
		return n.banks[models.ArchetypeCustom]
	}
}

// Build returns the narrative for logging status on top of the quest's prior
// days. PENDING has no narrative.
func (n *Narrator) Build(q models.Quest, days []models.QuestDay, status models.QuestDayStatus, pick Picker) string {
	stats := ComputeStreakStats(days)
	bank := n.Bank(q.Archetype)

	switch status {
	case models.QuestDaySuccess:
		newStreak := stats.CurrentSuccessStreak + 1
		for _, bucket := range bank.StreakSuccessLines {
			if bucket.Threshold == newStreak {
				return pickLine(bucket.Lines, pick)
			}
		}
		return pickLine(bank.SuccessLines, pick)
	case models.QuestDayFail:
		updatedFailCount := stats.RecentFailCount + 1
		for _, bucket := range bank.StreakFailLines {
			if updatedFailCount >= bucket.Threshold {
				return pickLine(bucket.Lines, pick)
			}
		}
		return pickLine(bank.FailLines, pick)
	case models.QuestDaySkipped:
		return constants.SkippedNarrative
	default:
		return ""
	}
}

func pickLine(lines []string, pick Picker) string {
	if len(lines) == 0 {
		return ""
	}
	return lines[pick.IntN(len(lines))]
}
