// Package boss derives the weekly boss encounter. A fight is a pure function
// of the week identifier and that week's score, so it is never stored.
package boss

import (
	"errors"
	"math"
	"strconv"

	"github.com/julianstephens/sanctum/internal/constants"
	"github.com/julianstephens/sanctum/internal/models"
	"github.com/julianstephens/sanctum/internal/seed"
)

var ErrEmptyRoster = errors.New("boss roster is empty")

type Generator struct {
	roster []models.BossProfile
}

// NewGenerator returns a generator over roster. The roster order is part of
// the derivation: reordering it changes which boss a week draws.
func NewGenerator(roster []models.BossProfile) (*Generator, error) {
	if len(roster) == 0 {
		return nil, ErrEmptyRoster
	}
	return &Generator{roster: append([]models.BossProfile(nil), roster...)}, nil
}

// Generate resolves the encounter for weekID. weeklyScore is clamped to [0, 21].
func (g *Generator) Generate(weekID string, weeklyScore int) models.BossFight {
	idx := int(math.Floor(seed.Float(weekID) * float64(len(g.roster))))
	profile := g.roster[idx]

	score := clamp(weeklyScore, 0, constants.MaxWeeklyScore)
	rng := seed.Float(weekID + "|" + strconv.Itoa(score))
	outcome := resolveOutcome(rng, score)

	return models.BossFight{
		Name:        profile.Name,
		Lore:        profile.Lore,
		Description: Description(outcome),
		Difficulty:  clamp(profile.Difficulty, constants.MinBossDifficulty, constants.MaxBossDifficulty),
		Outcome:     outcome,
	}
}

func resolveOutcome(rng float64, score int) models.BossOutcome {
	switch {
	case rng+float64(score)/constants.BossWinDivisor > constants.BossWinThreshold:
		return models.OutcomeWin
	case rng+float64(score)/constants.BossLossDivisor < constants.BossLossThreshold:
		return models.OutcomeLoss
	default:
		return models.OutcomeDraw
	}
}

// Description returns the fixed text for an outcome
func Description(outcome models.BossOutcome) string {
	switch outcome {
	case models.OutcomeWin:
		return "Your resolve outmatched the threat. The week closes with a quiet, earned victory."
	case models.OutcomeLoss:
		return "The boss proved too much this time. Yet even defeat carves hard-won lessons."
	default:
		return "Neither side claimed clear dominance. The struggle itself forges tempered steel."
	}
}

// OutcomeLabel is the short banner shown next to a fight
func OutcomeLabel(outcome models.BossOutcome) string {
	switch outcome {
	case models.OutcomeWin:
		return "Victory"
	case models.OutcomeLoss:
		return "Defeat"
	default:
		return "Hard-Fought Draw"
	}
}

// WithBuff appends the weekly task buff to the fight description
func WithBuff(fight models.BossFight, buff string) models.BossFight {
	if buff != "" {
		fight.Description += " " + buff
	}
	return fight
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
