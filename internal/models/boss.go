package models

type BossOutcome string

const (
	OutcomeWin  BossOutcome = "win"
	OutcomeLoss BossOutcome = "loss"
	OutcomeDraw BossOutcome = "draw"
)

// BossProfile is a roster entry in the content catalog
type BossProfile struct {
	Name       string `json:"name" yaml:"name"`
	Lore       string `json:"lore" yaml:"lore"`
	Difficulty int    `json:"difficulty" yaml:"difficulty"`
}

// BossFight is derived on demand from (weekId, weeklyScore) and never persisted
type BossFight struct {
	Name        string      `json:"name"`
	Lore        string      `json:"lore"`
	Description string      `json:"description"`
	Difficulty  int         `json:"difficulty"`
	Outcome     BossOutcome `json:"outcome"`
}
