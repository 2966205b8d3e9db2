package constants

const (
	// Boss outcome resolution:
	// - a fight is won when rng + score/BossWinDivisor exceeds BossWinThreshold
	// - it is lost when rng + score/BossLossDivisor falls below BossLossThreshold
	// - anything between is a draw
	BossWinThreshold  = 0.7
	BossLossThreshold = 0.3
	BossWinDivisor    = 24.0
	BossLossDivisor   = 30.0

	MinBossDifficulty = 1
	MaxBossDifficulty = 5
)

func init() {
	// Runtime validation: a roll can't both win and lose
	if BossWinThreshold <= BossLossThreshold {
		panic("BossWinThreshold must be greater than BossLossThreshold")
	}
}
