package models

// StreakBucket holds lines reserved for a particular streak threshold
type StreakBucket struct {
	Threshold int      `json:"threshold" yaml:"threshold"`
	Lines     []string `json:"lines" yaml:"lines"`
}

// FlavorBank is the narrative text available to one quest archetype
type FlavorBank struct {
	SuccessLines       []string       `json:"successLines" yaml:"success_lines"`
	FailLines          []string       `json:"failLines" yaml:"fail_lines"`
	StreakSuccessLines []StreakBucket `json:"streakSuccessLines" yaml:"streak_success_lines"`
	StreakFailLines    []StreakBucket `json:"streakFailLines" yaml:"streak_fail_lines"`
}
