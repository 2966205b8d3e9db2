package models

// Habit is a static catalog entry for a daily action
type Habit struct {
	ID          string `json:"id" yaml:"id"`
	Label       string `json:"label" yaml:"label"`
	Description string `json:"description" yaml:"description"`
	// Heart marks one of the guarded pillars counted by the hearts status
	Heart bool `json:"heart,omitempty" yaml:"heart,omitempty"`
}
