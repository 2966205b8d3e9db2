package constants

const (
	// Default resource track labels applied to every new quest
	LabelVigor      = "Vigor"
	LabelResolve    = "Resolve"
	LabelCorruption = "Corruption"

	// ResolveStreakThreshold is the success streak at which resolve starts accruing.
	ResolveStreakThreshold = 3

	SkippedNarrative = "The day passed in uneasy quiet."
)
