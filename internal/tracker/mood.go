package tracker

import (
	"github.com/julianstephens/sanctum/internal/models"
	"github.com/julianstephens/sanctum/internal/seed"
)

// DeriveMood maps a day's completed-habit count to its mood
func DeriveMood(completed int) models.Mood {
	switch {
	case completed <= 0:
		return models.MoodFractured
	case completed == 1:
		return models.MoodWavering
	case completed == 2:
		return models.MoodQuiet
	case completed == 3:
		return models.MoodResilient
	case completed == 4:
		return models.MoodStalwart
	default:
		return models.MoodOverclocked
	}
}

// MoodLabel returns the display form of a mood
func MoodLabel(m models.Mood) string {
	switch m {
	case models.MoodFractured:
		return "Fractured"
	case models.MoodWavering:
		return "Wavering"
	case models.MoodQuiet:
		return "Quiet"
	case models.MoodResilient:
		return "Resilient"
	case models.MoodStalwart:
		return "Stalwart"
	case models.MoodOverclocked:
		return "Overclocked"
	case models.MoodUnburdened:
		return "Unburdened"
	default:
		return "Unknown"
	}
}

// DailyTitle picks a stable title for the day from the mood's list, falling
// back to the quiet list when the mood has none. seed is usually the date.
func DailyTitle(titles map[models.Mood][]string, mood models.Mood, s string) string {
	list := titles[mood]
	if len(list) == 0 {
		list = titles[models.MoodQuiet]
	}
	if len(list) == 0 {
		return ""
	}
	return list[seed.Index(s, len(list))]
}

// NarratorLine comments on the size of the day's effort
func NarratorLine(completed int) string {
	switch {
	case completed <= 0:
		return "The dungeon remains unexplored today. Even heroes need days to simply exist."
	case completed == 1:
		return "A single encounter faced. A small torch still pushes back the dark."
	case completed <= 3:
		return "Steel met shadow more than once. Imperfect, but undeniably forward."
	case completed <= 8:
		return "A measured assault on the day's chaos. The hero paces themselves wisely."
	default:
		return "Every corridor cleared, every challenge met. Beware only of burning the wick too low."
	}
}
