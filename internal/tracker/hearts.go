package tracker

import (
	"strings"

	"github.com/julianstephens/sanctum/internal/models"
)

// HeartStatus reports which guarded pillars were kept on a day
type HeartStatus struct {
	Remaining     int
	Total         int
	MissingLabels []string
	Flavor        string
}

// Hearts checks entry against the heart habits
func Hearts(entry models.DayEntry, heartHabits []models.Habit) HeartStatus {
	status := HeartStatus{Total: len(heartHabits)}
	for _, h := range heartHabits {
		if !entry.HasHabit(h.ID) {
			status.MissingLabels = append(status.MissingLabels, h.Label)
		}
	}
	status.Remaining = status.Total - len(status.MissingLabels)

	switch {
	case status.Remaining == status.Total:
		status.Flavor = "Resolutions intact. The vices skulk in silence, for now."
	case status.Remaining <= 0:
		status.Flavor = "A grim tally. Every pillar was left undefended."
	default:
		status.Flavor = "Cracks in the bulwark. Today, you yielded on: " + strings.Join(status.MissingLabels, ", ") + "."
	}
	return status
}
