package storage

import (
	"fmt"

	"github.com/julianstephens/sanctum/internal/logger"
	"github.com/julianstephens/sanctum/internal/models"
	"github.com/julianstephens/sanctum/internal/utils"
)

func dedupe(ids []string) []string {
	out := make([]string, 0, len(ids))
	seen := make(map[string]bool, len(ids))
	for _, id := range ids {
		if id == "" || seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	return out
}

func normalizeEntry(date string, entry models.DayEntry) models.DayEntry {
	entry.Date = date
	entry.CompletedHabitIDs = dedupe(entry.CompletedHabitIDs)
	return entry
}

func validateExercise(name string, log models.ExerciseLog) error {
	if log.RPE != nil && (*log.RPE < 1 || *log.RPE > 10) {
		return fmt.Errorf("%s rpe %d outside 1-10", name, *log.RPE)
	}
	return nil
}

func validateEntry(date string, entry models.DayEntry) error {
	if !utils.ValidateDate(date) {
		return fmt.Errorf("invalid date key %q", date)
	}
	if !entry.Mood.Valid() {
		return fmt.Errorf("%s: unknown mood %q", date, entry.Mood)
	}
	if entry.Training != nil {
		if entry.Training.Run != nil {
			if err := validateExercise("run", *entry.Training.Run); err != nil {
				return fmt.Errorf("%s: %w", date, err)
			}
		}
		for id, lift := range entry.Training.Lifts {
			if err := validateExercise(id, lift); err != nil {
				return fmt.Errorf("%s: %w", date, err)
			}
		}
	}
	return nil
}

// sanitizeDays keeps the well-formed entries of a loaded snapshot and logs
// the rest.
func sanitizeDays(days models.DaysState) models.DaysState {
	out := make(models.DaysState, len(days))
	for date, entry := range days {
		if err := validateEntry(date, entry); err != nil {
			logger.Warn("dropping malformed day entry", "date", date, "err", err)
			continue
		}
		out[date] = normalizeEntry(date, entry)
	}
	return out
}

func sanitizeTasks(board models.TaskBoard) models.TaskBoard {
	out := make(models.TaskBoard, len(board))
	for date, tasks := range board {
		if !utils.ValidateDate(date) {
			logger.Warn("dropping tasks under malformed date", "date", date)
			continue
		}
		if len(tasks) > 0 {
			out[date] = tasks
		}
	}
	return out
}

func sanitizeQuests(state models.QuestState) models.QuestState {
	if state.Quests == nil {
		state.Quests = []models.Quest{}
	}
	if state.QuestDays == nil {
		state.QuestDays = []models.QuestDay{}
	}
	return state
}
