package tracker

import (
	"strings"

	"github.com/google/uuid"

	"github.com/julianstephens/sanctum/internal/models"
)

// Every transition returns a new snapshot and leaves its input untouched.

func entryFor(days models.DaysState, date string) models.DayEntry {
	if entry, ok := days[date]; ok {
		if entry.Date == "" {
			entry.Date = date
		}
		return entry
	}
	return models.DayEntry{Date: date, CompletedHabitIDs: []string{}}
}

// ToggleHabit adds habitID to date's completed set if absent and removes it if
// present. Ids missing from the catalog are toggled all the same.
func ToggleHabit(days models.DaysState, date, habitID string) models.DaysState {
	entry := entryFor(days, date)

	ids := make([]string, 0, len(entry.CompletedHabitIDs)+1)
	found := false
	for _, id := range entry.CompletedHabitIDs {
		if id == habitID {
			found = true
			continue
		}
		ids = append(ids, id)
	}
	if !found {
		ids = append(ids, habitID)
	}

	entry.CompletedHabitIDs = ids
	entry.Mood = DeriveMood(len(ids))

	next := days.Clone()
	next[date] = entry
	return next
}

// SetNote replaces date's note
func SetNote(days models.DaysState, date, note string) models.DaysState {
	entry := entryFor(days, date)
	entry.Note = note

	next := days.Clone()
	next[date] = entry
	return next
}

// SetExercise records one exercise for date. exercise is "run" or a lift id.
func SetExercise(days models.DaysState, date, exercise string, log models.ExerciseLog) models.DaysState {
	entry := entryFor(days, date)

	training := models.TrainingLog{}
	if entry.Training != nil {
		training.Run = entry.Training.Run
		training.Lifts = make(map[string]models.ExerciseLog, len(entry.Training.Lifts)+1)
		for k, v := range entry.Training.Lifts {
			training.Lifts[k] = v
		}
	}

	if exercise == ExerciseRun {
		training.Run = &log
	} else {
		if training.Lifts == nil {
			training.Lifts = make(map[string]models.ExerciseLog, 1)
		}
		training.Lifts[exercise] = log
	}
	entry.Training = &training

	next := days.Clone()
	next[date] = entry
	return next
}

// AddTask appends a new incomplete task to date's checklist. Blank labels are
// ignored and the board is returned unchanged.
func AddTask(board models.TaskBoard, date, label string) (models.TaskBoard, models.DailyTask, bool) {
	label = strings.TrimSpace(label)
	if label == "" {
		return board, models.DailyTask{}, false
	}

	task := models.DailyTask{ID: uuid.New().String(), Label: label}
	next := board.Clone()
	next[date] = append(next[date], task)
	return next, task, true
}

// ToggleTask flips the completed flag of the task with id on date
func ToggleTask(board models.TaskBoard, date, id string) (models.TaskBoard, bool) {
	next := board.Clone()
	for i, task := range next[date] {
		if task.ID == id {
			next[date][i].Completed = !task.Completed
			return next, true
		}
	}
	return board, false
}

// DeleteTask removes the task with id from date's checklist
func DeleteTask(board models.TaskBoard, date, id string) (models.TaskBoard, bool) {
	tasks := board[date]
	for i, task := range tasks {
		if task.ID == id {
			next := board.Clone()
			next[date] = append(next[date][:i:i], next[date][i+1:]...)
			return next, true
		}
	}
	return board, false
}
