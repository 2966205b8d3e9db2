package models

// DailyTask is one item on a date's secondary checklist
type DailyTask struct {
	ID        string `json:"id"`
	Label     string `json:"label"`
	Completed bool   `json:"completed"`
}

// TaskBoard maps a date string to that day's checklist
type TaskBoard map[string][]DailyTask

// Clone returns a copy of the board whose per-day slices are not shared
func (b TaskBoard) Clone() TaskBoard {
	out := make(TaskBoard, len(b)+1)
	for k, v := range b {
		out[k] = append([]DailyTask(nil), v...)
	}
	return out
}
