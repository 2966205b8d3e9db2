package models

// Mood is the qualitative label derived from a day's completion count
type Mood string

const (
	MoodFractured   Mood = "fractured"
	MoodWavering    Mood = "wavering"
	MoodQuiet       Mood = "quiet"
	MoodResilient   Mood = "resilient"
	MoodStalwart    Mood = "stalwart"
	MoodOverclocked Mood = "overclocked"
	MoodUnburdened  Mood = "unburdened"
)

// Valid reports whether m is a known mood. The empty mood is valid and means
// not yet derived.
func (m Mood) Valid() bool {
	switch m {
	case "", MoodFractured, MoodWavering, MoodQuiet, MoodResilient, MoodStalwart, MoodOverclocked, MoodUnburdened:
		return true
	default:
		return false
	}
}

// ExerciseLog is one exercise's record. RPE is the rate of perceived
// exertion (1-10); nil means not logged.
type ExerciseLog struct {
	RPE    *int   `json:"rpe"`
	Metric string `json:"metric"` // e.g. "200 lb x 8" or "45 min @ 1% incline"
}

// TrainingLog holds the daily run and the core lifts keyed by lift id
type TrainingLog struct {
	Run   *ExerciseLog           `json:"run,omitempty"`
	Lifts map[string]ExerciseLog `json:"lifts,omitempty"`
}

// DayEntry records which habits were completed on a date
type DayEntry struct {
	Date              string       `json:"date"` // YYYY-MM-DD format
	CompletedHabitIDs []string     `json:"completedHabitIds"`
	Note              string       `json:"note,omitempty"`
	Mood              Mood         `json:"mood,omitempty"`
	Training          *TrainingLog `json:"training,omitempty"`
}

// DaysState maps a date string to its entry. Iteration order is undefined;
// consumers walk dates explicitly.
type DaysState map[string]DayEntry

// HasHabit reports whether id is in the entry's completed set
func (e DayEntry) HasHabit(id string) bool {
	for _, h := range e.CompletedHabitIDs {
		if h == id {
			return true
		}
	}
	return false
}

// CompletedCount returns the number of completed habits for date, 0 when absent
func (d DaysState) CompletedCount(date string) int {
	entry, ok := d[date]
	if !ok {
		return 0
	}
	return len(entry.CompletedHabitIDs)
}

// Clone returns a shallow copy of the map; entries are values so edits to the
// copy never reach the original, but slices must still be replaced, not appended to.
func (d DaysState) Clone() DaysState {
	out := make(DaysState, len(d)+1)
	for k, v := range d {
		out[k] = v
	}
	return out
}
