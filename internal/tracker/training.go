package tracker

// Exercise is one row of the daily training log
type Exercise struct {
	ID    string
	Label string
}

const ExerciseRun = "run"

// Exercises lists the run followed by the core lifts
var Exercises = []Exercise{
	{ID: ExerciseRun, Label: "Run"},
	{ID: "seated_leg_press", Label: "Seated Leg Press"},
	{ID: "chest_dips", Label: "Chest Dips"},
	{ID: "pull_ups", Label: "Pull / Chin Ups"},
}

// LookupExercise finds an exercise by id
func LookupExercise(id string) (Exercise, bool) {
	for _, e := range Exercises {
		if e.ID == id {
			return e, true
		}
	}
	return Exercise{}, false
}
