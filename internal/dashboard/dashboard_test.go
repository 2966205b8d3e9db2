package dashboard

import (
	"testing"

	"github.com/julianstephens/sanctum/internal/boss"
	"github.com/julianstephens/sanctum/internal/catalog"
	"github.com/julianstephens/sanctum/internal/models"
)

func testInput(t *testing.T) Input {
	t.Helper()
	cat, err := catalog.Default()
	if err != nil {
		t.Fatalf("catalog.Default() error = %v", err)
	}
	gen, err := boss.NewGenerator(cat.Bosses)
	if err != nil {
		t.Fatalf("NewGenerator() error = %v", err)
	}
	return Input{
		Date: "2026-10-21",
		Days: models.DaysState{
			"2026-10-19": {Date: "2026-10-19", CompletedHabitIDs: []string{"a"}},
			"2026-10-20": {Date: "2026-10-20", CompletedHabitIDs: []string{"a", "b"}},
			"2026-10-21": {Date: "2026-10-21", CompletedHabitIDs: []string{"a", "b", "c"}},
		},
		Tasks: models.TaskBoard{
			"2026-10-21": {{ID: "t1", Label: "mail", Completed: true}, {ID: "t2", Label: "dishes"}},
		},
		Catalog: cat,
		Bosses:  gen,
	}
}

func TestBuild(t *testing.T) {
	in := testInput(t)
	v := Build(in)

	if v.Completed != 3 || v.Mood != models.MoodQuiet || v.MoodLabel != "Quiet" {
		t.Errorf("completed/mood = %d/%s/%s", v.Completed, v.Mood, v.MoodLabel)
	}
	if v.Streak != 3 {
		t.Errorf("Streak = %d, want 3", v.Streak)
	}
	if v.WeekStart != "2026-10-19" || v.WeeklyScore != 6 {
		t.Errorf("week = %s/%d", v.WeekStart, v.WeeklyScore)
	}
	if v.TaskXP.XP != 5 {
		t.Errorf("TaskXP = %+v", v.TaskXP)
	}
	if v.TaskMeta.Total != 2 || v.TaskMeta.Completed != 1 {
		t.Errorf("TaskMeta = %+v", v.TaskMeta)
	}
	if len(v.History) != 7 || v.History[6].Count != 3 {
		t.Errorf("History = %+v", v.History)
	}
	if v.Boss.Name == "" || v.Title == "" {
		t.Errorf("boss/title missing: %+v / %q", v.Boss, v.Title)
	}
	if v.Quest != nil {
		t.Error("no active quest expected")
	}

	again := Build(in)
	if again.Boss != v.Boss || again.Title != v.Title {
		t.Error("Build should be deterministic")
	}
}

func TestBuildEmptyDay(t *testing.T) {
	in := testInput(t)
	in.Date = "2026-12-01"
	v := Build(in)
	if v.Completed != 0 || v.Mood != models.MoodFractured || v.Streak != 0 {
		t.Errorf("empty day view = %+v", v)
	}
	if v.Entry.Date != "2026-12-01" {
		t.Errorf("Entry.Date = %q", v.Entry.Date)
	}
	if v.Hearts.Remaining != 0 || v.Hearts.Total != 4 {
		t.Errorf("Hearts = %+v", v.Hearts)
	}
}

func TestBuildActiveQuest(t *testing.T) {
	in := testInput(t)
	q := models.Quest{ID: "q1", Status: models.QuestStatusActive, StartDate: "2026-10-20", DurationDays: 7}
	in.Quests = models.QuestState{
		Quests: []models.Quest{q},
		QuestDays: []models.QuestDay{
			{QuestID: "q1", Date: "2026-10-20", DayIndex: 0, Status: models.QuestDaySuccess, VigorDelta: 1},
			{QuestID: "q1", Date: "2026-10-21", DayIndex: 1, Status: models.QuestDaySuccess, VigorDelta: 1},
		},
	}

	v := Build(in)
	if v.Quest == nil {
		t.Fatal("expected active quest view")
	}
	if v.Quest.Progress != "Day 2 of 7" || v.Quest.Resources.Vigor != 2 || v.Quest.Summary.CurrentSuccessStreak != 2 {
		t.Errorf("quest view = %+v", v.Quest)
	}
	if v.Quest.Today == nil || v.Quest.Today.Status != models.QuestDaySuccess {
		t.Errorf("Today = %+v", v.Quest.Today)
	}
}

func TestBuildHidesQuestBeforeStart(t *testing.T) {
	in := testInput(t)
	in.Quests = models.QuestState{
		Quests:    []models.Quest{{ID: "q1", Status: models.QuestStatusActive, StartDate: "2026-10-22", DurationDays: 7}},
		QuestDays: []models.QuestDay{},
	}
	if v := Build(in); v.Quest != nil {
		t.Errorf("quest shown on %s before start: %+v", in.Date, v.Quest)
	}

	in.Date = "2026-10-22"
	if v := Build(in); v.Quest == nil {
		t.Error("quest hidden on its start date")
	}
}
