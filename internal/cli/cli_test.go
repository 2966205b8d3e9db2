package cli

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/julianstephens/sanctum/internal/catalog"
	"github.com/julianstephens/sanctum/internal/models"
	"github.com/julianstephens/sanctum/internal/quest"
	"github.com/julianstephens/sanctum/internal/storage"
)

const testDate = "2026-03-10"

func newTestContext(t *testing.T, input string) (*Context, *bytes.Buffer) {
	t.Helper()
	store := storage.New(filepath.Join(t.TempDir(), "data"))
	if err := store.Init(); err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	if err := store.Load(); err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	cat, err := catalog.Default()
	if err != nil {
		t.Fatalf("catalog.Default() error = %v", err)
	}
	out := &bytes.Buffer{}
	return &Context{Store: store, Catalog: cat, Out: out, In: strings.NewReader(input)}, out
}

func TestInitIsIdempotent(t *testing.T) {
	ctx, out := newTestContext(t, "")
	if err := (&InitCmd{}).Run(ctx); err != nil {
		t.Fatalf("second init error = %v", err)
	}
	if !strings.Contains(out.String(), "already initialized") {
		t.Errorf("output = %q", out.String())
	}
}

func TestResolveDate(t *testing.T) {
	ctx, _ := newTestContext(t, "")
	if got, err := ctx.resolveDate(testDate); err != nil || got != testDate {
		t.Errorf("resolveDate(%q) = %q, %v", testDate, got, err)
	}
	if _, err := ctx.resolveDate("03/10/2026"); err == nil {
		t.Error("expected error for malformed date")
	}
	if got, err := ctx.resolveDate(""); err != nil || got == "" {
		t.Errorf("resolveDate(\"\") = %q, %v", got, err)
	}
}

func TestHabitToggleAndToday(t *testing.T) {
	ctx, out := newTestContext(t, "")
	habit := ctx.Catalog.Habits[0]

	if err := (&HabitToggleCmd{ID: habit.ID, Date: testDate}).Run(ctx); err != nil {
		t.Fatalf("toggle error = %v", err)
	}
	days, _ := ctx.Store.LoadDays()
	if !days[testDate].HasHabit(habit.ID) {
		t.Fatalf("habit not saved: %+v", days[testDate])
	}
	if !strings.Contains(out.String(), "completed on "+testDate) {
		t.Errorf("output = %q", out.String())
	}

	out.Reset()
	if err := (&TodayCmd{Date: testDate}).Run(ctx); err != nil {
		t.Fatalf("today error = %v", err)
	}
	for _, want := range []string{testDate, "Mood:", "Habits: 1/", habit.Label} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("today output missing %q:\n%s", want, out.String())
		}
	}

	if err := (&HabitToggleCmd{ID: habit.ID, Date: testDate}).Run(ctx); err != nil {
		t.Fatal(err)
	}
	days, _ = ctx.Store.LoadDays()
	if days[testDate].HasHabit(habit.ID) {
		t.Error("second toggle should clear the habit")
	}
}

func TestHabitToggleUnknownWarns(t *testing.T) {
	ctx, out := newTestContext(t, "")
	if err := (&HabitToggleCmd{ID: "juggling", Date: testDate}).Run(ctx); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.String(), "not in the habit catalog") {
		t.Errorf("output = %q", out.String())
	}
}

func TestNoteSetAndClear(t *testing.T) {
	ctx, _ := newTestContext(t, "")
	if err := (&NoteCmd{Text: []string{"slept", "well"}, Date: testDate}).Run(ctx); err != nil {
		t.Fatal(err)
	}
	days, _ := ctx.Store.LoadDays()
	if days[testDate].Note != "slept well" {
		t.Errorf("note = %q", days[testDate].Note)
	}
	if err := (&NoteCmd{Date: testDate}).Run(ctx); err != nil {
		t.Fatal(err)
	}
	days, _ = ctx.Store.LoadDays()
	if days[testDate].Note != "" {
		t.Errorf("note not cleared: %q", days[testDate].Note)
	}
}

func TestTrain(t *testing.T) {
	tests := []struct {
		name    string
		cmd     TrainCmd
		wantErr bool
	}{
		{"valid", TrainCmd{Exercise: "run", Metric: "3 mi", RPE: 7}, false},
		{"no rpe", TrainCmd{Exercise: "pull_ups"}, false},
		{"unknown exercise", TrainCmd{Exercise: "curls"}, true},
		{"rpe too high", TrainCmd{Exercise: "run", RPE: 11}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.cmd.Validate(); (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}

	ctx, _ := newTestContext(t, "")
	if err := (&TrainCmd{Exercise: "run", Metric: "3 mi", RPE: 7, Date: testDate}).Run(ctx); err != nil {
		t.Fatal(err)
	}
	days, _ := ctx.Store.LoadDays()
	training := days[testDate].Training
	if training == nil || training.Run == nil {
		t.Fatalf("training = %+v", training)
	}
	log := training.Run
	if log.Metric != "3 mi" || log.RPE == nil || *log.RPE != 7 {
		t.Errorf("training log = %+v", log)
	}
}

func TestTaskLifecycle(t *testing.T) {
	ctx, out := newTestContext(t, "")
	if err := (&TaskAddCmd{Label: []string{"Pay", "rent"}, Date: testDate}).Run(ctx); err != nil {
		t.Fatal(err)
	}
	board, _ := ctx.Store.LoadTasks()
	if len(board[testDate]) != 1 || board[testDate][0].Label != "Pay rent" {
		t.Fatalf("board = %+v", board)
	}
	id := board[testDate][0].ID

	if err := (&TaskToggleCmd{ID: id[:6], Date: testDate}).Run(ctx); err != nil {
		t.Fatalf("toggle by prefix error = %v", err)
	}
	board, _ = ctx.Store.LoadTasks()
	if !board[testDate][0].Completed {
		t.Error("task not completed")
	}

	out.Reset()
	if err := (&TaskListCmd{Date: testDate}).Run(ctx); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.String(), "1/1 complete (100%)") {
		t.Errorf("list output = %q", out.String())
	}

	if err := (&TaskDeleteCmd{ID: "missing", Date: testDate}).Run(ctx); err == nil {
		t.Error("expected error deleting unknown task")
	}
	if err := (&TaskDeleteCmd{ID: id, Date: testDate}).Run(ctx); err != nil {
		t.Fatal(err)
	}
	board, _ = ctx.Store.LoadTasks()
	if len(board[testDate]) != 0 {
		t.Errorf("task not deleted: %+v", board)
	}
}

func TestTaskAddRejectsEmptyLabel(t *testing.T) {
	ctx, _ := newTestContext(t, "")
	if err := (&TaskAddCmd{Label: []string{"  "}, Date: testDate}).Run(ctx); err == nil {
		t.Error("expected error for blank label")
	}
}

func TestFindTask(t *testing.T) {
	tasks := []models.DailyTask{{ID: "abc123", Label: "a"}, {ID: "abd456", Label: "b"}}
	if got, err := findTask(tasks, "abc"); err != nil || got.Label != "a" {
		t.Errorf("findTask(abc) = %+v, %v", got, err)
	}
	if _, err := findTask(tasks, "ab"); err == nil || !strings.Contains(err.Error(), "ambiguous") {
		t.Errorf("findTask(ab) error = %v", err)
	}
	if _, err := findTask(tasks, "zz"); err == nil {
		t.Error("expected not found")
	}
}

func TestQuestCommands(t *testing.T) {
	ctx, out := newTestContext(t, "n\n")
	tmpl := ctx.Catalog.QuestTemplates[0]

	if err := (&QuestStartCmd{Template: "no-such-quest"}).Run(ctx); err == nil {
		t.Error("expected error for unknown template")
	}
	if err := (&QuestStartCmd{Template: tmpl.ID, Duration: 3, Prompt: "No coffee"}).Run(ctx); err != nil {
		t.Fatalf("start error = %v", err)
	}
	if err := (&QuestStartCmd{Template: tmpl.ID}).Run(ctx); err == nil {
		t.Error("expected error starting a second quest")
	}

	if err := (&QuestLogCmd{Status: "success", Date: "2099-01-01"}).Run(ctx); !errors.Is(err, quest.ErrDateOutOfRange) {
		t.Fatalf("future log error = %v, want ErrDateOutOfRange", err)
	}
	if err := (&QuestLogCmd{Status: "success"}).Run(ctx); err != nil {
		t.Fatalf("log error = %v", err)
	}
	state, _ := ctx.Store.LoadQuests()
	if len(state.QuestDays) != 1 || state.QuestDays[0].Status != models.QuestDaySuccess {
		t.Fatalf("quest days = %+v", state.QuestDays)
	}
	if state.Quests[0].DurationDays != 3 || state.Quests[0].CustomPrompt != "No coffee" {
		t.Errorf("overrides not applied: %+v", state.Quests[0])
	}

	out.Reset()
	if err := (&QuestStatusCmd{}).Run(ctx); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.String(), "Day 1 of 3") || !strings.Contains(out.String(), "Vow: No coffee") {
		t.Errorf("status output = %q", out.String())
	}

	// input answers "n"
	if err := (&QuestAbandonCmd{}).Run(ctx); err != nil {
		t.Fatal(err)
	}
	state, _ = ctx.Store.LoadQuests()
	if state.Quests[0].Status != models.QuestStatusActive {
		t.Fatal("abandon should be cancelled")
	}

	if err := (&QuestAbandonCmd{Yes: true}).Run(ctx); err != nil {
		t.Fatal(err)
	}
	state, _ = ctx.Store.LoadQuests()
	if state.Quests[0].Status != models.QuestStatusAbandoned {
		t.Errorf("status = %s", state.Quests[0].Status)
	}

	out.Reset()
	if err := (&QuestHistoryCmd{}).Run(ctx); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.String(), "1 won / 0 lost") {
		t.Errorf("history output = %q", out.String())
	}
}

func TestExportImport(t *testing.T) {
	ctx, _ := newTestContext(t, "y\n")
	habit := ctx.Catalog.Habits[0].ID
	if err := (&HabitToggleCmd{ID: habit, Date: testDate}).Run(ctx); err != nil {
		t.Fatal(err)
	}

	file := filepath.Join(t.TempDir(), "export.json")
	if err := (&ExportCmd{Output: file}).Run(ctx); err != nil {
		t.Fatalf("export error = %v", err)
	}

	if err := ctx.Store.SaveDays(models.DaysState{}); err != nil {
		t.Fatal(err)
	}
	if err := (&ImportCmd{File: file}).Run(ctx); err != nil {
		t.Fatalf("import error = %v", err)
	}
	days, _ := ctx.Store.LoadDays()
	if !days[testDate].HasHabit(habit) {
		t.Errorf("imported days = %+v", days)
	}

	backups, err := ctx.backups().ListBackups()
	if err != nil || len(backups) != 1 {
		t.Errorf("expected a backup before import, got %d (%v)", len(backups), err)
	}
}

func TestImportRejectsInvalidFile(t *testing.T) {
	ctx, _ := newTestContext(t, "y\n")
	file := filepath.Join(t.TempDir(), "bad.json")
	if err := os.WriteFile(file, []byte(`[1,2,3]`), 0600); err != nil {
		t.Fatal(err)
	}
	if err := (&ImportCmd{File: file}).Run(ctx); err == nil {
		t.Error("expected error for non-object import")
	}
}

func TestExportToStdout(t *testing.T) {
	ctx, out := newTestContext(t, "")
	if err := (&NoteCmd{Text: []string{"hello"}, Date: testDate}).Run(ctx); err != nil {
		t.Fatal(err)
	}
	out.Reset()
	if err := (&ExportCmd{Output: "-"}).Run(ctx); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.String(), `"hello"`) {
		t.Errorf("export output = %q", out.String())
	}
}

func TestBackupCommands(t *testing.T) {
	ctx, out := newTestContext(t, "")
	if err := (&BackupListCmd{}).Run(ctx); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.String(), "No backups found.") {
		t.Errorf("list output = %q", out.String())
	}

	if err := (&NoteCmd{Text: []string{"before"}, Date: testDate}).Run(ctx); err != nil {
		t.Fatal(err)
	}
	if err := (&BackupCreateCmd{}).Run(ctx); err != nil {
		t.Fatal(err)
	}
	backups, err := ctx.backups().ListBackups()
	if err != nil || len(backups) != 1 {
		t.Fatalf("backups = %v, %v", backups, err)
	}

	if err := (&NoteCmd{Text: []string{"after"}, Date: testDate}).Run(ctx); err != nil {
		t.Fatal(err)
	}
	if err := (&BackupRestoreCmd{BackupFile: filepath.Base(backups[0].Path), Yes: true}).Run(ctx); err != nil {
		t.Fatalf("restore error = %v", err)
	}
	days, _ := ctx.Store.LoadDays()
	if days[testDate].Note != "before" {
		t.Errorf("note after restore = %q", days[testDate].Note)
	}

	if err := (&BackupRestoreCmd{BackupFile: "missing.json", Yes: true}).Run(ctx); err == nil {
		t.Error("expected error for missing backup")
	}
}
