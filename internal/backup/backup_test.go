package backup

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/julianstephens/sanctum/internal/constants"
	"github.com/julianstephens/sanctum/internal/models"
	"github.com/julianstephens/sanctum/internal/storage"
)

func setupStore(t *testing.T) (storage.Provider, string) {
	t.Helper()
	dir := t.TempDir()
	p := storage.NewJSONStore(dir)
	if err := p.Init(); err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	days := models.DaysState{"2026-10-19": {Date: "2026-10-19", CompletedHabitIDs: []string{"exercise"}}}
	if err := p.SaveDays(days); err != nil {
		t.Fatalf("SaveDays() error = %v", err)
	}
	tasks := models.TaskBoard{"2026-10-19": {{ID: "t1", Label: "mail"}}}
	if err := p.SaveTasks(tasks); err != nil {
		t.Fatalf("SaveTasks() error = %v", err)
	}
	return p, dir
}

// fixedClock returns a clock that advances one second per call
func fixedClock(start time.Time) func() time.Time {
	current := start.Add(-time.Second)
	return func() time.Time {
		current = current.Add(time.Second)
		return current
	}
}

func TestCreateBackup(t *testing.T) {
	p, dir := setupStore(t)
	mgr := NewManager(dir)
	mgr.now = fixedClock(time.Date(2026, 10, 19, 8, 30, 0, 0, time.UTC))

	path, err := mgr.CreateBackup(p)
	if err != nil {
		t.Fatalf("CreateBackup() error = %v", err)
	}
	if filepath.Base(path) != "sanctum-20261019-083000.json" {
		t.Errorf("backup name = %s", filepath.Base(path))
	}

	bundle, err := ReadBundle(path)
	if err != nil {
		t.Fatalf("ReadBundle() error = %v", err)
	}
	if !bundle.Days["2026-10-19"].HasHabit("exercise") || len(bundle.Tasks["2026-10-19"]) != 1 {
		t.Errorf("bundle = %+v", bundle)
	}
}

func TestCreateBackupCollision(t *testing.T) {
	p, dir := setupStore(t)
	mgr := NewManager(dir)
	at := time.Date(2026, 10, 19, 8, 30, 0, 0, time.UTC)
	mgr.now = func() time.Time { return at }

	first, err := mgr.CreateBackup(p)
	if err != nil {
		t.Fatalf("CreateBackup() error = %v", err)
	}
	second, err := mgr.CreateBackup(p)
	if err != nil {
		t.Fatalf("CreateBackup() error = %v", err)
	}
	if first == second || !strings.HasSuffix(second, "-1.json") {
		t.Errorf("second backup = %s", second)
	}

	backups, err := mgr.ListBackups()
	if err != nil || len(backups) != 2 {
		t.Fatalf("ListBackups() = %d, %v", len(backups), err)
	}
	if !backups[0].Timestamp.Equal(at) || !backups[1].Timestamp.Equal(at) {
		t.Errorf("timestamps = %v, %v", backups[0].Timestamp, backups[1].Timestamp)
	}
}

func TestListBackupsEmpty(t *testing.T) {
	mgr := NewManager(t.TempDir())
	backups, err := mgr.ListBackups()
	if err != nil || len(backups) != 0 {
		t.Errorf("ListBackups() = %v, %v", backups, err)
	}
}

func TestListBackupsSkipsForeignFiles(t *testing.T) {
	dir := t.TempDir()
	mgr := NewManager(dir)
	if err := os.MkdirAll(mgr.GetBackupDir(), 0700); err != nil {
		t.Fatal(err)
	}
	for _, name := range []string{"notes.txt", "sanctum-garbage.json", "other-20261019-083000.json"} {
		if err := os.WriteFile(filepath.Join(mgr.GetBackupDir(), name), []byte("{}"), 0600); err != nil {
			t.Fatal(err)
		}
	}
	backups, _ := mgr.ListBackups()
	if len(backups) != 0 {
		t.Errorf("ListBackups() = %+v, want none", backups)
	}
}

func TestRotation(t *testing.T) {
	p, dir := setupStore(t)
	mgr := NewManager(dir)
	start := time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC)
	mgr.now = fixedClock(start)

	for i := 0; i < constants.MaxBackups+3; i++ {
		if _, err := mgr.CreateBackup(p); err != nil {
			t.Fatalf("CreateBackup() error = %v", err)
		}
	}

	backups, _ := mgr.ListBackups()
	if len(backups) != constants.MaxBackups {
		t.Fatalf("len = %d, want %d", len(backups), constants.MaxBackups)
	}
	oldestKept := start.Add(3 * time.Second)
	if !backups[len(backups)-1].Timestamp.Equal(oldestKept) {
		t.Errorf("oldest kept = %v, want %v", backups[len(backups)-1].Timestamp, oldestKept)
	}
}

func TestRestoreBackup(t *testing.T) {
	p, dir := setupStore(t)
	mgr := NewManager(dir)
	mgr.now = fixedClock(time.Date(2026, 10, 19, 8, 0, 0, 0, time.UTC))

	saved, err := mgr.CreateBackup(p)
	if err != nil {
		t.Fatalf("CreateBackup() error = %v", err)
	}

	if err := p.SaveDays(models.DaysState{}); err != nil {
		t.Fatal(err)
	}
	if err := p.SaveTasks(models.TaskBoard{}); err != nil {
		t.Fatal(err)
	}

	previous, err := mgr.RestoreBackup(p, saved)
	if err != nil {
		t.Fatalf("RestoreBackup() error = %v", err)
	}

	days, _ := p.LoadDays()
	if !days["2026-10-19"].HasHabit("exercise") {
		t.Errorf("days not restored: %+v", days)
	}
	tasks, _ := p.LoadTasks()
	if len(tasks["2026-10-19"]) != 1 {
		t.Errorf("tasks not restored: %+v", tasks)
	}

	undo, err := ReadBundle(previous)
	if err != nil {
		t.Fatalf("ReadBundle(previous) error = %v", err)
	}
	if len(undo.Days) != 0 {
		t.Errorf("pre-restore snapshot should hold the emptied state, got %+v", undo.Days)
	}
}

func TestRestoreRejectsInvalidBundle(t *testing.T) {
	p, dir := setupStore(t)
	mgr := NewManager(dir)

	tests := map[string]string{
		"not json":    "{",
		"bad version": `{"version": 99}`,
		"bad day key": `{"version": 1, "days": {"yesterday": {"completedHabitIds": []}}}`,
	}
	for name, body := range tests {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "bundle.json")
			if err := os.WriteFile(path, []byte(body), 0600); err != nil {
				t.Fatal(err)
			}
			if _, err := mgr.RestoreBackup(p, path); err == nil {
				t.Error("expected error")
			}
		})
	}

	days, _ := p.LoadDays()
	if !days["2026-10-19"].HasHabit("exercise") {
		t.Error("failed restore should leave state untouched")
	}
	if _, err := mgr.RestoreBackup(p, filepath.Join(dir, "missing.json")); err == nil {
		t.Error("expected error for missing file")
	}
}
