package storage

import (
	"errors"
	"os"
	"path/filepath"
	"strconv"
	"testing"
	"time"

	ps "github.com/mitchellh/go-ps"

	"github.com/julianstephens/sanctum/internal/constants"
)

type mockProcess struct {
	pid int
}

func (m *mockProcess) Pid() int           { return m.pid }
func (m *mockProcess) PPid() int          { return 0 }
func (m *mockProcess) Executable() string { return "sanctum" }

func withFindProcess(t *testing.T, fn func(int) (ps.Process, error)) {
	t.Helper()
	old := findProcessFunc
	findProcessFunc = fn
	t.Cleanup(func() { findProcessFunc = old })
}

func writeLockfile(t *testing.T, dir string, pid int) {
	t.Helper()
	path := filepath.Join(dir, constants.LockfileName)
	if err := os.WriteFile(path, []byte(strconv.Itoa(pid)), 0600); err != nil {
		t.Fatal(err)
	}
}

func TestAcquireAndRelease(t *testing.T) {
	dir := t.TempDir()
	lock, err := AcquireLock(dir)
	if err != nil {
		t.Fatalf("AcquireLock() error = %v", err)
	}

	content, err := os.ReadFile(filepath.Join(dir, constants.LockfileName))
	if err != nil || string(content) != strconv.Itoa(os.Getpid()) {
		t.Errorf("lockfile content = %q, %v", content, err)
	}

	if _, err := AcquireLock(dir); !errors.Is(err, ErrLocked) {
		t.Errorf("second AcquireLock() error = %v, want ErrLocked", err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil || len(entries) != 1 {
		t.Errorf("staging file left behind: %v, %v", entries, err)
	}

	if err := lock.Release(); err != nil {
		t.Fatalf("Release() error = %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, constants.LockfileName)); !os.IsNotExist(err) {
		t.Error("lockfile should be gone after Release")
	}
}

func TestAcquireTakesOverStaleLock(t *testing.T) {
	dir := t.TempDir()
	writeLockfile(t, dir, 424242)
	withFindProcess(t, func(int) (ps.Process, error) { return nil, nil })

	lock, err := AcquireLock(dir)
	if err != nil {
		t.Fatalf("AcquireLock() error = %v", err)
	}
	defer lock.Release()
}

func TestAcquireRespectsLiveHolder(t *testing.T) {
	dir := t.TempDir()
	writeLockfile(t, dir, 424242)
	withFindProcess(t, func(pid int) (ps.Process, error) { return &mockProcess{pid: pid}, nil })

	if _, err := AcquireLock(dir); !errors.Is(err, ErrLocked) {
		t.Errorf("AcquireLock() error = %v, want ErrLocked", err)
	}
}

func TestAcquireRespectsFreshUnreadableLock(t *testing.T) {
	for name, body := range map[string]string{"empty": "", "garbage": "junk"} {
		t.Run(name, func(t *testing.T) {
			dir := t.TempDir()
			if err := os.WriteFile(filepath.Join(dir, constants.LockfileName), []byte(body), 0600); err != nil {
				t.Fatal(err)
			}
			if _, err := AcquireLock(dir); !errors.Is(err, ErrLocked) {
				t.Errorf("AcquireLock() error = %v, want ErrLocked", err)
			}
		})
	}
}

func TestAcquireTakesOverOldGarbageLock(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, constants.LockfileName)
	if err := os.WriteFile(path, []byte("junk"), 0600); err != nil {
		t.Fatal(err)
	}
	old := time.Now().Add(-time.Minute)
	if err := os.Chtimes(path, old, old); err != nil {
		t.Fatal(err)
	}
	lock, err := AcquireLock(dir)
	if err != nil {
		t.Fatalf("AcquireLock() error = %v", err)
	}
	defer lock.Release()
}

func TestReleaseNil(t *testing.T) {
	var l *Lock
	if err := l.Release(); err != nil {
		t.Errorf("Release() on nil = %v", err)
	}
}
