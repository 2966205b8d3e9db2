package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/mitchellh/go-ps"

	"github.com/julianstephens/sanctum/internal/constants"
	"github.com/julianstephens/sanctum/internal/logger"
)

var findProcessFunc = ps.FindProcess

var ErrLocked = errors.New("another sanctum process is writing to this data directory")

// Lock is a held single-writer lockfile
type Lock struct {
	path string
}

// lockGrace is how long an unreadable lockfile counts as held
const lockGrace = 10 * time.Second

// AcquireLock creates the lockfile in dir holding this process's PID. A
// lockfile whose PID is no longer running is stale and taken over. The
// lockfile appears with its PID already written: it is staged in a temp
// file and hard-linked into place.
func AcquireLock(dir string) (*Lock, error) {
	if err := os.MkdirAll(dir, 0700); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}
	path := filepath.Join(dir, constants.LockfileName)

	tmp, err := stageLockfile(dir)
	if err != nil {
		return nil, err
	}
	defer os.Remove(tmp)

	for attempt := 0; attempt < 2; attempt++ {
		err := os.Link(tmp, path)
		if err == nil {
			return &Lock{path: path}, nil
		}
		if !os.IsExist(err) {
			return nil, fmt.Errorf("failed to create lockfile: %w", err)
		}

		pid, live := lockHolder(path)
		if live {
			return nil, fmt.Errorf("%w (pid %d)", ErrLocked, pid)
		}
		logger.Warn("removing stale lockfile", "path", path, "pid", pid)
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to remove stale lockfile: %w", err)
		}
	}
	return nil, ErrLocked
}

// stageLockfile writes this process's PID to a temp file in dir
func stageLockfile(dir string) (string, error) {
	f, err := os.CreateTemp(dir, constants.LockfileName+".*.tmp")
	if err != nil {
		return "", fmt.Errorf("failed to write lockfile: %w", err)
	}
	_, werr := f.WriteString(strconv.Itoa(os.Getpid()))
	cerr := f.Close()
	if werr != nil || cerr != nil {
		os.Remove(f.Name())
		return "", fmt.Errorf("failed to write lockfile: %w", errors.Join(werr, cerr))
	}
	return f.Name(), nil
}

// lockHolder reads the PID from path and reports whether it is still running.
// A lockfile without a readable PID is held until it is older than lockGrace.
func lockHolder(path string) (int, bool) {
	info, err := os.Stat(path)
	if err != nil {
		return 0, false
	}
	content, err := os.ReadFile(path)
	if err != nil {
		return 0, time.Since(info.ModTime()) < lockGrace
	}
	pid, err := strconv.Atoi(strings.TrimSpace(string(content)))
	if err != nil || pid <= 0 {
		return 0, time.Since(info.ModTime()) < lockGrace
	}
	if pid == os.Getpid() {
		return pid, true
	}
	process, err := findProcessFunc(pid)
	if err != nil || process == nil {
		return pid, false
	}
	return pid, true
}

// Release removes the lockfile
func (l *Lock) Release() error {
	if l == nil {
		return nil
	}
	if err := os.Remove(l.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to release lock: %w", err)
	}
	return nil
}
