package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/julianstephens/sanctum/internal/constants"
	"github.com/julianstephens/sanctum/internal/logger"
	"github.com/julianstephens/sanctum/internal/models"
)

// JSONStore keeps each snapshot in its own file under a data directory
type JSONStore struct {
	dir    string
	loaded bool
}

func NewJSONStore(dir string) *JSONStore {
	return &JSONStore{dir: dir}
}

func (s *JSONStore) file(name string) string {
	return filepath.Join(s.dir, name)
}

func (s *JSONStore) Init() error {
	if err := os.MkdirAll(s.dir, 0700); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}
	if _, err := os.Stat(s.file(constants.DaysFileName)); err == nil {
		return fmt.Errorf("%w at %s", ErrAlreadyInitialized, s.dir)
	}

	s.loaded = true
	if err := s.SaveDays(models.DaysState{}); err != nil {
		return err
	}
	if err := s.SaveQuests(models.QuestState{}); err != nil {
		return err
	}
	return s.SaveTasks(models.TaskBoard{})
}

func (s *JSONStore) Load() error {
	if _, err := os.Stat(s.file(constants.DaysFileName)); err != nil {
		if os.IsNotExist(err) {
			return ErrNotInitialized
		}
		return fmt.Errorf("failed to read storage: %w", err)
	}
	s.loaded = true
	return nil
}

func (s *JSONStore) Close() error {
	s.loaded = false
	return nil
}

// readSnapshot decodes name from s. A missing or malformed file yields the
// zero value; a partly decoded file is discarded whole.
func readSnapshot[T any](s *JSONStore, name string) (T, error) {
	var zero T
	if !s.loaded {
		return zero, ErrNotLoaded
	}
	data, err := os.ReadFile(s.file(name))
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			logger.Warn("failed to read snapshot, using empty state", "file", name, "err", err)
		}
		return zero, nil
	}
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		logger.Warn("malformed snapshot, using empty state", "file", name, "err", err)
		return zero, nil
	}
	return v, nil
}

// writeSnapshot replaces name atomically
func (s *JSONStore) writeSnapshot(name string, v any) error {
	if !s.loaded {
		return ErrNotLoaded
	}
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize %s: %w", name, err)
	}

	tmp, err := os.CreateTemp(s.dir, name+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to write %s: %w", name, err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write %s: %w", name, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to write %s: %w", name, err)
	}
	if err := os.Chmod(tmp.Name(), 0600); err != nil {
		return fmt.Errorf("failed to write %s: %w", name, err)
	}
	if err := os.Rename(tmp.Name(), s.file(name)); err != nil {
		return fmt.Errorf("failed to write %s: %w", name, err)
	}
	return nil
}

func (s *JSONStore) LoadDays() (models.DaysState, error) {
	days, err := readSnapshot[models.DaysState](s, constants.DaysFileName)
	if err != nil {
		return nil, err
	}
	return sanitizeDays(days), nil
}

func (s *JSONStore) SaveDays(days models.DaysState) error {
	if days == nil {
		days = models.DaysState{}
	}
	return s.writeSnapshot(constants.DaysFileName, days)
}

func (s *JSONStore) LoadQuests() (models.QuestState, error) {
	state, err := readSnapshot[models.QuestState](s, constants.QuestsFileName)
	if err != nil {
		return models.QuestState{}, err
	}
	return sanitizeQuests(state), nil
}

func (s *JSONStore) SaveQuests(state models.QuestState) error {
	return s.writeSnapshot(constants.QuestsFileName, sanitizeQuests(state))
}

func (s *JSONStore) LoadTasks() (models.TaskBoard, error) {
	board, err := readSnapshot[models.TaskBoard](s, constants.TasksFileName)
	if err != nil {
		return nil, err
	}
	return sanitizeTasks(board), nil
}

func (s *JSONStore) SaveTasks(board models.TaskBoard) error {
	if board == nil {
		board = models.TaskBoard{}
	}
	return s.writeSnapshot(constants.TasksFileName, board)
}

// GetConfigPath returns the data directory.
//
// Running multiple sanctum processes against the same directory is only safe
// while each writer holds the lockfile.
func (s *JSONStore) GetConfigPath() string {
	return s.dir
}
