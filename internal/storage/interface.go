package storage

import (
	"errors"
	"path/filepath"
	"strings"

	"github.com/julianstephens/sanctum/internal/models"
)

var (
	ErrNotInitialized     = errors.New("storage not initialized, run 'sanctum init' first")
	ErrAlreadyInitialized = errors.New("storage already initialized")
	ErrNotLoaded          = errors.New("storage not loaded")
)

// Provider persists the three snapshots: days, quests and daily tasks. Each
// Save replaces the stored snapshot wholesale.
type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// Days
	LoadDays() (models.DaysState, error)
	SaveDays(models.DaysState) error

	// Quests
	LoadQuests() (models.QuestState, error)
	SaveQuests(models.QuestState) error

	// Daily tasks
	LoadTasks() (models.TaskBoard, error)
	SaveTasks(models.TaskBoard) error

	// Utils
	GetConfigPath() string
}

// New picks the backend from path: a *.db file is SQLite, anything else is a
// directory of JSON files.
func New(path string) Provider {
	if strings.EqualFold(filepath.Ext(path), ".db") {
		return NewSQLiteStore(path)
	}
	return NewJSONStore(path)
}

// DataDir is the directory that holds a provider's files, logs and backups
func DataDir(p Provider) string {
	if _, ok := p.(*SQLiteStore); ok {
		return filepath.Dir(p.GetConfigPath())
	}
	return p.GetConfigPath()
}
