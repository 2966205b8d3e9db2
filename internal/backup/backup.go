package backup

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/julianstephens/sanctum/internal/constants"
	"github.com/julianstephens/sanctum/internal/logger"
	"github.com/julianstephens/sanctum/internal/models"
	"github.com/julianstephens/sanctum/internal/storage"
)

const (
	bundleVersion   = 1
	timestampFormat = "20060102-150405"
)

// Bundle is a complete snapshot of every store
type Bundle struct {
	Version   int               `json:"version"`
	CreatedAt time.Time         `json:"createdAt"`
	Days      models.DaysState  `json:"days"`
	Quests    models.QuestState `json:"quests"`
	Tasks     models.TaskBoard  `json:"tasks"`
}

// BackupInfo describes a bundle on disk
type BackupInfo struct {
	Path      string
	Timestamp time.Time
	Size      int64
}

// Manager writes, rotates and restores bundles under <data dir>/backups
type Manager struct {
	backupDir string
	now       func() time.Time
}

func NewManager(dataDir string) *Manager {
	return &Manager{
		backupDir: filepath.Join(dataDir, constants.BackupDirName),
		now:       time.Now,
	}
}

// GetBackupDir returns the backup directory path
func (m *Manager) GetBackupDir() string {
	return m.backupDir
}

// CreateBackup snapshots p into a new bundle and prunes old ones
func (m *Manager) CreateBackup(p storage.Provider) (string, error) {
	return m.createBackup(p, false)
}

func (m *Manager) createBackup(p storage.Provider, skipRotation bool) (string, error) {
	if err := os.MkdirAll(m.backupDir, 0700); err != nil {
		return "", fmt.Errorf("failed to create backup directory: %w", err)
	}

	bundle, err := snapshot(p)
	if err != nil {
		return "", err
	}
	bundle.CreatedAt = m.now().UTC()

	path, err := m.nextPath(bundle.CreatedAt)
	if err != nil {
		return "", err
	}

	data, err := json.MarshalIndent(bundle, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to serialize backup: %w", err)
	}
	if err := os.WriteFile(path, data, 0600); err != nil {
		return "", fmt.Errorf("failed to write backup: %w", err)
	}
	logger.Info("backup created", "path", path)

	if !skipRotation {
		if err := m.rotateBackups(); err != nil {
			logger.Warn("failed to rotate old backups", "err", err)
		}
	}
	return path, nil
}

func snapshot(p storage.Provider) (Bundle, error) {
	days, err := p.LoadDays()
	if err != nil {
		return Bundle{}, fmt.Errorf("failed to read days: %w", err)
	}
	quests, err := p.LoadQuests()
	if err != nil {
		return Bundle{}, fmt.Errorf("failed to read quests: %w", err)
	}
	tasks, err := p.LoadTasks()
	if err != nil {
		return Bundle{}, fmt.Errorf("failed to read tasks: %w", err)
	}
	return Bundle{Version: bundleVersion, Days: days, Quests: quests, Tasks: tasks}, nil
}

func (m *Manager) nextPath(at time.Time) (string, error) {
	stamp := at.Format(timestampFormat)
	path := filepath.Join(m.backupDir, constants.BackupFilePrefix+stamp+constants.BackupFileSuffix)
	for counter := 1; ; counter++ {
		if _, err := os.Stat(path); os.IsNotExist(err) {
			return path, nil
		}
		if counter > 100 {
			return "", fmt.Errorf("failed to generate unique backup filename")
		}
		name := fmt.Sprintf("%s%s-%d%s", constants.BackupFilePrefix, stamp, counter, constants.BackupFileSuffix)
		path = filepath.Join(m.backupDir, name)
	}
}

// parseStamp reads the timestamp from a bundle filename, ignoring any
// trailing collision counter.
func parseStamp(name string) (time.Time, bool) {
	stamp := strings.TrimSuffix(strings.TrimPrefix(name, constants.BackupFilePrefix), constants.BackupFileSuffix)
	if i := strings.LastIndex(stamp, "-"); i > 0 && len(stamp)-i-1 != 6 {
		if _, err := strconv.Atoi(stamp[i+1:]); err == nil {
			stamp = stamp[:i]
		}
	}
	t, err := time.Parse(timestampFormat, stamp)
	return t, err == nil
}

// ListBackups returns every bundle, newest first
func (m *Manager) ListBackups() ([]BackupInfo, error) {
	entries, err := os.ReadDir(m.backupDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []BackupInfo{}, nil
		}
		return nil, fmt.Errorf("failed to read backup directory: %w", err)
	}

	var backups []BackupInfo
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasPrefix(name, constants.BackupFilePrefix) || !strings.HasSuffix(name, constants.BackupFileSuffix) {
			continue
		}
		ts, ok := parseStamp(name)
		if !ok {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		backups = append(backups, BackupInfo{
			Path:      filepath.Join(m.backupDir, name),
			Timestamp: ts,
			Size:      info.Size(),
		})
	}

	sort.SliceStable(backups, func(i, j int) bool {
		if backups[i].Timestamp.Equal(backups[j].Timestamp) {
			return backups[i].Path > backups[j].Path
		}
		return backups[i].Timestamp.After(backups[j].Timestamp)
	})
	return backups, nil
}

func (m *Manager) rotateBackups() error {
	backups, err := m.ListBackups()
	if err != nil {
		return err
	}
	for i := constants.MaxBackups; i < len(backups); i++ {
		if err := os.Remove(backups[i].Path); err != nil {
			return fmt.Errorf("failed to remove old backup %s: %w", backups[i].Path, err)
		}
	}
	return nil
}

// ReadBundle loads and validates a bundle file
func ReadBundle(path string) (Bundle, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Bundle{}, fmt.Errorf("failed to read backup: %w", err)
	}
	var bundle Bundle
	if err := json.Unmarshal(data, &bundle); err != nil {
		return Bundle{}, fmt.Errorf("backup file is corrupted or invalid: %w", err)
	}
	if bundle.Version < 1 || bundle.Version > bundleVersion {
		return Bundle{}, fmt.Errorf("unsupported backup version %d", bundle.Version)
	}
	days, err := storage.NormalizeDays(bundle.Days)
	if err != nil {
		return Bundle{}, fmt.Errorf("backup file is corrupted or invalid: %w", err)
	}
	bundle.Days = days
	return bundle, nil
}

// RestoreBackup replaces p's state with the bundle at path. The current state
// is snapshotted first so a restore can be undone.
func (m *Manager) RestoreBackup(p storage.Provider, path string) (string, error) {
	bundle, err := ReadBundle(path)
	if err != nil {
		return "", err
	}

	previous, err := m.createBackup(p, true)
	if err != nil {
		return "", fmt.Errorf("failed to back up current state before restore: %w", err)
	}

	if err := p.SaveDays(bundle.Days); err != nil {
		return previous, fmt.Errorf("failed to restore days: %w", err)
	}
	if err := p.SaveQuests(bundle.Quests); err != nil {
		return previous, fmt.Errorf("failed to restore quests: %w", err)
	}
	if err := p.SaveTasks(bundle.Tasks); err != nil {
		return previous, fmt.Errorf("failed to restore tasks: %w", err)
	}
	return previous, nil
}
