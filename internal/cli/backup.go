package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/julianstephens/sanctum/internal/backup"
	"github.com/julianstephens/sanctum/internal/constants"
	"github.com/julianstephens/sanctum/internal/storage"
)

func (c *Context) backups() *backup.Manager {
	return backup.NewManager(storage.DataDir(c.Store))
}

type BackupCreateCmd struct{}

func (c *BackupCreateCmd) Run(ctx *Context) error {
	mgr := ctx.backups()
	backupPath, err := mgr.CreateBackup(ctx.Store)
	if err != nil {
		return fmt.Errorf("backup failed: %w", err)
	}
	ctx.printf("✓ Backup created: %s\n", filepath.Base(backupPath))
	return nil
}

type BackupListCmd struct{}

func (c *BackupListCmd) Run(ctx *Context) error {
	mgr := ctx.backups()
	backups, err := mgr.ListBackups()
	if err != nil {
		return fmt.Errorf("failed to list backups: %w", err)
	}

	if len(backups) == 0 {
		ctx.println("No backups found.")
		ctx.printf("Backups are stored in: %s\n", mgr.GetBackupDir())
		return nil
	}

	ctx.printf("Available backups (%d total, keeping most recent %d):\n\n", len(backups), constants.MaxBackups)
	for _, b := range backups {
		ctx.printf("  %s  %s  (%.1f KB)\n", b.Timestamp.Format("2006-01-02 15:04:05"), filepath.Base(b.Path), float64(b.Size)/1024.0)
	}
	ctx.printf("\nBackup directory: %s\n", mgr.GetBackupDir())
	return nil
}

type BackupRestoreCmd struct {
	BackupFile string `arg:"" help:"Path or filename of the backup to restore."`
	Yes        bool   `short:"y" help:"Skip the confirmation prompt."`
}

func (c *BackupRestoreCmd) Run(ctx *Context) error {
	mgr := ctx.backups()

	backupPath := c.BackupFile
	if !filepath.IsAbs(backupPath) {
		candidate := filepath.Join(mgr.GetBackupDir(), c.BackupFile)
		if _, err := os.Stat(candidate); err == nil {
			backupPath = candidate
		}
	}
	if _, err := os.Stat(backupPath); os.IsNotExist(err) {
		return fmt.Errorf("backup file not found: %s", backupPath)
	}

	if !c.Yes {
		ctx.println("WARNING: This will replace your current days, quests and tasks with the backup.")
		ctx.println("A backup of the current state will be created before restoring.")
		ctx.printf("\nRestore from: %s\n", filepath.Base(backupPath))
		if !ctx.confirm("Continue?") {
			ctx.println("Restore cancelled.")
			return nil
		}
	}

	return ctx.withLock(func() error {
		previous, err := mgr.RestoreBackup(ctx.Store, backupPath)
		if err != nil {
			return fmt.Errorf("restore failed: %w", err)
		}
		ctx.printf("Saved current state to: %s\n", filepath.Base(previous))
		ctx.println("✓ Restored successfully!")
		return nil
	})
}
