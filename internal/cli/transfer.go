package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/julianstephens/sanctum/internal/backup"
	"github.com/julianstephens/sanctum/internal/constants"
	"github.com/julianstephens/sanctum/internal/storage"
)

type ExportCmd struct {
	Output string `short:"o" help:"Destination file, or - for stdout." default:"${export_file}"`
}

func (c *ExportCmd) Run(ctx *Context) error {
	days, err := ctx.Store.LoadDays()
	if err != nil {
		return err
	}

	if c.Output == "-" {
		return storage.ExportDays(ctx.out(), days)
	}

	output := c.Output
	if output == "" {
		output = constants.ExportFileName
	}
	f, err := os.OpenFile(output, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0600)
	if err != nil {
		return fmt.Errorf("failed to create export file: %w", err)
	}
	if err := storage.ExportDays(f, days); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to write export file: %w", err)
	}
	ctx.printf("Exported %d day(s) to %s\n", len(days), output)
	return nil
}

type ImportCmd struct {
	File string `arg:"" type:"existingfile" help:"Exported days file to import."`
	Yes  bool   `short:"y" help:"Skip the confirmation prompt."`
}

func (c *ImportCmd) Run(ctx *Context) error {
	f, err := os.Open(c.File)
	if err != nil {
		return fmt.Errorf("failed to open import file: %w", err)
	}
	days, err := storage.ImportDays(f)
	f.Close()
	if err != nil {
		return err
	}

	ctx.printf("%s contains %d day(s). Importing replaces all recorded days.\n", filepath.Base(c.File), len(days))
	if !c.Yes && !ctx.confirm("Continue?") {
		ctx.println("Import cancelled.")
		return nil
	}

	return ctx.withLock(func() error {
		mgr := backup.NewManager(storage.DataDir(ctx.Store))
		path, err := mgr.CreateBackup(ctx.Store)
		if err != nil {
			return fmt.Errorf("failed to back up before import: %w", err)
		}
		if err := ctx.Store.SaveDays(days); err != nil {
			return fmt.Errorf("failed to save imported days: %w", err)
		}
		ctx.printf("%s Imported %d day(s). Previous state saved to %s\n", okStyle.Render("✓"), len(days), filepath.Base(path))
		return nil
	})
}
