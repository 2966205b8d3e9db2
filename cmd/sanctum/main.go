package main

import (
	"fmt"

	"github.com/alecthomas/kong"

	"github.com/julianstephens/sanctum/internal/catalog"
	"github.com/julianstephens/sanctum/internal/cli"
	"github.com/julianstephens/sanctum/internal/constants"
	"github.com/julianstephens/sanctum/internal/errors"
	"github.com/julianstephens/sanctum/internal/logger"
	"github.com/julianstephens/sanctum/internal/storage"
	"github.com/julianstephens/sanctum/internal/utils"
)

var CLI struct {
	Version  kong.VersionFlag
	Data     string `help:"Data directory for JSON storage, or a path ending in .db for SQLite." type:"path" env:"SANCTUM_DATA" default:"${data_dir}"`
	Catalog  string `help:"YAML file merged over the built-in habit, boss and quest catalog." type:"path" env:"SANCTUM_CATALOG"`
	Timezone string `help:"IANA timezone used to decide what 'today' is. Defaults to the local zone." env:"SANCTUM_TZ"`
	LogLevel string `help:"Log file level: debug, info, warn or error." env:"SANCTUM_LOG_LEVEL" default:"warn"`
	Debug    bool   `help:"Log debug output to stderr."`

	Init  cli.InitCmd  `cmd:"" help:"Initialize sanctum storage."`
	Tui   cli.TuiCmd   `cmd:"" help:"Launch the interactive TUI." default:"1"`
	Today cli.TodayCmd `cmd:"" help:"Show the day's mood, habits, contracts and quest."`
	Week  cli.WeekCmd  `cmd:"" help:"Show the weekly score, task XP and boss fight."`
	Habit struct {
		List   cli.HabitListCmd   `cmd:"" help:"List habits for a day." default:"1"`
		Toggle cli.HabitToggleCmd `cmd:"" help:"Toggle a habit for a day."`
	} `cmd:"" help:"Track daily habits."`
	Note  cli.NoteCmd  `cmd:"" help:"Set or clear the note for a day."`
	Train cli.TrainCmd `cmd:"" help:"Log a training session."`
	Task  struct {
		Add    cli.TaskAddCmd    `cmd:"" help:"Add a daily task."`
		Toggle cli.TaskToggleCmd `cmd:"" help:"Toggle a daily task."`
		Delete cli.TaskDeleteCmd `cmd:"" help:"Delete a daily task."`
		List   cli.TaskListCmd   `cmd:"" help:"List daily tasks." default:"1"`
	} `cmd:"" help:"Manage daily task contracts."`
	Quest struct {
		Templates cli.QuestTemplatesCmd `cmd:"" help:"List quest templates."`
		Start     cli.QuestStartCmd     `cmd:"" help:"Start a quest from a template."`
		Log       cli.QuestLogCmd       `cmd:"" help:"Log the outcome of a quest day."`
		Abandon   cli.QuestAbandonCmd   `cmd:"" help:"Abandon the active quest."`
		Status    cli.QuestStatusCmd    `cmd:"" help:"Show the active quest." default:"1"`
		History   cli.QuestHistoryCmd   `cmd:"" help:"Show past quests or the active quest's days."`
	} `cmd:"" help:"Run quests."`
	Export cli.ExportCmd `cmd:"" help:"Export day entries to JSON."`
	Import cli.ImportCmd `cmd:"" help:"Replace day entries from an exported JSON file."`
	Backup struct {
		Create  cli.BackupCreateCmd  `cmd:"" help:"Create a manual backup." default:"1"`
		List    cli.BackupListCmd    `cmd:"" help:"List available backups."`
		Restore cli.BackupRestoreCmd `cmd:"" help:"Restore from a backup."`
	} `cmd:"" help:"Manage backups."`
}

func loadCatalog(path string) (*catalog.Catalog, error) {
	if path == "" {
		return catalog.Default()
	}
	return catalog.Load(path)
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description("A dark-fantasy habit tracker: moods, streaks, weekly bosses and quests."),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact:             true,
			NoExpandSubcommands: true,
		}),
		kong.Vars{
			"version":     constants.Version,
			"data_dir":    constants.DefaultDataDir,
			"export_file": constants.ExportFileName,
		},
	)

	store := storage.New(CLI.Data)
	if err := logger.Init(logger.Config{Debug: CLI.Debug, Level: CLI.LogLevel, DataDir: storage.DataDir(store)}); err != nil {
		errors.Fatalf("failed to initialize logger: %v", err)
	}
	defer logger.Close()

	if CLI.Timezone != "" && !utils.ValidateTimezone(CLI.Timezone) {
		errors.Fatal(fmt.Errorf("invalid timezone %q", CLI.Timezone))
	}

	cat, err := loadCatalog(CLI.Catalog)
	if err != nil {
		errors.Fatal(err)
	}

	appCtx := &cli.Context{
		Store:    store,
		Catalog:  cat,
		Timezone: CLI.Timezone,
	}

	// Init handles its own storage setup
	if ctx.Command() != "init" {
		if err := store.Load(); err != nil {
			errors.Fatal(err)
		}
		defer store.Close()
	}

	if err := ctx.Run(appCtx); err != nil {
		store.Close()
		errors.Fatal(err)
	}
}
