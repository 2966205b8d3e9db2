package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/julianstephens/sanctum/internal/backup"
	"github.com/julianstephens/sanctum/internal/boss"
	"github.com/julianstephens/sanctum/internal/catalog"
	"github.com/julianstephens/sanctum/internal/dashboard"
	"github.com/julianstephens/sanctum/internal/logger"
	"github.com/julianstephens/sanctum/internal/quest"
	"github.com/julianstephens/sanctum/internal/storage"
	"github.com/julianstephens/sanctum/internal/utils"
)

type Context struct {
	Store    storage.Provider
	Catalog  *catalog.Catalog
	Timezone string
	Out      io.Writer
	In       io.Reader
}

func (c *Context) out() io.Writer {
	if c.Out == nil {
		return os.Stdout
	}
	return c.Out
}

func (c *Context) in() io.Reader {
	if c.In == nil {
		return os.Stdin
	}
	return c.In
}

func (c *Context) printf(format string, args ...any) {
	fmt.Fprintf(c.out(), format, args...)
}

func (c *Context) println(args ...any) {
	fmt.Fprintln(c.out(), args...)
}

// confirm asks a yes/no question on the context's input
func (c *Context) confirm(question string) bool {
	c.printf("%s [y/N]: ", question)
	response, err := bufio.NewReader(c.in()).ReadString('\n')
	if err != nil && response == "" {
		return false
	}
	response = strings.TrimSpace(strings.ToLower(response))
	return response == "y" || response == "yes"
}

// Today is the current date in the configured timezone
func (c *Context) Today() (string, error) {
	return utils.GetTodayInTimezone(c.Timezone)
}

// resolveDate returns date when set, otherwise today
func (c *Context) resolveDate(date string) (string, error) {
	if date == "" {
		return c.Today()
	}
	if !utils.ValidateDate(date) {
		return "", fmt.Errorf("invalid date %q (expected YYYY-MM-DD)", date)
	}
	return date, nil
}

// withLock runs fn while holding the data directory's writer lock
func (c *Context) withLock(fn func() error) error {
	lock, err := storage.AcquireLock(storage.DataDir(c.Store))
	if err != nil {
		return err
	}
	defer func() {
		if err := lock.Release(); err != nil {
			logger.Warn("failed to release lock", "error", err)
		}
	}()
	return fn()
}

// PerformAutomaticBackup creates an automatic backup and silently handles errors
func (c *Context) PerformAutomaticBackup() {
	mgr := backup.NewManager(storage.DataDir(c.Store))
	if _, err := mgr.CreateBackup(c.Store); err != nil {
		logger.Warn("Automatic backup failed", "error", err)
	}
}

func (c *Context) Narrator() *quest.Narrator {
	return quest.NewNarrator(c.Catalog.FlavorBanks)
}

// Dashboard loads every snapshot and derives the view for date
func (c *Context) Dashboard(date string) (dashboard.View, error) {
	days, err := c.Store.LoadDays()
	if err != nil {
		return dashboard.View{}, err
	}
	tasks, err := c.Store.LoadTasks()
	if err != nil {
		return dashboard.View{}, err
	}
	quests, err := c.Store.LoadQuests()
	if err != nil {
		return dashboard.View{}, err
	}
	gen, err := boss.NewGenerator(c.Catalog.Bosses)
	if err != nil {
		return dashboard.View{}, err
	}
	return dashboard.Build(dashboard.Input{
		Date:    date,
		Days:    days,
		Tasks:   tasks,
		Quests:  quests,
		Catalog: c.Catalog,
		Bosses:  gen,
	}), nil
}
