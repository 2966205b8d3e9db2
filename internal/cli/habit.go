package cli

import (
	"fmt"

	"github.com/julianstephens/sanctum/internal/logger"
	"github.com/julianstephens/sanctum/internal/tracker"
)

type HabitListCmd struct {
	Date string `short:"d" help:"Date to show (YYYY-MM-DD). Defaults to today."`
}

func (c *HabitListCmd) Run(ctx *Context) error {
	date, err := ctx.resolveDate(c.Date)
	if err != nil {
		return err
	}
	days, err := ctx.Store.LoadDays()
	if err != nil {
		return err
	}

	entry := days[date]
	for _, h := range ctx.Catalog.Habits {
		marker := ""
		if h.Heart {
			marker = " ♥"
		}
		ctx.printf("%s %-18s %s%s\n", checkbox(entry.HasHabit(h.ID)), h.ID, h.Label, marker)
	}
	return nil
}

type HabitToggleCmd struct {
	ID   string `arg:"" help:"Habit id (see 'sanctum habit list')."`
	Date string `short:"d" help:"Date to toggle (YYYY-MM-DD). Defaults to today."`
}

func (c *HabitToggleCmd) Run(ctx *Context) error {
	date, err := ctx.resolveDate(c.Date)
	if err != nil {
		return err
	}

	habit, known := ctx.Catalog.Habit(c.ID)
	if !known {
		logger.Warn("toggling habit not in catalog", "id", c.ID)
		ctx.printf("Warning: %q is not in the habit catalog\n", c.ID)
		habit.Label = c.ID
	}

	return ctx.withLock(func() error {
		days, err := ctx.Store.LoadDays()
		if err != nil {
			return err
		}
		next := tracker.ToggleHabit(days, date, c.ID)
		if err := ctx.Store.SaveDays(next); err != nil {
			return fmt.Errorf("failed to save days: %w", err)
		}

		entry := next[date]
		if entry.HasHabit(c.ID) {
			ctx.printf("%s %s completed on %s\n", okStyle.Render("✓"), habit.Label, date)
		} else {
			ctx.printf("%s %s cleared on %s\n", mutedStyle.Render("○"), habit.Label, date)
		}
		ctx.printf("Mood: %s\n", tracker.MoodLabel(entry.Mood))
		return nil
	})
}
