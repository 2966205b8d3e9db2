package cli

import (
	"fmt"
	"strings"

	"github.com/julianstephens/sanctum/internal/models"
	"github.com/julianstephens/sanctum/internal/tracker"
)

type TaskAddCmd struct {
	Label []string `arg:"" help:"Task label."`
	Date  string   `short:"d" help:"Date of the task (YYYY-MM-DD). Defaults to today."`
}

func (c *TaskAddCmd) Run(ctx *Context) error {
	date, err := ctx.resolveDate(c.Date)
	if err != nil {
		return err
	}

	return ctx.withLock(func() error {
		board, err := ctx.Store.LoadTasks()
		if err != nil {
			return err
		}
		next, task, ok := tracker.AddTask(board, date, strings.Join(c.Label, " "))
		if !ok {
			return fmt.Errorf("task label cannot be empty")
		}
		if err := ctx.Store.SaveTasks(next); err != nil {
			return fmt.Errorf("failed to save task: %w", err)
		}
		ctx.printf("Added task %s (%s)\n", task.Label, shortID(task.ID))
		return nil
	})
}

// findTask resolves a full id or unique id prefix on date
func findTask(tasks []models.DailyTask, ref string) (models.DailyTask, error) {
	var matches []models.DailyTask
	for _, t := range tasks {
		if t.ID == ref {
			return t, nil
		}
		if strings.HasPrefix(t.ID, ref) {
			matches = append(matches, t)
		}
	}
	switch len(matches) {
	case 0:
		return models.DailyTask{}, fmt.Errorf("task not found: %s", ref)
	case 1:
		return matches[0], nil
	default:
		return models.DailyTask{}, fmt.Errorf("task id %q is ambiguous", ref)
	}
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

type TaskToggleCmd struct {
	ID   string `arg:"" help:"Task id or unique prefix."`
	Date string `short:"d" help:"Date of the task (YYYY-MM-DD). Defaults to today."`
}

func (c *TaskToggleCmd) Run(ctx *Context) error {
	date, err := ctx.resolveDate(c.Date)
	if err != nil {
		return err
	}

	return ctx.withLock(func() error {
		board, err := ctx.Store.LoadTasks()
		if err != nil {
			return err
		}
		task, err := findTask(board[date], c.ID)
		if err != nil {
			return err
		}
		next, _ := tracker.ToggleTask(board, date, task.ID)
		if err := ctx.Store.SaveTasks(next); err != nil {
			return fmt.Errorf("failed to save task: %w", err)
		}
		ctx.printf("%s %s\n", checkbox(!task.Completed), task.Label)
		return nil
	})
}

type TaskDeleteCmd struct {
	ID   string `arg:"" help:"Task id or unique prefix."`
	Date string `short:"d" help:"Date of the task (YYYY-MM-DD). Defaults to today."`
}

func (c *TaskDeleteCmd) Run(ctx *Context) error {
	date, err := ctx.resolveDate(c.Date)
	if err != nil {
		return err
	}

	return ctx.withLock(func() error {
		board, err := ctx.Store.LoadTasks()
		if err != nil {
			return err
		}
		task, err := findTask(board[date], c.ID)
		if err != nil {
			return err
		}
		next, _ := tracker.DeleteTask(board, date, task.ID)
		if err := ctx.Store.SaveTasks(next); err != nil {
			return fmt.Errorf("failed to delete task: %w", err)
		}
		ctx.printf("Deleted task %s\n", task.Label)
		return nil
	})
}

type TaskListCmd struct {
	Date string `short:"d" help:"Date to list (YYYY-MM-DD). Defaults to today."`
}

func (c *TaskListCmd) Run(ctx *Context) error {
	date, err := ctx.resolveDate(c.Date)
	if err != nil {
		return err
	}
	board, err := ctx.Store.LoadTasks()
	if err != nil {
		return err
	}

	tasks := board[date]
	meta := tracker.DayTaskMeta(tasks)
	ctx.println(headingStyle.Render(fmt.Sprintf("Contracts for %s: %s", date, meta.TitleSuffix)))
	for _, t := range tasks {
		ctx.printf("  %s %s  %s\n", checkbox(t.Completed), mutedStyle.Render(shortID(t.ID)), t.Label)
	}
	if len(tasks) > 0 {
		ctx.printf("%d/%d complete (%d%%)\n", meta.Completed, meta.Total, meta.Percent)
	}
	ctx.println(mutedStyle.Render(meta.Flavor))
	return nil
}
