package cli

import (
	"fmt"
	"strings"

	"github.com/julianstephens/sanctum/internal/models"
	"github.com/julianstephens/sanctum/internal/tracker"
)

type NoteCmd struct {
	Text []string `arg:"" optional:"" help:"Note text. Omit to clear the note."`
	Date string   `short:"d" help:"Date of the note (YYYY-MM-DD). Defaults to today."`
}

func (c *NoteCmd) Run(ctx *Context) error {
	date, err := ctx.resolveDate(c.Date)
	if err != nil {
		return err
	}
	text := strings.TrimSpace(strings.Join(c.Text, " "))

	return ctx.withLock(func() error {
		days, err := ctx.Store.LoadDays()
		if err != nil {
			return err
		}
		if err := ctx.Store.SaveDays(tracker.SetNote(days, date, text)); err != nil {
			return fmt.Errorf("failed to save note: %w", err)
		}
		if text == "" {
			ctx.printf("Note cleared for %s\n", date)
		} else {
			ctx.printf("Note saved for %s\n", date)
		}
		return nil
	})
}

type TrainCmd struct {
	Exercise string `arg:"" help:"Exercise id: run, seated_leg_press, chest_dips or pull_ups."`
	Metric   string `short:"m" help:"Free-form metric, e.g. '3 mi' or '90 kg x 8'."`
	RPE      int    `short:"r" help:"Rate of perceived exertion (1-10). 0 leaves it unset."`
	Date     string `short:"d" help:"Date of the session (YYYY-MM-DD). Defaults to today."`
}

func (c *TrainCmd) Validate() error {
	if _, ok := tracker.LookupExercise(c.Exercise); !ok {
		return fmt.Errorf("unknown exercise %q", c.Exercise)
	}
	if c.RPE < 0 || c.RPE > 10 {
		return fmt.Errorf("rpe must be between 1 and 10")
	}
	return nil
}

func (c *TrainCmd) Run(ctx *Context) error {
	if err := c.Validate(); err != nil {
		return err
	}
	date, err := ctx.resolveDate(c.Date)
	if err != nil {
		return err
	}

	log := models.ExerciseLog{Metric: strings.TrimSpace(c.Metric)}
	if c.RPE > 0 {
		rpe := c.RPE
		log.RPE = &rpe
	}

	return ctx.withLock(func() error {
		days, err := ctx.Store.LoadDays()
		if err != nil {
			return err
		}
		if err := ctx.Store.SaveDays(tracker.SetExercise(days, date, c.Exercise, log)); err != nil {
			return fmt.Errorf("failed to save training: %w", err)
		}
		exercise, _ := tracker.LookupExercise(c.Exercise)
		ctx.printf("Logged %s for %s\n", exercise.Label, date)
		return nil
	})
}
