package cli

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/julianstephens/sanctum/internal/models"
	"github.com/julianstephens/sanctum/internal/quest"
	"github.com/julianstephens/sanctum/internal/tui"
)

type QuestTemplatesCmd struct{}

func (c *QuestTemplatesCmd) Run(ctx *Context) error {
	for _, t := range ctx.Catalog.QuestTemplates {
		ctx.printf("%s %s\n", headingStyle.Render(t.ID), mutedStyle.Render(fmt.Sprintf("(%d days, %s, %s)", t.DurationDays, quest.TypeLabel(t.QuestType), t.Archetype)))
		ctx.printf("  %s\n", t.Title)
		if t.IntroText != "" {
			ctx.printf("  %s\n", mutedStyle.Render(t.IntroText))
		}
	}
	return nil
}

type QuestStartCmd struct {
	Template    string `arg:"" optional:"" help:"Template id (see 'sanctum quest templates'). Omit to choose interactively."`
	Title       string `help:"Override the quest title."`
	Duration    int    `help:"Override the duration in days."`
	Archetype   string `help:"Override the archetype (discipline_pact, health_rite, recovery_vigil, custom)."`
	Prompt      string `help:"The daily vow for this quest."`
	Interactive bool   `short:"i" help:"Fill in the quest with an interactive form."`
}

func (c *QuestStartCmd) Validate() error {
	if c.Duration < 0 {
		return fmt.Errorf("duration must be positive")
	}
	if c.Archetype != "" && !models.QuestArchetype(c.Archetype).Valid() {
		return fmt.Errorf("unknown archetype %q", c.Archetype)
	}
	return nil
}

func (c *QuestStartCmd) overrides(templates []models.QuestTemplate) (string, quest.Overrides, error) {
	if c.Template != "" && !c.Interactive {
		return c.Template, quest.Overrides{
			Title:        c.Title,
			DurationDays: c.Duration,
			Archetype:    models.QuestArchetype(c.Archetype),
			CustomPrompt: c.Prompt,
		}, nil
	}

	fm := &tui.QuestFormModel{
		TemplateID: c.Template,
		Title:      c.Title,
		Archetype:  models.QuestArchetype(c.Archetype),
		Prompt:     c.Prompt,
	}
	if c.Duration > 0 {
		fm.Duration = fmt.Sprint(c.Duration)
	}
	if err := tui.NewQuestForm(fm, templates).Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return "", quest.Overrides{}, fmt.Errorf("quest start cancelled")
		}
		return "", quest.Overrides{}, err
	}
	o, err := fm.Overrides()
	return fm.TemplateID, o, err
}

func (c *QuestStartCmd) Run(ctx *Context) error {
	if err := c.Validate(); err != nil {
		return err
	}
	today, err := ctx.Today()
	if err != nil {
		return err
	}

	templateID, o, err := c.overrides(ctx.Catalog.QuestTemplates)
	if err != nil {
		return err
	}
	tmpl, ok := ctx.Catalog.Template(templateID)
	if !ok {
		return fmt.Errorf("unknown quest template: %s", templateID)
	}

	return ctx.withLock(func() error {
		state, err := ctx.Store.LoadQuests()
		if err != nil {
			return err
		}
		next, q, err := quest.Start(state, tmpl, o, today)
		if err != nil {
			return err
		}
		if err := ctx.Store.SaveQuests(next); err != nil {
			return fmt.Errorf("failed to save quest: %w", err)
		}
		ctx.println(headingStyle.Render("Quest begun: " + q.Title))
		ctx.println(mutedStyle.Render(q.IntroText))
		ctx.printf("%d days · %s\n", q.DurationDays, questTypeAndArchetype(q))
		return nil
	})
}

type QuestLogCmd struct {
	Status string `arg:"" enum:"success,fail,skipped,SUCCESS,FAIL,SKIPPED" help:"Outcome for the day: success, fail or skipped."`
	Date   string `short:"d" help:"Date to log (YYYY-MM-DD). Defaults to today."`
}

func (c *QuestLogCmd) Run(ctx *Context) error {
	date, err := ctx.resolveDate(c.Date)
	if err != nil {
		return err
	}
	today, err := ctx.Today()
	if err != nil {
		return err
	}
	status := models.QuestDayStatus(strings.ToUpper(c.Status))

	return ctx.withLock(func() error {
		state, err := ctx.Store.LoadQuests()
		if err != nil {
			return err
		}
		next, day, err := quest.Log(state, ctx.Narrator(), status, date, today)
		if err != nil {
			return err
		}
		if err := ctx.Store.SaveQuests(next); err != nil {
			return fmt.Errorf("failed to save quest day: %w", err)
		}

		for _, q := range next.Quests {
			if q.ID != day.QuestID {
				continue
			}
			ctx.renderQuestDay(q, day)
			if q.Status == models.QuestStatusCompleted {
				ctx.println(okStyle.Render("Quest complete: " + q.Title))
			}
		}
		return nil
	})
}

type QuestAbandonCmd struct {
	Yes bool `short:"y" help:"Skip the confirmation prompt."`
}

func (c *QuestAbandonCmd) Run(ctx *Context) error {
	return ctx.withLock(func() error {
		state, err := ctx.Store.LoadQuests()
		if err != nil {
			return err
		}
		active, ok := quest.Active(state)
		if !ok {
			return quest.ErrNoActiveQuest
		}
		if !c.Yes && !ctx.confirm(fmt.Sprintf("Abandon %s?", active.Title)) {
			ctx.println("Abandon cancelled.")
			return nil
		}

		next, q, err := quest.Abandon(state)
		if err != nil {
			return err
		}
		if err := ctx.Store.SaveQuests(next); err != nil {
			return fmt.Errorf("failed to save quest: %w", err)
		}
		ctx.println(badStyle.Render("Quest abandoned: " + q.Title))
		return nil
	})
}

type QuestStatusCmd struct {
	Date string `short:"d" help:"Date to report on (YYYY-MM-DD). Defaults to today."`
}

func (c *QuestStatusCmd) Run(ctx *Context) error {
	date, err := ctx.resolveDate(c.Date)
	if err != nil {
		return err
	}
	view, err := ctx.Dashboard(date)
	if err != nil {
		return err
	}
	if view.Quest == nil {
		ctx.println("No active quest. Start one with 'sanctum quest start'.")
		return nil
	}
	ctx.renderQuest(*view.Quest)
	return nil
}

type QuestHistoryCmd struct {
	All bool `short:"a" help:"Include the active quest."`
}

func (c *QuestHistoryCmd) Run(ctx *Context) error {
	state, err := ctx.Store.LoadQuests()
	if err != nil {
		return err
	}

	quests := append([]models.Quest(nil), state.Quests...)
	sort.SliceStable(quests, func(i, j int) bool { return quests[i].StartDate > quests[j].StartDate })

	shown := 0
	for _, q := range quests {
		if q.Status == models.QuestStatusActive && !c.All {
			continue
		}
		successes, fails := quest.OutcomeCounts(q, state.QuestDays)
		res := quest.Totals(q, state.QuestDays)
		status := string(q.Status)
		switch q.Status {
		case models.QuestStatusCompleted:
			status = okStyle.Render(status)
		case models.QuestStatusAbandoned:
			status = badStyle.Render(status)
		}
		ctx.printf("%s  %s  %s\n", q.StartDate, status, headingStyle.Render(q.Title))
		ctx.printf("  %d won / %d lost  ·  %s %d  %s %d  %s %d\n", successes, fails,
			q.Labels.Vigor, res.Vigor, q.Labels.Resolve, res.Resolve, q.Labels.Corruption, res.Corruption)
		shown++
	}
	if shown == 0 {
		ctx.println("No finished quests yet.")
	}
	return nil
}
