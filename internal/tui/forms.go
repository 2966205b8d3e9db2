package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/julianstephens/sanctum/internal/models"
	"github.com/julianstephens/sanctum/internal/quest"
)

// QuestFormModel backs the quest start form. Empty fields keep the
// template's values.
type QuestFormModel struct {
	TemplateID string
	Title      string
	Duration   string
	Archetype  models.QuestArchetype
	Prompt     string
}

// Overrides converts the form values for quest.Start
func (fm *QuestFormModel) Overrides() (quest.Overrides, error) {
	o := quest.Overrides{
		Title:        strings.TrimSpace(fm.Title),
		Archetype:    fm.Archetype,
		CustomPrompt: strings.TrimSpace(fm.Prompt),
	}
	if s := strings.TrimSpace(fm.Duration); s != "" {
		days, err := strconv.Atoi(s)
		if err != nil || days <= 0 {
			return quest.Overrides{}, fmt.Errorf("duration must be a positive number of days")
		}
		o.DurationDays = days
	}
	return o, nil
}

func validateDuration(s string) error {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	i, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return err
	}
	if i <= 0 {
		return fmt.Errorf("duration must be a positive number of days")
	}
	return nil
}

// NewQuestForm builds the form for starting a quest from templates
func NewQuestForm(fm *QuestFormModel, templates []models.QuestTemplate) *huh.Form {
	options := make([]huh.Option[string], 0, len(templates))
	for _, t := range templates {
		options = append(options, huh.NewOption(fmt.Sprintf("%s (%d days)", t.Title, t.DurationDays), t.ID))
	}
	archetypes := []huh.Option[models.QuestArchetype]{huh.NewOption("Template default", models.QuestArchetype(""))}
	for _, a := range models.Archetypes {
		archetypes = append(archetypes, huh.NewOption(string(a), a))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Quest").
				Options(options...).
				Value(&fm.TemplateID),
			huh.NewInput().
				Title("Title").
				Description("Leave blank to keep the template title").
				Value(&fm.Title),
			huh.NewInput().
				Title("Duration (days)").
				Description("Leave blank to keep the template duration").
				Value(&fm.Duration).
				Validate(validateDuration),
			huh.NewSelect[models.QuestArchetype]().
				Title("Archetype").
				Options(archetypes...).
				Value(&fm.Archetype),
			huh.NewInput().
				Title("Vow").
				Description("What must be done each day").
				Value(&fm.Prompt),
		),
	).WithTheme(huh.ThemeDracula())
}

// TaskFormModel backs the daily task form
type TaskFormModel struct {
	Label string
}

func NewTaskForm(fm *TaskFormModel) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Contract").
				Value(&fm.Label).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("task label cannot be empty")
					}
					return nil
				}),
		),
	).WithTheme(huh.ThemeDracula())
}

// NoteFormModel backs the daily note form
type NoteFormModel struct {
	Note string
}

func NewNoteForm(fm *NoteFormModel) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewText().
				Title("Note").
				Value(&fm.Note),
		),
	).WithTheme(huh.ThemeDracula())
}
