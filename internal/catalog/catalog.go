// Package catalog loads the static content that drives the tracker: the habit
// list, quest templates, archetype flavor banks, the boss roster and the daily
// titles. A default catalog is embedded; a user file may replace any section.
package catalog

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/julianstephens/sanctum/internal/models"
)

//go:embed default.yaml
var defaultYAML []byte

type Catalog struct {
	Habits         []models.Habit                              `yaml:"habits"`
	QuestTemplates []models.QuestTemplate                      `yaml:"quest_templates"`
	FlavorBanks    map[models.QuestArchetype]models.FlavorBank `yaml:"flavor_banks"`
	Bosses         []models.BossProfile                        `yaml:"bosses"`
	DailyTitles    map[models.Mood][]string                    `yaml:"daily_titles"`
}

// Default returns the embedded catalog
func Default() (*Catalog, error) {
	c, err := Parse(defaultYAML)
	if err != nil {
		return nil, fmt.Errorf("failed to parse embedded catalog: %w", err)
	}
	return c, nil
}

// Parse decodes a catalog document without validating it
func Parse(data []byte) (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, err
	}
	return &c, nil
}

// Load returns the embedded catalog with any non-empty section of the file at
// path layered on top. An empty path yields the defaults.
func Load(path string) (*Catalog, error) {
	base, err := Default()
	if err != nil {
		return nil, err
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read catalog: %w", err)
		}
		override, err := Parse(data)
		if err != nil {
			return nil, fmt.Errorf("failed to parse catalog %s: %w", path, err)
		}
		base.merge(override)
	}

	if err := base.Validate(); err != nil {
		return nil, err
	}
	return base, nil
}

func (c *Catalog) merge(o *Catalog) {
	if len(o.Habits) > 0 {
		c.Habits = o.Habits
	}
	if len(o.QuestTemplates) > 0 {
		c.QuestTemplates = o.QuestTemplates
	}
	for archetype, bank := range o.FlavorBanks {
		c.FlavorBanks[archetype] = bank
	}
	if len(o.Bosses) > 0 {
		c.Bosses = o.Bosses
	}
	for mood, titles := range o.DailyTitles {
		c.DailyTitles[mood] = titles
	}
}

// Validate checks the invariants the engines rely on
func (c *Catalog) Validate() error {
	seen := make(map[string]bool, len(c.Habits))
	for _, h := range c.Habits {
		if h.ID == "" {
			return fmt.Errorf("habit %q has no id", h.Label)
		}
		if seen[h.ID] {
			return fmt.Errorf("duplicate habit id: %s", h.ID)
		}
		seen[h.ID] = true
	}

	templates := make(map[string]bool, len(c.QuestTemplates))
	for _, t := range c.QuestTemplates {
		if t.ID == "" {
			return fmt.Errorf("quest template %q has no id", t.Title)
		}
		if templates[t.ID] {
			return fmt.Errorf("duplicate quest template id: %s", t.ID)
		}
		templates[t.ID] = true
		if t.DurationDays <= 0 {
			return fmt.Errorf("quest template %s: duration must be positive, got %d", t.ID, t.DurationDays)
		}
		if !t.Archetype.Valid() {
			return fmt.Errorf("quest template %s: unknown archetype %q", t.ID, t.Archetype)
		}
		if t.QuestType != models.QuestTypeManual && t.QuestType != models.QuestTypeMetric {
			return fmt.Errorf("quest template %s: unknown quest type %q", t.ID, t.QuestType)
		}
	}

	for archetype := range c.FlavorBanks {
		if !archetype.Valid() {
			return fmt.Errorf("flavor bank for unknown archetype %q", archetype)
		}
	}
	if _, ok := c.FlavorBanks[models.ArchetypeCustom]; !ok {
		return fmt.Errorf("catalog must define a %q flavor bank", models.ArchetypeCustom)
	}

	if len(c.Bosses) == 0 {
		return fmt.Errorf("catalog must define at least one boss")
	}
	for _, b := range c.Bosses {
		if b.Difficulty < 1 || b.Difficulty > 5 {
			return fmt.Errorf("boss %q: difficulty must be 1-5, got %d", b.Name, b.Difficulty)
		}
	}

	return nil
}

// Habit looks up a habit by id
func (c *Catalog) Habit(id string) (models.Habit, bool) {
	for _, h := range c.Habits {
		if h.ID == id {
			return h, true
		}
	}
	return models.Habit{}, false
}

// HeartHabits returns the habits marked as heart pillars, in catalog order
func (c *Catalog) HeartHabits() []models.Habit {
	var out []models.Habit
	for _, h := range c.Habits {
		if h.Heart {
			out = append(out, h)
		}
	}
	return out
}

// Template looks up a quest template by id
func (c *Catalog) Template(id string) (models.QuestTemplate, bool) {
	for _, t := range c.QuestTemplates {
		if t.ID == id {
			return t, true
		}
	}
	return models.QuestTemplate{}, false
}
