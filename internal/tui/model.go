package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/julianstephens/sanctum/internal/boss"
	"github.com/julianstephens/sanctum/internal/catalog"
	"github.com/julianstephens/sanctum/internal/dashboard"
	"github.com/julianstephens/sanctum/internal/logger"
	"github.com/julianstephens/sanctum/internal/quest"
	"github.com/julianstephens/sanctum/internal/storage"
	"github.com/julianstephens/sanctum/internal/tui/components/checklist"
)

type SessionState int

const (
	StateToday SessionState = iota
	StateContracts
	StateWeek
	StateQuest
	StateForm
	StateConfirm
)

const numTabs = 4

var tabTitles = []string{"Today", "Contracts", "Week", "Quest"}

type formKind int

const (
	formNone formKind = iota
	formNote
	formTask
	formQuest
)

type Config struct {
	Store   storage.Provider
	Catalog *catalog.Catalog
	// Today is the current date (YYYY-MM-DD) in the user's timezone
	Today string
}

type Model struct {
	store    storage.Provider
	catalog  *catalog.Catalog
	narrator *quest.Narrator
	bosses   *boss.Generator

	state   SessionState
	tab     SessionState
	keys    KeyMap
	help    help.Model
	habits  checklist.Model
	tasks   checklist.Model
	today   string
	date    string
	view    dashboard.View
	loadErr error

	form      *huh.Form
	formKind  formKind
	questForm *QuestFormModel
	taskForm  *TaskFormModel
	noteForm  *NoteFormModel

	confirmPrompt string
	onConfirm     func(*Model) error

	status   string
	err      error
	quitting bool
	width    int
	height   int
}

func NewModel(cfg Config) (Model, error) {
	gen, err := boss.NewGenerator(cfg.Catalog.Bosses)
	if err != nil {
		return Model{}, err
	}
	m := Model{
		store:    cfg.Store,
		catalog:  cfg.Catalog,
		narrator: quest.NewNarrator(cfg.Catalog.FlavorBanks),
		bosses:   gen,
		state:    StateToday,
		tab:      StateToday,
		keys:     DefaultKeyMap(),
		help:     help.New(),
		habits:   checklist.New(nil, "No habits in the catalog."),
		tasks:    checklist.New(nil, "No contracts for this day. Press a to add one."),
		today:    cfg.Today,
		date:     cfg.Today,
	}
	m.reload()
	return m, m.loadErr
}

func (m Model) Init() tea.Cmd {
	return nil
}

// Date is the day currently shown
func (m Model) Date() string {
	return m.date
}

// View data for the current day, exposed for tests
func (m Model) Dashboard() dashboard.View {
	return m.view
}

func (m Model) ShortHelp() []key.Binding {
	keys := []key.Binding{m.keys.Tab, m.keys.PrevDay, m.keys.NextDay, m.keys.Quit, m.keys.Help}
	switch m.state {
	case StateToday:
		keys = append(keys, m.keys.Note)
	case StateContracts:
		keys = append(keys, m.keys.Add, m.keys.Delete)
	case StateQuest:
		keys = append(keys, m.keys.Start, m.keys.Success, m.keys.Fail, m.keys.Skip, m.keys.Abandon)
	case StateConfirm:
		return []key.Binding{m.keys.Confirm, m.keys.Cancel}
	}
	return keys
}

func (m Model) FullHelp() [][]key.Binding {
	global := []key.Binding{m.keys.Tab, m.keys.ShiftTab, m.keys.Quit, m.keys.Help}
	days := []key.Binding{m.keys.PrevDay, m.keys.NextDay, m.keys.Today}

	var actions []key.Binding
	switch m.state {
	case StateToday:
		actions = []key.Binding{m.keys.Note}
	case StateContracts:
		actions = []key.Binding{m.keys.Add, m.keys.Delete}
	case StateQuest:
		actions = []key.Binding{m.keys.Start, m.keys.Success, m.keys.Fail, m.keys.Skip, m.keys.Abandon}
	}
	return [][]key.Binding{global, days, actions}
}

// reload reads every snapshot and rebuilds the dashboard for m.date
func (m *Model) reload() {
	days, err := m.store.LoadDays()
	if err != nil {
		m.loadErr = err
		return
	}
	tasks, err := m.store.LoadTasks()
	if err != nil {
		m.loadErr = err
		return
	}
	quests, err := m.store.LoadQuests()
	if err != nil {
		m.loadErr = err
		return
	}
	m.loadErr = nil
	m.view = dashboard.Build(dashboard.Input{
		Date:    m.date,
		Days:    days,
		Tasks:   tasks,
		Quests:  quests,
		Catalog: m.catalog,
		Bosses:  m.bosses,
	})

	habitItems := make([]checklist.Item, 0, len(m.catalog.Habits))
	for _, h := range m.catalog.Habits {
		item := checklist.Item{ID: h.ID, Label: h.Label, Done: m.view.Entry.HasHabit(h.ID)}
		if h.Heart {
			item.Detail = "♥"
		}
		habitItems = append(habitItems, item)
	}
	m.habits.SetItems(habitItems)

	taskItems := make([]checklist.Item, 0, len(m.view.Tasks))
	for _, t := range m.view.Tasks {
		taskItems = append(taskItems, checklist.Item{ID: t.ID, Label: t.Label, Done: t.Completed})
	}
	m.tasks.SetItems(taskItems)
}

// mutate runs fn under the writer lock and reloads the view. Failures are
// shown in the status line.
func (m *Model) mutate(fn func() error) {
	lock, err := storage.AcquireLock(storage.DataDir(m.store))
	if err != nil {
		m.setError(err)
		return
	}
	defer func() {
		if err := lock.Release(); err != nil {
			logger.Warn("failed to release lock", "error", err)
		}
	}()

	if err := fn(); err != nil {
		m.setError(err)
		return
	}
	m.err = nil
	m.reload()
}

func (m *Model) setError(err error) {
	logger.Error("tui action failed", "error", err)
	m.err = err
	m.status = ""
}

func (m *Model) setStatus(format string, args ...any) {
	m.err = nil
	m.status = fmt.Sprintf(format, args...)
}
