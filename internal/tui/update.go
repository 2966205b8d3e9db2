package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/julianstephens/sanctum/internal/models"
	"github.com/julianstephens/sanctum/internal/quest"
	"github.com/julianstephens/sanctum/internal/tracker"
	"github.com/julianstephens/sanctum/internal/tui/components/checklist"
	"github.com/julianstephens/sanctum/internal/utils"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.WindowSizeMsg); ok {
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil
	}

	switch m.state {
	case StateForm:
		return m.updateForm(msg)
	case StateConfirm:
		return m.updateConfirm(msg)
	}

	switch msg := msg.(type) {
	case checklist.ToggleMsg:
		m.handleToggle(msg.ID)
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		case key.Matches(msg, m.keys.Tab):
			m.switchTab((m.tab + 1) % numTabs)
			return m, nil
		case key.Matches(msg, m.keys.ShiftTab):
			m.switchTab((m.tab - 1 + numTabs) % numTabs)
			return m, nil
		case key.Matches(msg, m.keys.PrevDay):
			m.setDate(utils.ShiftDate(m.date, -1))
			return m, nil
		case key.Matches(msg, m.keys.NextDay):
			m.setDate(utils.ShiftDate(m.date, 1))
			return m, nil
		case key.Matches(msg, m.keys.Today):
			m.setDate(m.today)
			return m, nil
		}
		return m.updateTab(msg)
	}
	return m, nil
}

func (m *Model) switchTab(tab SessionState) {
	m.tab = tab
	m.state = tab
	m.status = ""
}

func (m *Model) setDate(date string) {
	m.date = date
	m.status = ""
	m.err = nil
	m.reload()
}

func (m Model) updateTab(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.state {
	case StateToday:
		if key.Matches(msg, m.keys.Note) {
			m.noteForm = &NoteFormModel{Note: m.view.Entry.Note}
			return m.openForm(formNote, NewNoteForm(m.noteForm))
		}
		m.habits, cmd = m.habits.Update(msg)

	case StateContracts:
		switch {
		case key.Matches(msg, m.keys.Add):
			m.taskForm = &TaskFormModel{}
			return m.openForm(formTask, NewTaskForm(m.taskForm))
		case key.Matches(msg, m.keys.Delete):
			item, ok := m.tasks.Selected()
			if !ok {
				return m, nil
			}
			date := m.date
			m.askConfirm(fmt.Sprintf("Delete contract %q?", item.Label), func(m *Model) error {
				return m.deleteTask(date, item.ID)
			})
			return m, nil
		}
		m.tasks, cmd = m.tasks.Update(msg)

	case StateQuest:
		switch {
		case key.Matches(msg, m.keys.Start):
			if _, active := m.activeQuest(); active {
				m.setError(quest.ErrQuestActive)
				return m, nil
			}
			m.questForm = &QuestFormModel{}
			if len(m.catalog.QuestTemplates) > 0 {
				m.questForm.TemplateID = m.catalog.QuestTemplates[0].ID
			}
			return m.openForm(formQuest, NewQuestForm(m.questForm, m.catalog.QuestTemplates))
		case key.Matches(msg, m.keys.Success):
			m.logQuest(models.QuestDaySuccess)
		case key.Matches(msg, m.keys.Fail):
			m.logQuest(models.QuestDayFail)
		case key.Matches(msg, m.keys.Skip):
			m.logQuest(models.QuestDaySkipped)
		case key.Matches(msg, m.keys.Abandon):
			q, active := m.activeQuest()
			if !active {
				m.setError(quest.ErrNoActiveQuest)
				return m, nil
			}
			m.askConfirm(fmt.Sprintf("Abandon %s?", q.Title), (*Model).abandonQuest)
		}
	}
	return m, cmd
}

func (m Model) openForm(kind formKind, form *huh.Form) (tea.Model, tea.Cmd) {
	m.form = form
	m.formKind = kind
	m.state = StateForm
	m.status = ""
	return m, m.form.Init()
}

func (m *Model) closeForm() {
	m.form = nil
	m.formKind = formNone
	m.state = m.tab
}

func (m Model) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok && msg.Type == tea.KeyEsc {
		m.closeForm()
		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	switch m.form.State {
	case huh.StateCompleted:
		kind := m.formKind
		m.closeForm()
		m.submitForm(kind)
	case huh.StateAborted:
		m.closeForm()
	}
	return m, cmd
}

func (m *Model) submitForm(kind formKind) {
	switch kind {
	case formNote:
		note := strings.TrimSpace(m.noteForm.Note)
		date := m.date
		m.mutate(func() error {
			days, err := m.store.LoadDays()
			if err != nil {
				return err
			}
			if err := m.store.SaveDays(tracker.SetNote(days, date, note)); err != nil {
				return fmt.Errorf("failed to save note: %w", err)
			}
			m.setStatus("Note saved for %s", date)
			return nil
		})

	case formTask:
		date := m.date
		label := m.taskForm.Label
		m.mutate(func() error {
			board, err := m.store.LoadTasks()
			if err != nil {
				return err
			}
			next, task, ok := tracker.AddTask(board, date, label)
			if !ok {
				return fmt.Errorf("task label cannot be empty")
			}
			if err := m.store.SaveTasks(next); err != nil {
				return fmt.Errorf("failed to save task: %w", err)
			}
			m.setStatus("Added contract %s", task.Label)
			return nil
		})

	case formQuest:
		o, err := m.questForm.Overrides()
		if err != nil {
			m.setError(err)
			return
		}
		tmpl, ok := m.catalog.Template(m.questForm.TemplateID)
		if !ok {
			m.setError(fmt.Errorf("unknown quest template: %s", m.questForm.TemplateID))
			return
		}
		today := m.today
		m.mutate(func() error {
			state, err := m.store.LoadQuests()
			if err != nil {
				return err
			}
			next, q, err := quest.Start(state, tmpl, o, today)
			if err != nil {
				return err
			}
			if err := m.store.SaveQuests(next); err != nil {
				return fmt.Errorf("failed to save quest: %w", err)
			}
			m.setStatus("Quest begun: %s", q.Title)
			return nil
		})
	}
}

func (m *Model) askConfirm(prompt string, fn func(*Model) error) {
	m.confirmPrompt = prompt
	m.onConfirm = fn
	m.state = StateConfirm
	m.status = ""
}

func (m Model) updateConfirm(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch {
	case key.Matches(keyMsg, m.keys.Confirm):
		fn := m.onConfirm
		m.onConfirm = nil
		m.state = m.tab
		if fn != nil {
			m.mutate(func() error { return fn(&m) })
		}
	case key.Matches(keyMsg, m.keys.Cancel):
		m.onConfirm = nil
		m.state = m.tab
	}
	return m, nil
}

func (m *Model) handleToggle(id string) {
	date := m.date
	switch m.state {
	case StateToday:
		m.mutate(func() error {
			days, err := m.store.LoadDays()
			if err != nil {
				return err
			}
			if err := m.store.SaveDays(tracker.ToggleHabit(days, date, id)); err != nil {
				return fmt.Errorf("failed to save days: %w", err)
			}
			return nil
		})
	case StateContracts:
		m.mutate(func() error {
			board, err := m.store.LoadTasks()
			if err != nil {
				return err
			}
			next, ok := tracker.ToggleTask(board, date, id)
			if !ok {
				return fmt.Errorf("task not found: %s", id)
			}
			if err := m.store.SaveTasks(next); err != nil {
				return fmt.Errorf("failed to save task: %w", err)
			}
			return nil
		})
	}
}

func (m *Model) deleteTask(date, id string) error {
	board, err := m.store.LoadTasks()
	if err != nil {
		return err
	}
	next, ok := tracker.DeleteTask(board, date, id)
	if !ok {
		return fmt.Errorf("task not found: %s", id)
	}
	if err := m.store.SaveTasks(next); err != nil {
		return fmt.Errorf("failed to save task: %w", err)
	}
	m.setStatus("Contract deleted")
	return nil
}

func (m *Model) activeQuest() (models.Quest, bool) {
	state, err := m.store.LoadQuests()
	if err != nil {
		return models.Quest{}, false
	}
	return quest.Active(state)
}

func (m *Model) logQuest(status models.QuestDayStatus) {
	date, today := m.date, m.today
	m.mutate(func() error {
		state, err := m.store.LoadQuests()
		if err != nil {
			return err
		}
		next, day, err := quest.Log(state, m.narrator, status, date, today)
		if err != nil {
			return err
		}
		if err := m.store.SaveQuests(next); err != nil {
			return fmt.Errorf("failed to save quest day: %w", err)
		}
		m.setStatus("%s logged for %s", strings.ToLower(string(day.Status)), date)
		for _, q := range next.Quests {
			if q.ID == day.QuestID && q.Status == models.QuestStatusCompleted {
				m.setStatus("Quest complete: %s", q.Title)
			}
		}
		return nil
	})
}

func (m *Model) abandonQuest() error {
	state, err := m.store.LoadQuests()
	if err != nil {
		return err
	}
	next, q, err := quest.Abandon(state)
	if err != nil {
		return err
	}
	if err := m.store.SaveQuests(next); err != nil {
		return fmt.Errorf("failed to save quest: %w", err)
	}
	m.setStatus("Quest abandoned: %s", q.Title)
	return nil
}
