package checklist

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ToggleMsg is emitted when the item under the cursor is toggled
type ToggleMsg struct {
	ID string
}

type Item struct {
	ID     string
	Label  string
	Detail string
	Done   bool
}

type KeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Toggle key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Toggle: key.NewBinding(
			key.WithKeys(" ", "enter"),
			key.WithHelp("space", "toggle"),
		),
	}
}

var (
	cursorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true)
	doneStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	detailStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

type Model struct {
	items  []Item
	cursor int
	keys   KeyMap
	empty  string
}

func New(items []Item, empty string) Model {
	return Model{items: items, keys: DefaultKeyMap(), empty: empty}
}

// SetItems replaces the items, keeping the cursor in range
func (m *Model) SetItems(items []Item) {
	m.items = items
	if m.cursor >= len(items) {
		m.cursor = len(items) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// Selected returns the item under the cursor
func (m Model) Selected() (Item, bool) {
	if len(m.items) == 0 {
		return Item{}, false
	}
	return m.items[m.cursor], true
}

func (m Model) Cursor() int {
	return m.cursor
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch {
	case key.Matches(keyMsg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(keyMsg, m.keys.Down):
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}
	case key.Matches(keyMsg, m.keys.Toggle):
		if item, ok := m.Selected(); ok {
			return m, func() tea.Msg { return ToggleMsg{ID: item.ID} }
		}
	}
	return m, nil
}

func (m Model) View() string {
	if len(m.items) == 0 {
		return detailStyle.Render(m.empty)
	}
	var b strings.Builder
	for i, item := range m.items {
		pointer := "  "
		if i == m.cursor {
			pointer = cursorStyle.Render("> ")
		}
		box := "[ ]"
		if item.Done {
			box = doneStyle.Render("[x]")
		}
		b.WriteString(pointer + box + " " + item.Label)
		if item.Detail != "" {
			b.WriteString(" " + detailStyle.Render(item.Detail))
		}
		if i < len(m.items)-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}
