package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/sanctum/internal/boss"
	"github.com/julianstephens/sanctum/internal/quest"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var content string
	switch m.state {
	case StateToday:
		content = m.viewToday()
	case StateContracts:
		content = m.viewContracts()
	case StateWeek:
		content = m.viewWeek()
	case StateQuest:
		content = m.viewQuest()
	case StateForm:
		content = m.form.View()
	case StateConfirm:
		content = m.viewConfirm()
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.viewTabs(),
		docStyle.Render(content),
		m.viewStatus(),
		m.help.View(m),
	)
}

func (m Model) viewTabs() string {
	var tabs []string
	for i, title := range tabTitles {
		if m.tab == SessionState(i) {
			tabs = append(tabs, activeTabStyle.Render(title))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(title))
		}
	}
	date := m.date
	if date == m.today {
		date += " (today)"
	}
	tabs = append(tabs, mutedStyle.Render("  "+date))
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m Model) viewStatus() string {
	switch {
	case m.loadErr != nil:
		return dangerStyle.Render("Error: " + m.loadErr.Error())
	case m.err != nil:
		return dangerStyle.Render("Error: " + m.err.Error())
	case m.status != "":
		return successStyle.Render(m.status)
	}
	return ""
}

func (m Model) viewToday() string {
	v := m.view
	var b strings.Builder
	b.WriteString(titleStyle.Render(v.Title) + "\n")
	fmt.Fprintf(&b, "Mood: %s  ·  Streak: %d  ·  Hearts: %d/%d\n", v.MoodLabel, v.Streak, v.Hearts.Remaining, v.Hearts.Total)
	b.WriteString(mutedStyle.Render(v.Narrator) + "\n\n")
	b.WriteString(m.habits.View() + "\n\n")
	if v.Entry.Note != "" {
		b.WriteString("Note: " + v.Entry.Note + "\n")
	}
	b.WriteString(mutedStyle.Render(v.Hearts.Flavor))
	return b.String()
}

func (m Model) viewContracts() string {
	v := m.view
	var b strings.Builder
	b.WriteString(titleStyle.Render("Contracts: "+v.TaskMeta.TitleSuffix) + "\n")
	b.WriteString(mutedStyle.Render(v.TaskMeta.Flavor) + "\n\n")
	b.WriteString(m.tasks.View())
	return b.String()
}

func (m Model) viewWeek() string {
	v := m.view
	var b strings.Builder
	b.WriteString(titleStyle.Render("Week of "+v.WeekStart) + "\n")
	fmt.Fprintf(&b, "Weekly score: %d/21\n", v.WeeklyScore)
	fmt.Fprintf(&b, "Task XP: %d/%d (%d%%)\n", v.TaskXP.XP, v.TaskXP.MaxXP, v.TaskXP.Percent)
	b.WriteString(mutedStyle.Render(v.TaskXP.Label) + "\n\n")

	var bars []string
	for _, d := range v.History {
		bars = append(bars, fmt.Sprintf("%s %s", d.Date[5:], strings.Repeat("▮", d.Count)))
	}
	b.WriteString(strings.Join(bars, "\n") + "\n\n")

	fight := v.Boss
	card := fmt.Sprintf("%s\n%s\nDifficulty: %s\n%s\n%s",
		titleStyle.Render(fight.Name),
		mutedStyle.Render(fight.Lore),
		strings.Repeat("☠", fight.Difficulty),
		boss.OutcomeLabel(fight.Outcome),
		fight.Description,
	)
	b.WriteString(cardStyle.Render(card))
	return b.String()
}

func (m Model) viewQuest() string {
	qv := m.view.Quest
	if qv == nil {
		return mutedStyle.Render("No active quest. Press s to begin one.")
	}
	q := qv.Quest
	var b strings.Builder
	b.WriteString(titleStyle.Render(q.Title) + " " + mutedStyle.Render("("+qv.Progress+")") + "\n")
	if q.IntroText != "" {
		b.WriteString(mutedStyle.Render(q.IntroText) + "\n")
	}
	if q.CustomPrompt != "" {
		b.WriteString("Vow: " + q.CustomPrompt + "\n")
	}
	fmt.Fprintf(&b, "\n%s %d  ·  %s %d  ·  %s %d\n",
		q.Labels.Vigor, qv.Resources.Vigor,
		q.Labels.Resolve, qv.Resources.Resolve,
		q.Labels.Corruption, qv.Resources.Corruption)
	fmt.Fprintf(&b, "Streak: %d  ·  Successes: %d  ·  Failures: %d  ·  %s\n",
		qv.Summary.CurrentSuccessStreak, qv.Summary.TotalSuccesses, qv.Summary.TotalFails, quest.TypeLabel(q.QuestType))

	if qv.Today != nil {
		fmt.Fprintf(&b, "\n%s: %s\n", m.date, qv.Today.Status)
		if qv.Today.AutogeneratedNarrative != "" {
			b.WriteString(mutedStyle.Render(qv.Today.AutogeneratedNarrative))
		}
	} else {
		b.WriteString(mutedStyle.Render("\nNothing logged for " + m.date + "."))
	}
	return b.String()
}

func (m Model) viewConfirm() string {
	return lipgloss.JoinVertical(lipgloss.Left,
		dangerStyle.Render(m.confirmPrompt),
		"",
		"[y] Yes   [n] No",
	)
}
