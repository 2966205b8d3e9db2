package cli

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/sanctum/internal/models"
)

var (
	headingStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#C9A227"))
	mutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	okStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	badStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
	cardStyle    = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#7D5BA6")).
			Padding(0, 1)
)

func checkbox(done bool) string {
	if done {
		return okStyle.Render("[x]")
	}
	return mutedStyle.Render("[ ]")
}

func outcomeStyle(outcome models.BossOutcome) lipgloss.Style {
	switch outcome {
	case models.OutcomeWin:
		return okStyle
	case models.OutcomeLoss:
		return badStyle
	default:
		return headingStyle
	}
}
