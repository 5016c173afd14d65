package tui

import "github.com/charmbracelet/lipgloss"

var (
	// Card around the whole form
	CardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("214")).
			Padding(1, 2)

	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("214"))

	MutedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))

	LabelStyle        = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("252"))
	FocusedLabelStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("214"))

	HintStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
	ErrorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true)

	ButtonStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("214")).
			Foreground(lipgloss.Color("232")).
			Bold(true).
			Padding(0, 2)
	DisabledButtonStyle = lipgloss.NewStyle().
				Background(lipgloss.Color("238")).
				Foreground(lipgloss.Color("245")).
				Padding(0, 2)

	SuccessStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42")).
			Bold(true)

	HelpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)
