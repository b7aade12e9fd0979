package tui

import "github.com/charmbracelet/lipgloss"

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205"))

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("255")).
			Background(lipgloss.Color("236")).
			Bold(true)

	faintStyle = lipgloss.NewStyle().Faint(true)

	doneStyle = lipgloss.NewStyle().
			Faint(true).
			Strikethrough(true)

	projectTagStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("114"))
	personTagStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("75"))

	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("114"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))

	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(0, 1)
)
