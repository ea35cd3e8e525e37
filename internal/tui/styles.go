package tui

import "github.com/charmbracelet/lipgloss"

var (
	primaryColor = lipgloss.Color("99")
	accentColor  = lipgloss.Color("212")
	mutedColor   = lipgloss.Color("245")
	successColor = lipgloss.Color("42")

	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(primaryColor)
	statusStyle = lipgloss.NewStyle().Foreground(mutedColor)
	nameStyle   = lipgloss.NewStyle().Bold(true).Foreground(accentColor)
	classStyle  = lipgloss.NewStyle().Foreground(primaryColor)
	bodyStyle   = lipgloss.NewStyle().Foreground(mutedColor)
	noticeStyle = lipgloss.NewStyle().Bold(true).Foreground(successColor)

	cardStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(mutedColor).
			Padding(0, 1)
)
