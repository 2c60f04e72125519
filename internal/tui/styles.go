package tui

import (
	"github.com/charmbracelet/lipgloss"
)

var (
	// TitleStyle renders the application title bar
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("230")).
			Background(lipgloss.Color("62")).
			Padding(0, 1)

	// SubtitleStyle renders the scene breadcrumb under the title
	SubtitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245"))

	// StatusBarStyle renders the key-hint bar at the bottom
	StatusBarStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245")).
			Background(lipgloss.Color("236")).
			Padding(0, 1)

	// ErrorStyle renders load and compute failures
	ErrorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("196"))

	// LabelStyle renders the left column of detail rows
	LabelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245")).
			Width(28)

	// ValueStyle renders amounts
	ValueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))

	// HighlightStyle marks the active bracket row and totals
	HighlightStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("212"))

	// TableHeaderStyle renders column headings
	TableHeaderStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("230")).
				BorderStyle(lipgloss.NormalBorder()).
				BorderBottom(true)

	// PaidStyle, OverdueStyle, UpcomingStyle color quarter statuses
	PaidStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	OverdueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	UpcomingStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
)
