package main

import "github.com/charmbracelet/lipgloss"

const (
	accentColor   = "#ff9f1c"
	textFGColor   = "#c0c0c0"
	dimFGColor    = "#8a8a8a"
	errorFGColor  = "#ff5f5f"
	borderFGColor = "240"
)

var (
	appstyle    = lipgloss.NewStyle().Margin(1, 2)
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(accentColor)).Padding(0, 1)
	tableStyle  = lipgloss.NewStyle().BorderStyle(lipgloss.NormalBorder()).BorderForeground(lipgloss.Color(borderFGColor))

	// statistics panel
	sectionStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(accentColor))
	labelStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color(textFGColor))
	dimStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color(dimFGColor)).Italic(true)

	// selection drawer
	drawerArea = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("245")).
			Padding(0, 0).BorderLeft(true)
	drawerTitleStyle  = lipgloss.NewStyle().Bold(true)
	focusedLabelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(accentColor))
	errorStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color(errorFGColor))
)
