package ui

import "github.com/charmbracelet/lipgloss"

// Colors used in the application.
var (
	colorPrimary   = lipgloss.Color("62")  // Purple
	colorSecondary = lipgloss.Color("241") // Gray
	colorMuted     = lipgloss.Color("240") // Darker gray
	colorHighlight = lipgloss.Color("212") // Pink
	colorSuccess   = lipgloss.Color("78")  // Green
	colorHot       = lipgloss.Color("208") // Orange
)

// SelectedTitle style for the highlighted card's title.
var SelectedTitle = lipgloss.NewStyle().
	Bold(true).
	Foreground(lipgloss.Color("255")).
	Background(colorPrimary).
	Padding(0, 1)

// CardTitle style for unselected card titles.
var CardTitle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("255")).
	Padding(0, 1)

// CardMeta style for the channel, date and stats lines.
var CardMeta = lipgloss.NewStyle().
	Foreground(colorSecondary).
	PaddingLeft(3)

// CardTags style for topic tags and people.
var CardTags = lipgloss.NewStyle().
	Foreground(colorPrimary).
	PaddingLeft(3)

// NewBadge marks episodes published in the last 24 hours.
var NewBadge = lipgloss.NewStyle().
	Foreground(lipgloss.Color("0")).
	Background(colorSuccess).
	Bold(true).
	Padding(0, 1).
	MarginRight(1)

// TrendingBadge marks trending-eligible episodes.
var TrendingBadge = lipgloss.NewStyle().
	Foreground(lipgloss.Color("0")).
	Background(colorHot).
	Bold(true).
	Padding(0, 1).
	MarginRight(1)

// Header style for the top bar.
var Header = lipgloss.NewStyle().
	Bold(true).
	Foreground(colorHighlight).
	Padding(0, 1)

// Toggle styles for the filter and sort labels in the header.
var (
	ToggleActive = lipgloss.NewStyle().
			Foreground(lipgloss.Color("255")).
			Background(colorPrimary).
			Padding(0, 1)
	ToggleIdle = lipgloss.NewStyle().
			Foreground(colorSecondary).
			Padding(0, 1)
)

// PanelHeader style for trending section titles.
var PanelHeader = lipgloss.NewStyle().
	Bold(true).
	Foreground(colorHighlight).
	MarginTop(1).
	Padding(0, 1)

// PanelEntry and PanelSelected style trending rows.
var (
	PanelEntry = lipgloss.NewStyle().
			Foreground(lipgloss.Color("255")).
			PaddingLeft(3)
	PanelSelected = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("255")).
			Background(colorPrimary).
			PaddingLeft(3)
)

// StatusBar style for the bottom status bar.
var StatusBar = lipgloss.NewStyle().
	Foreground(lipgloss.Color("255")).
	Background(lipgloss.Color("236")).
	Padding(0, 1)

// StatusBarKey style for the fragment in the status bar.
var StatusBarKey = lipgloss.NewStyle().
	Foreground(colorHighlight).
	Bold(true)

// StatusBarText style for descriptive text in status bar.
var StatusBarText = lipgloss.NewStyle().
	Foreground(colorSecondary)

// ErrorStyle for displaying errors.
var ErrorStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("196")).
	Bold(true).
	Padding(0, 1)

// HelpStyle for empty states and help text.
var HelpStyle = lipgloss.NewStyle().
	Foreground(colorMuted).
	Padding(1, 2)

// InputBar style for the search and fragment inputs.
var InputBar = lipgloss.NewStyle().
	Foreground(lipgloss.Color("255")).
	Background(colorMuted).
	Padding(0, 1)

// InputPrompt style for the input prompt.
var InputPrompt = lipgloss.NewStyle().
	Foreground(colorHighlight).
	Bold(true)
