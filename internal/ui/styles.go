package ui

import "github.com/charmbracelet/lipgloss"

var (
	primaryColor = lipgloss.Color("#60A5FA") // Blue
	accentColor  = lipgloss.Color("#10B981") // Green
	warningColor = lipgloss.Color("#F59E0B") // Amber
	mutedColor   = lipgloss.Color("#9CA3AF") // Gray
	textColor    = lipgloss.Color("#F9FAFB")
	borderColor  = lipgloss.Color("#6B7280")

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(primaryColor)

	messageStyle = lipgloss.NewStyle().
			Foreground(textColor)

	buttonStyle = lipgloss.NewStyle().
			Foreground(textColor).
			Border(lipgloss.NormalBorder(), false, true).
			BorderForeground(borderColor).
			Padding(0, 1)

	buttonFocusedStyle = buttonStyle.
				Bold(true).
				Foreground(primaryColor).
				BorderForeground(primaryColor)

	buttonDisabledStyle = buttonStyle.
				Foreground(mutedColor).
				Faint(true)

	sectionStyle = lipgloss.NewStyle().
			Foreground(mutedColor).
			MarginTop(1)

	rowStyle = lipgloss.NewStyle().
			Foreground(textColor)

	rowSelectedStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(primaryColor)

	rowCheckedStyle = lipgloss.NewStyle().
			Foreground(mutedColor).
			Strikethrough(true)

	rowHighlightStyle = lipgloss.NewStyle().
				Foreground(accentColor)

	closeStyle = lipgloss.NewStyle().
			Foreground(warningColor)

	statusStyle = lipgloss.NewStyle().
			Foreground(mutedColor).
			Italic(true)
)
