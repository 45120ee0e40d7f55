// Package styles defines shared lipgloss styles for the TUI.
package styles

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/pablasso/tasktree/internal/workspace"
)

var (
	// Colors
	primaryColor   = lipgloss.Color("#5FAFAF") // Teal accent
	secondaryColor = lipgloss.Color("#666666") // Gray for secondary text
	successColor   = lipgloss.Color("#87AF87") // Muted sage for done
	warningColor   = lipgloss.Color("#D7AF5F") // Amber for in progress
	errorColor     = lipgloss.Color("#AF5F5F") // Muted terracotta for errors

	// TitleStyle for the workspace header
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(primaryColor).
			MarginBottom(1)

	// ListStyle for task list names
	ListStyle = lipgloss.NewStyle().
			Bold(true)

	// SubtleStyle for hints, tree glyphs and priorities
	SubtleStyle = lipgloss.NewStyle().
			Foreground(secondaryColor)

	// StatusBarStyle for bottom status bar
	StatusBarStyle = lipgloss.NewStyle().
			Foreground(secondaryColor)

	// SuccessStyle for done tasks and save confirmations
	SuccessStyle = lipgloss.NewStyle().
			Foreground(successColor)

	// WarningStyle for in-progress tasks
	WarningStyle = lipgloss.NewStyle().
			Foreground(warningColor)

	// ErrorStyle for error messages
	ErrorStyle = lipgloss.NewStyle().
			Foreground(errorColor)

	// HighPriorityStyle marks HIGH priority labels
	HighPriorityStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(errorColor)
)

// StatusStyle returns the style used to render a task status.
func StatusStyle(s workspace.Status) lipgloss.Style {
	switch s {
	case workspace.StatusDone:
		return SuccessStyle
	case workspace.StatusInProgress:
		return WarningStyle
	default:
		return lipgloss.NewStyle()
	}
}

// PriorityStyle returns the style used to render a task priority.
func PriorityStyle(p workspace.Priority) lipgloss.Style {
	if p == workspace.PriorityHigh {
		return HighPriorityStyle
	}
	return SubtleStyle
}
