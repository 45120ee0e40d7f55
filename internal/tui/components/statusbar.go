package components

import (
	"strings"

	"github.com/pablasso/tasktree/internal/tui/styles"
)

// StatusBar renders the bottom bar: an optional message followed by key
// help items.
type StatusBar struct{}

// NewStatusBar creates a new StatusBar instance.
func NewStatusBar() StatusBar {
	return StatusBar{}
}

// Render returns the status bar string for the given width. Items are
// joined with " • "; a non-empty message is placed first, separated by
// " | ".
func (s StatusBar) Render(width int, message string, items []string) string {
	content := strings.Join(items, " • ")
	if message != "" {
		if content == "" {
			content = message
		} else {
			content = message + " | " + content
		}
	}
	return styles.StatusBarStyle.Width(width).Render(content)
}
