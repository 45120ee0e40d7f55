package tui

import (
	"github.com/charmbracelet/log"

	"github.com/pablasso/tasktree/internal/workspace"
)

// Saver persists a workspace under a file name. *workspace.Store
// satisfies it.
type Saver interface {
	Save(fileName string, w *workspace.Workspace) error
}

// Options configures the viewer.
type Options struct {
	Workspace *workspace.Workspace
	// FileName is the save file written by the w key.
	FileName string
	Saver    Saver
	// Logger is optional; nothing is logged when nil.
	Logger *log.Logger
}
