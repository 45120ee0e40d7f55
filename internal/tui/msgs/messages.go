// Package msgs defines the messages exchanged between TUI commands and
// the model.
package msgs

// WorkspaceSavedMsg reports that the workspace, as of Revision, was
// written to FileName.
type WorkspaceSavedMsg struct {
	FileName string
	Revision int
}

// SaveFailedMsg reports that writing the workspace failed.
type SaveFailedMsg struct {
	FileName string
	Err      error
}
