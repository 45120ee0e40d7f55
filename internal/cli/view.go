package cli

import (
	"bytes"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pablasso/tasktree/internal/tui"
	"github.com/pablasso/tasktree/internal/workspace"
)

var viewCmd = &cobra.Command{
	Use:   "view <file>",
	Short: "Open a workspace in the interactive viewer",
	Long: `Open the workspace in a full-screen viewer.

Keys:
  s      sort by status
  p      sort by priority
  b      sort by status then priority
  w      write the current order to the file
  ↑/↓    scroll (also k/j)
  q      quit`,
	Args: cobra.ExactArgs(1),
	RunE: runView,
}

// runViewer is replaced in tests.
var runViewer = tui.Run

func runView(cmd *cobra.Command, args []string) error {
	fileName := args[0]

	w, err := loadWorkspace(fileName)
	if err != nil {
		return err
	}
	saver, err := newLockedSaver(w)
	if err != nil {
		return err
	}

	return runViewer(tui.Options{
		Workspace: w,
		FileName:  fileName,
		Saver:     saver,
		Logger:    logger,
	})
}

// lockedSaver writes under the file lock, like every CLI mutation, and
// refuses to overwrite changes made to the file since the viewer read it.
type lockedSaver struct {
	// base is the encoded workspace as last read or written.
	base []byte
}

func newLockedSaver(w *workspace.Workspace) (*lockedSaver, error) {
	base, err := w.MarshalJSON()
	if err != nil {
		return nil, err
	}
	return &lockedSaver{base: base}, nil
}

func (s *lockedSaver) Save(fileName string, w *workspace.Workspace) error {
	return withLock(fileName, func() error {
		current, err := loadWorkspace(fileName)
		if err != nil {
			return err
		}
		onDisk, err := current.MarshalJSON()
		if err != nil {
			return err
		}
		if !bytes.Equal(onDisk, s.base) {
			return fmt.Errorf("%w: %s changed since it was opened; reopen it to keep those changes", workspace.ErrConflict, fileName)
		}

		data, err := w.MarshalJSON()
		if err != nil {
			return err
		}
		if err := saveWorkspace(fileName, w); err != nil {
			return err
		}
		s.base = data
		return nil
	})
}
