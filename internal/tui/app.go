// Package tui implements the interactive workspace viewer.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/pablasso/tasktree/internal/tui/components"
	"github.com/pablasso/tasktree/internal/tui/msgs"
	"github.com/pablasso/tasktree/internal/tui/styles"
	"github.com/pablasso/tasktree/internal/workspace"
)

// Minimum terminal dimensions for the viewer.
const (
	MinTerminalWidth  = 40
	MinTerminalHeight = 8
)

// Lines taken by the header (title plus margin) and the status bar.
const chromeHeight = 3

// Model is the Bubble Tea model for the workspace viewer.
type Model struct {
	opts     Options
	viewport viewport.Model
	ready    bool
	width    int
	height   int

	sortedBy workspace.SortMode
	// revision counts changes to the workspace; saved is the revision
	// last written to the file.
	revision int
	saved    int
	saving   bool
	message  string
	err      error
}

// New creates a viewer model for opts.Workspace.
func New(opts Options) Model {
	return Model{opts: opts}
}

// Run starts the viewer and blocks until the user quits.
func Run(opts Options) error {
	if opts.Workspace == nil {
		return fmt.Errorf("no workspace to view")
	}
	p := tea.NewProgram(
		New(opts),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
	_, err := p.Run()
	return err
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		contentHeight := max(msg.Height-chromeHeight, 1)
		contentWidth := max(msg.Width-1, 1) // 1 col for the scrollbar
		if !m.ready {
			m.viewport = viewport.New(contentWidth, contentHeight)
			m.ready = true
		} else {
			m.viewport.Width = contentWidth
			m.viewport.Height = contentHeight
		}
		m.refresh()
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "s":
			return m.sort(workspace.SortByStatus), nil
		case "p":
			return m.sort(workspace.SortByPriority), nil
		case "b":
			return m.sort(workspace.SortByStatusThenPriority), nil
		case "w":
			return m.save()
		}

	case msgs.WorkspaceSavedMsg:
		m.saving = false
		m.saved = msg.Revision
		m.err = nil
		m.message = "Saved " + msg.FileName
		m.logInfo("saved workspace", "file", msg.FileName)
		return m, nil

	case msgs.SaveFailedMsg:
		m.saving = false
		m.err = msg.Err
		m.message = ""
		m.logError("save failed", "file", msg.FileName, "err", msg.Err)
		return m, nil
	}

	if !m.ready {
		return m, nil
	}
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m Model) sort(mode workspace.SortMode) Model {
	if err := m.opts.Workspace.SortTasks(mode); err != nil {
		m.err = err
		return m
	}
	m.sortedBy = mode
	m.revision++
	m.err = nil
	m.message = "Sorted by " + strings.ReplaceAll(string(mode), "-", " ")
	m.refresh()
	return m
}

func (m Model) save() (Model, tea.Cmd) {
	if m.opts.Saver == nil || m.opts.FileName == "" {
		m.err = fmt.Errorf("no file to write to")
		return m, nil
	}
	if m.saving {
		return m, nil
	}

	// The command runs on another goroutine while key presses keep sorting
	// the live workspace, so it only ever sees a copy.
	snapshot, err := snapshotWorkspace(m.opts.Workspace)
	if err != nil {
		m.err = err
		return m, nil
	}
	m.saving = true
	m.message = "Saving..."

	saver, fileName, revision := m.opts.Saver, m.opts.FileName, m.revision
	return m, func() tea.Msg {
		if err := saver.Save(fileName, snapshot); err != nil {
			return msgs.SaveFailedMsg{FileName: fileName, Err: err}
		}
		return msgs.WorkspaceSavedMsg{FileName: fileName, Revision: revision}
	}
}

// snapshotWorkspace returns a deep copy of w made through its JSON form.
func snapshotWorkspace(w *workspace.Workspace) (*workspace.Workspace, error) {
	data, err := w.MarshalJSON()
	if err != nil {
		return nil, fmt.Errorf("failed to snapshot workspace: %w", err)
	}
	return workspace.ParseWorkspace(data)
}

// refresh re-renders the tree into the viewport, keeping the scroll offset.
func (m *Model) refresh() {
	if !m.ready {
		return
	}
	offset := m.viewport.YOffset
	m.viewport.SetContent(renderTree(m.opts.Workspace))
	m.viewport.SetYOffset(offset)
}

// View implements tea.Model.
func (m Model) View() string {
	if m.width > 0 && (m.width < MinTerminalWidth || m.height < MinTerminalHeight) {
		return fmt.Sprintf("Terminal too small (%dx%d). Need at least %dx%d.",
			m.width, m.height, MinTerminalWidth, MinTerminalHeight)
	}
	if !m.ready {
		return "Loading..."
	}

	title := styles.TitleStyle.Render(m.opts.Workspace.Name())
	body := lipgloss.JoinHorizontal(lipgloss.Top,
		m.viewport.View(),
		styles.SubtleStyle.Render(components.RenderScrollbar(m.viewport)),
	)
	return lipgloss.JoinVertical(lipgloss.Left, title, body, m.statusBar())
}

func (m Model) statusBar() string {
	message := m.message
	if m.err != nil {
		message = styles.ErrorStyle.Render("Error: " + m.err.Error())
	} else if m.Dirty() && !m.saving {
		message = strings.TrimSpace(message + " (unsaved)")
	}

	items := []string{"s Status", "p Priority", "b Both", "w Write", "↑↓ Scroll", "q Quit"}
	return components.NewStatusBar().Render(m.width, message, items)
}

// Workspace returns the workspace being viewed.
func (m Model) Workspace() *workspace.Workspace {
	return m.opts.Workspace
}

// SortedBy returns the last sort applied, empty if none.
func (m Model) SortedBy() workspace.SortMode {
	return m.sortedBy
}

// Dirty reports whether the workspace changed since the last save.
func (m Model) Dirty() bool {
	return m.revision != m.saved
}

// Err returns the last error shown in the status bar.
func (m Model) Err() error {
	return m.err
}

func (m Model) logInfo(msg string, keyvals ...any) {
	if m.opts.Logger != nil {
		m.opts.Logger.Info(msg, keyvals...)
	}
}

func (m Model) logError(msg string, keyvals ...any) {
	if m.opts.Logger != nil {
		m.opts.Logger.Error(msg, keyvals...)
	}
}
