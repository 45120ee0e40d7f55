package tui

import (
	"strings"

	"github.com/pablasso/tasktree/internal/tui/components"
	"github.com/pablasso/tasktree/internal/tui/styles"
	"github.com/pablasso/tasktree/internal/workspace"
)

const progressWidth = 10

// renderTree draws the styled workspace tree: one header per list with a
// progress bar, then its tasks.
func renderTree(w *workspace.Workspace) string {
	var b strings.Builder

	lists := w.TaskLists()
	if len(lists) == 0 {
		b.WriteString(styles.SubtleStyle.Render("No task lists yet."))
		return b.String()
	}

	for i, list := range lists {
		if i > 0 {
			b.WriteString("\n")
		}
		progress := components.NewProgress(list.DoneCount(), list.Len(), progressWidth)
		b.WriteString(styles.SubtleStyle.Render(" └ "))
		b.WriteString(styles.ListStyle.Render(list.Name()))
		b.WriteString("  ")
		b.WriteString(styles.SubtleStyle.Render(progress.View()))

		tasks := list.Tasks()
		for j, task := range tasks {
			glyph := "├"
			if j == len(tasks)-1 {
				glyph = "└"
			}
			b.WriteString("\n")
			b.WriteString(styles.SubtleStyle.Render("     " + glyph + " "))
			b.WriteString(task.Description())
			b.WriteString(styles.SubtleStyle.Render(" - "))
			b.WriteString(styles.StatusStyle(task.Status()).Render(task.Status().Label()))
			b.WriteString(styles.SubtleStyle.Render(" - "))
			b.WriteString(styles.PriorityStyle(task.Priority()).Render(task.Priority().Label()))
		}
	}

	return b.String()
}
