package components

import (
	"fmt"
	"strings"
)

const (
	filledChar = "■"
	emptyChar  = "□"
)

// Progress renders a task list completion bar like: ■■■■□□□□ 2/4
type Progress struct {
	Done  int
	Total int
	Width int // character width of the bar portion
}

// NewProgress creates a new Progress instance.
func NewProgress(done, total, width int) Progress {
	return Progress{
		Done:  done,
		Total: total,
		Width: width,
	}
}

// View returns the rendered bar followed by the done/total count. An empty
// list renders an all-empty bar with 0/0.
func (p Progress) View() string {
	if p.Width <= 0 {
		return fmt.Sprintf("%d/%d", max(p.Done, 0), max(p.Total, 0))
	}

	total := max(p.Total, 0)
	done := min(max(p.Done, 0), total)

	filled := 0
	if total > 0 {
		filled = (done * p.Width) / total
	}

	bar := strings.Repeat(filledChar, filled) + strings.Repeat(emptyChar, p.Width-filled)
	return fmt.Sprintf("%s %d/%d", bar, done, total)
}
