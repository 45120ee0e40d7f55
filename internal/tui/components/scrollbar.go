package components

import (
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
)

const (
	scrollTrack = "│"
	scrollThumb = "█"
)

// RenderScrollbar renders a 1-column vertical scrollbar for vp. The gutter
// is blank while the content fits; otherwise the thumb size and position
// follow the visible fraction and the scroll offset.
func RenderScrollbar(vp viewport.Model) string {
	return renderScrollbar(vp.Height, vp.TotalLineCount(), vp.YOffset)
}

func renderScrollbar(height, lines, offset int) string {
	if height <= 0 {
		return ""
	}
	if lines <= height {
		return strings.Repeat(" \n", height-1) + " "
	}

	thumbSize := max(height*height/lines, 1)
	thumbTop := 0
	if maxOffset := lines - height; maxOffset > 0 {
		thumbTop = offset * (height - thumbSize) / maxOffset
	}
	thumbTop = min(max(thumbTop, 0), height-thumbSize)

	rows := make([]string, height)
	for i := range rows {
		if i >= thumbTop && i < thumbTop+thumbSize {
			rows[i] = scrollThumb
		} else {
			rows[i] = scrollTrack
		}
	}
	return strings.Join(rows, "\n")
}
