package tui

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// overlayLine draws fg over bg starting at cell x. Cells of bg under fg
// are replaced and bg is padded with spaces when it is too short.
// Columns left of zero are clipped from fg.
func overlayLine(bg, fg string, x int) string {
	if x < 0 {
		fg = ansi.TruncateLeft(fg, -x, "")
		x = 0
	}

	bw := ansi.StringWidth(bg)
	fw := ansi.StringWidth(fg)

	var b strings.Builder
	b.WriteString(ansi.Truncate(bg, x, ""))
	if bw < x {
		b.WriteString(strings.Repeat(" ", x-bw))
	}
	b.WriteString(fg)
	if bw > x+fw {
		b.WriteString(ansi.TruncateLeft(bg, x+fw, ""))
	}
	return b.String()
}

// overlayBlock draws a multi-line block over lines with its top left
// corner at (x, y), growing lines as needed. Rows above zero are clipped.
func overlayBlock(lines []string, block string, x, y int) []string {
	for i, fg := range strings.Split(block, "\n") {
		row := y + i
		if row < 0 {
			continue
		}
		for len(lines) <= row {
			lines = append(lines, "")
		}
		lines[row] = overlayLine(lines[row], fg, x)
	}
	return lines
}
