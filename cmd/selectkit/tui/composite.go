package tui

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// Composite places box centered on top of background, which is expected to
// be a fully rendered frame of totalWidth x totalHeight cells.
func Composite(background, box string, totalWidth, totalHeight int) string {
	if box == "" {
		return background
	}
	w, h := boxSize(box)
	return CompositeAt(background, box, (totalWidth-w)/2, (totalHeight-h)/2, totalHeight)
}

// CompositeAt draws box over background with its top-left corner at column x,
// row y. Background cells left and right of the box survive, styles included.
// The result is padded or cut to totalHeight lines when totalHeight > 0.
func CompositeAt(background, box string, x, y, totalHeight int) string {
	if box == "" {
		return background
	}
	x = max(x, 0)
	y = max(y, 0)

	bgLines := strings.Split(background, "\n")
	boxLines := strings.Split(box, "\n")

	need := y + len(boxLines)
	if totalHeight > 0 {
		need = totalHeight
	}
	for len(bgLines) < need {
		bgLines = append(bgLines, "")
	}

	for i, boxLine := range boxLines {
		row := y + i
		if row >= len(bgLines) {
			break
		}
		bg := bgLines[row]

		left := ansi.Truncate(bg, x, "")
		if lw := ansi.StringWidth(left); lw < x {
			left += strings.Repeat(" ", x-lw)
		}
		right := ""
		end := x + ansi.StringWidth(boxLine)
		if ansi.StringWidth(bg) > end {
			right = ansi.TruncateLeft(bg, end, "")
		}
		bgLines[row] = left + boxLine + right
	}

	if totalHeight > 0 && len(bgLines) > totalHeight {
		bgLines = bgLines[:totalHeight]
	}
	return strings.Join(bgLines, "\n")
}

func boxSize(box string) (w, h int) {
	lines := strings.Split(box, "\n")
	for _, l := range lines {
		w = max(w, ansi.StringWidth(l))
	}
	return w, len(lines)
}
