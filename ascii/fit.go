package ascii

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// Fit truncates every line of frame to width terminal cells.
func Fit(frame string, width int) string {
	if width <= 0 {
		return frame
	}
	lines := strings.Split(frame, "\n")
	for i, line := range lines {
		if runewidth.StringWidth(line) > width {
			lines[i] = runewidth.Truncate(line, width, "")
		}
	}
	return strings.Join(lines, "\n")
}

// Width is the widest line of frame in terminal cells.
func Width(frame string) int {
	w := 0
	for _, line := range strings.Split(frame, "\n") {
		if lw := runewidth.StringWidth(line); lw > w {
			w = lw
		}
	}
	return w
}
