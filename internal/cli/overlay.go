package cli

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// overlay draws box over bg with its top-left corner at column x, row y.
// Cells of bg outside the box keep their content and styling; rows are
// added when the box reaches below bg.
func overlay(bg, box string, x, y int) string {
	if box == "" {
		return bg
	}
	x, y = max(0, x), max(0, y)
	rows := strings.Split(bg, "\n")
	for i, line := range strings.Split(box, "\n") {
		r := y + i
		for r >= len(rows) {
			rows = append(rows, "")
		}
		base := rows[r]
		left := ansi.Truncate(base, x, "")
		if pad := x - ansi.StringWidth(left); pad > 0 {
			left += strings.Repeat(" ", pad)
		}
		right := ansi.TruncateLeft(base, x+ansi.StringWidth(line), "")
		rows[r] = left + ansi.ResetStyle + line + ansi.ResetStyle + right
	}
	return strings.Join(rows, "\n")
}
