package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexanderramin/histcal/internal/tooltip"
)

var tooltipStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(ColorYellow).
	PaddingLeft(1).
	PaddingRight(1)

// TooltipBox renders tooltip text in a bordered box: title lines bold, body
// lines dim, gaps blank. Lines longer than width cells are truncated.
func TooltipBox(text string, width int) string {
	segments := tooltip.Segments(text)
	if len(segments) == 0 {
		return ""
	}
	lines := make([]string, 0, len(segments))
	for _, seg := range segments {
		line := seg.Text
		if width > 4 {
			line = Truncate(line, width-4)
		}
		switch seg.Kind {
		case tooltip.SegmentTitle:
			lines = append(lines, Bold(line))
		case tooltip.SegmentBody:
			lines = append(lines, Dim(line))
		default:
			lines = append(lines, "")
		}
	}
	return tooltipStyle.Render(strings.Join(lines, "\n"))
}
