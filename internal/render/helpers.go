package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/alexanderramin/histcal/internal/domain"
)

// Header renders a section header with an underline.
func Header(text string) string {
	line := strings.Repeat("─", lipgloss.Width(text))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(text), StyleDim.Render(line))
}

func Dim(text string) string {
	return StyleDim.Render(text)
}

func Bold(text string) string {
	return StyleBold.Render(text)
}

// RenderBox wraps content in a rounded-border box with an optional title.
func RenderBox(title string, content string) string {
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorDim).
		PaddingLeft(1).
		PaddingRight(1)

	if title != "" {
		return boxStyle.Render(StyleHeader.Render(title) + "\n" + content)
	}
	return boxStyle.Render(content)
}

// Truncate shortens s to n display cells, ending with "...".
func Truncate(s string, n int) string {
	if n <= 0 || ansi.StringWidth(s) <= n {
		return s
	}
	return ansi.Truncate(s, n, "...")
}

// Dot renders a colored bullet.
func Dot(color lipgloss.Color) string {
	return lipgloss.NewStyle().Foreground(color).Render("●")
}

// Chip renders a label with a colored bullet.
func Chip(color lipgloss.Color, label string) string {
	return Dot(color) + " " + label
}

// DateWithWeekday formats "YYYY-MM-DD (Mon)".
func DateWithWeekday(d domain.Date) string {
	return fmt.Sprintf("%s (%s)", d.String(), domain.WeekdayName(int(d.Weekday())))
}

// countLabel is "1 item" or "N items".
func countLabel(n int) string {
	if n == 1 {
		return "1 item"
	}
	return fmt.Sprintf("%d items", n)
}
