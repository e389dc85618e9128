// Package render draws history frames as styled terminal text.
package render

import (
	"strings"

	"github.com/charmbracelet/x/ansi"

	"github.com/alexanderramin/histcal/internal/domain"
	"github.com/alexanderramin/histcal/internal/history"
)

// DefaultWidth is used when the terminal width is unknown.
const DefaultWidth = 112

// Options tune a render pass.
type Options struct {
	// Width is the available terminal width in cells.
	Width int
	// Cursor is the keyboard-focused day, highlighted when set.
	Cursor domain.Date
}

// View draws the active view of f under its period header, followed by the
// legend and, when the project search has several pages, its pager.
func View(f history.Frame, opts Options) string {
	if opts.Width <= 0 {
		opts.Width = DefaultWidth
	}

	var body string
	switch f.View {
	case domain.ViewMonth:
		body = MonthCalendar(f, opts)
	case domain.ViewWeek:
		body = WeekList(f, opts)
	case domain.ViewDaily:
		body = Daily(f, opts)
	default:
		body = YearGrid(f, opts)
	}

	parts := []string{Header(PeriodLabel(f)), body, BuildLegend(f.Index.All(), f.Options).Render()}
	if pager := RenderPaging(f.Projects.TotalPages, f.Projects.Page); pager != "" {
		parts = append(parts, Dim("projects ")+pager)
	}
	return strings.Join(parts, "\n\n")
}

// wrap hard-wraps s at width cells, keeping ANSI styles intact.
func wrap(s string, width int) string {
	return ansi.Wrap(s, width, " ")
}
