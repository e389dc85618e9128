package render

import (
	"fmt"
	"slices"
	"strings"

	"github.com/alexanderramin/histcal/internal/domain"
	"github.com/alexanderramin/histcal/internal/history"
)

// EmptyWeek is shown when no day of the range has events.
const EmptyWeek = "No history"

// WeekList draws the week view: a header with the range, its hint and the
// shown/total day counts, then one block per day with events in the
// frame's sort direction.
func WeekList(f history.Frame, opts Options) string {
	dates := f.Week.Dates()
	if f.Sort == domain.SortRecent {
		slices.Reverse(dates)
	}

	var blocks []string
	for _, d := range dates {
		events := f.Index.Events(d.String())
		if len(events) == 0 {
			continue
		}
		blocks = append(blocks, weekDay(f, d, events, opts))
	}

	header := Bold(f.Week.String()) + " " + Dim(f.Week.Hint(f.WeekStartDay)) + "\n" +
		Dim(fmt.Sprintf("shown %d days / total %d days", len(blocks), f.Week.Days()))
	if len(blocks) == 0 {
		return header + "\n\n" + Dim(EmptyWeek)
	}
	return header + "\n\n" + strings.Join(blocks, "\n\n")
}

func weekDay(f history.Frame, d domain.Date, events []domain.Event, opts Options) string {
	box := "[ ]"
	if f.IsSelected(d.String()) {
		box = StyleGreen.Render("[x]")
	}
	title := StyleHeader.Render(DateWithWeekday(d))
	if !opts.Cursor.IsZero() && d == opts.Cursor {
		title = StyleCursor.Render(DateWithWeekday(d))
	}
	if holiday := f.Holiday(d.String()); holiday != "" {
		title += " " + StyleRed.Render(holiday)
	}

	lines := []string{box + " " + title + "  " + Dim(countLabel(len(events)))}
	for _, e := range events {
		for _, line := range eventLines(e, f.Options, ContentLimit) {
			lines = append(lines, "    "+line)
		}
	}
	return strings.Join(lines, "\n")
}
