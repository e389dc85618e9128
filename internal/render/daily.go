package render

import (
	"strings"

	"github.com/alexanderramin/histcal/internal/history"
)

// EmptyDay is shown when the daily date has no events.
const EmptyDay = "No history on the selected date."

// Daily draws the daily view: the date, then one card per event with its
// full content.
func Daily(f history.Frame, opts Options) string {
	d := f.DailyAnchor
	if d.IsZero() {
		d = f.Today
	}
	header := StyleHeader.Render(DateWithWeekday(d))
	if holiday := f.Holiday(d.String()); holiday != "" {
		header += " " + StyleRed.Render(holiday)
	}

	events := f.Index.Events(d.String())
	if len(events) == 0 {
		return header + "\n\n" + RenderBox("", Dim(EmptyDay))
	}
	cards := make([]string, 0, len(events))
	for _, e := range events {
		body := eventLines(e, f.Options, 0)
		content := strings.Join(body[1:], "\n")
		if opts.Width > 4 {
			content = wrap(content, opts.Width-4)
		}
		cards = append(cards, RenderBox(body[0], content))
	}
	return header + "\n\n" + strings.Join(cards, "\n")
}
