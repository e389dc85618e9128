package history

import (
	"github.com/alexanderramin/histcal/internal/calendar"
	"github.com/alexanderramin/histcal/internal/domain"
)

// Frame is an immutable snapshot of everything the renderers draw. The
// controller never mutates a frame after handing it out.
type Frame struct {
	State
	Today  domain.Date
	Range  calendar.Range
	Months []calendar.YearMonth
	Week   calendar.WeekRange

	Index    *calendar.Index
	Summary  domain.ActivitySummary
	Holidays map[string]string
	Options  domain.FilterOptions
	Projects domain.ProjectPage

	// Loaded is false until the first successful data load.
	Loaded bool

	selected *calendar.Selection
}

// IsSelected reports whether date is part of the selection.
func (f Frame) IsSelected(date string) bool {
	return f.selected != nil && f.selected.Has(date)
}

// Selected returns the selected dates in ascending order.
func (f Frame) Selected() []string {
	if f.selected == nil {
		return nil
	}
	return f.selected.Dates()
}

// Holiday returns the holiday label for date, or "".
func (f Frame) Holiday(date string) string {
	return f.Holidays[date]
}

// VisibleEventDates lists the week view's dates that have events. It is
// empty in every other view.
func (f Frame) VisibleEventDates() []string {
	if f.View != domain.ViewWeek {
		return nil
	}
	return eventDates(f.Week.Range, f.Index)
}

// SelectAllState reports the select-all toggle: checked iff the visible
// set is non-empty and fully selected, enabled iff it is non-empty.
func (f Frame) SelectAllState() (checked, enabled bool) {
	dates := f.VisibleEventDates()
	if len(dates) == 0 {
		return false, false
	}
	return f.selected != nil && f.selected.AllSelected(dates), true
}

func eventDates(r calendar.Range, idx *calendar.Index) []string {
	var out []string
	for _, d := range r.Dates() {
		if key := d.String(); idx.Has(key) {
			out = append(out, key)
		}
	}
	return out
}
