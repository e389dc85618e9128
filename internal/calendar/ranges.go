package calendar

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/alexanderramin/histcal/internal/domain"
)

// ErrInvalidRange is returned for a custom range with a missing, malformed
// or reversed bound.
var ErrInvalidRange = errors.New("invalid date range")

// Range is an inclusive span of calendar days.
type Range struct {
	Start domain.Date
	End   domain.Date
}

// Days returns the inclusive day count.
func (r Range) Days() int {
	return domain.DaysBetween(r.Start, r.End) + 1
}

// Dates lists every day of the range in ascending order.
func (r Range) Dates() []domain.Date {
	n := r.Days()
	if n <= 0 {
		return nil
	}
	out := make([]domain.Date, 0, n)
	for d := r.Start; !d.After(r.End); d = d.AddDays(1) {
		out = append(out, d)
	}
	return out
}

func (r Range) Contains(d domain.Date) bool {
	return !d.Before(r.Start) && !d.After(r.End)
}

// Years lists every calendar year the range overlaps.
func (r Range) Years() []int {
	var out []int
	for y := r.Start.Year; y <= r.End.Year; y++ {
		out = append(out, y)
	}
	return out
}

func (r Range) String() string {
	return r.Start.String() + " ~ " + r.End.String()
}

// MonthRange returns the first and last day of d's month.
func MonthRange(d domain.Date) Range {
	return Range{Start: d.StartOfMonth(), End: d.EndOfMonth()}
}

// YearMonth is one cell of the year grid. Offset is Year minus the grid's
// base year, so cells borrowed from a neighbouring year can be marked.
type YearMonth struct {
	Year   int
	Month  time.Month
	Offset int
}

// MonthOrder selects how the year grid lays out its months. Slot is 1-based
// and only used by current-slot.
type MonthOrder struct {
	Mode domain.MonthOrderMode
	Slot int
}

// YearMonths returns the 12 months shown in the year grid. For normal order
// that is Jan-Dec of baseYear. Otherwise the current month of today is placed
// at the last position (current-last) or at Slot (current-slot, clamped to
// 1..12) and the sequence may span two calendar years.
func YearMonths(baseYear int, order MonthOrder, today domain.Date) []YearMonth {
	items := make([]YearMonth, 0, 12)
	if order.Mode != domain.MonthOrderCurrentLast && order.Mode != domain.MonthOrderCurrentSlot {
		for m := time.January; m <= time.December; m++ {
			items = append(items, YearMonth{Year: baseYear, Month: m})
		}
		return items
	}

	target := 11
	if order.Mode == domain.MonthOrderCurrentSlot {
		target = ClampSlot(order.Slot) - 1
	}
	start := domain.NewDate(baseYear, today.Month, 1).AddMonths(-target)
	for i := 0; i < 12; i++ {
		d := start.AddMonths(i)
		items = append(items, YearMonth{Year: d.Year, Month: d.Month, Offset: d.Year - baseYear})
	}
	return items
}

// ClampSlot clamps a month slot to 1..12.
func ClampSlot(slot int) int {
	return max(1, min(12, slot))
}

// YearRange spans the first day of the first grid month to the last day of
// the last one.
func YearRange(baseYear int, order MonthOrder, today domain.Date) Range {
	months := YearMonths(baseYear, order, today)
	first, last := months[0], months[len(months)-1]
	return Range{
		Start: domain.NewDate(first.Year, first.Month, 1),
		End:   domain.NewDate(last.Year, last.Month+1, 0),
	}
}

// CustomRange is an explicit week-view range as entered by the user. Both
// bounds are YYYY-MM-DD strings; empty means unset.
type CustomRange struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// Active reports whether both bounds are well-formed dates.
func (c CustomRange) Active() bool {
	return domain.IsDateInput(strings.TrimSpace(c.From)) && domain.IsDateInput(strings.TrimSpace(c.To))
}

// Resolve validates the range and returns it.
func (c CustomRange) Resolve() (Range, error) {
	if !c.Active() {
		return Range{}, fmt.Errorf("%w: enter both start and end dates", ErrInvalidRange)
	}
	start, err := domain.ParseDate(strings.TrimSpace(c.From))
	if err != nil {
		return Range{}, fmt.Errorf("%w: %v", ErrInvalidRange, err)
	}
	end, err := domain.ParseDate(strings.TrimSpace(c.To))
	if err != nil {
		return Range{}, fmt.Errorf("%w: %v", ErrInvalidRange, err)
	}
	if start.After(end) {
		return Range{}, fmt.Errorf("%w: end date is before start date", ErrInvalidRange)
	}
	return Range{Start: start, End: end}, nil
}

// WeekRange is the week view's visible range.
type WeekRange struct {
	Range
	Custom bool
}

// ResolveWeek returns the custom range when it is valid, otherwise the
// seven days starting on startDay that contain anchor.
func ResolveWeek(anchor domain.Date, startDay int, custom CustomRange) WeekRange {
	if r, err := custom.Resolve(); err == nil {
		return WeekRange{Range: r, Custom: true}
	}
	startDay = domain.NormalizeWeekStartDay(startDay)
	diff := (int(anchor.Weekday()) - startDay + 7) % 7
	start := anchor.AddDays(-diff)
	return WeekRange{Range: Range{Start: start, End: start.AddDays(6)}}
}

// Hint describes how the week range was derived.
func (w WeekRange) Hint(startDay int) string {
	if w.Custom {
		return "custom range"
	}
	return domain.WeekdayName(domain.NormalizeWeekStartDay(startDay)) + " start"
}

// Layout is a year-grid layout of Cols x Rows month cards.
type Layout struct {
	Cols int
	Rows int
}

// DefaultLayout is 4 columns by 3 rows.
var DefaultLayout = Layout{Cols: 4, Rows: 3}

// ParseLayout parses "COLSxROWS"; anything that cannot hold 12 months falls
// back to the default.
func ParseLayout(s string) Layout {
	cols, rows, ok := strings.Cut(strings.ToLower(strings.TrimSpace(s)), "x")
	if !ok {
		return DefaultLayout
	}
	c, err1 := strconv.Atoi(cols)
	r, err2 := strconv.Atoi(rows)
	if err1 != nil || err2 != nil || c <= 0 || r <= 0 || c*r < 12 {
		return DefaultLayout
	}
	return Layout{Cols: c, Rows: r}
}

func (l Layout) String() string {
	return fmt.Sprintf("%dx%d", l.Cols, l.Rows)
}
