package render

import (
	"fmt"
	"strconv"

	"github.com/alexanderramin/histcal/internal/domain"
	"github.com/alexanderramin/histcal/internal/history"
)

// PeriodLabel names the period the frame shows: the year, the month, the
// week range with its hint, or the daily date.
func PeriodLabel(f history.Frame) string {
	switch f.View {
	case domain.ViewMonth:
		d := f.Range.Start
		return fmt.Sprintf("%s %d", d.Month, d.Year)
	case domain.ViewWeek:
		if f.Week.Start.IsZero() {
			return "-"
		}
		return f.Week.String() + " " + Dim("("+f.Week.Hint(f.WeekStartDay)+")")
	case domain.ViewDaily:
		d := f.DailyAnchor
		if d.IsZero() {
			d = f.Today
		}
		return DateWithWeekday(d)
	default:
		return strconv.Itoa(f.Year)
	}
}
