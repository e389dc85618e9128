package render

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexanderramin/histcal/internal/calendar"
	"github.com/alexanderramin/histcal/internal/domain"
	"github.com/alexanderramin/histcal/internal/history"
)

// Mini month cards always start on Sunday.
var sundayFirst = [7]string{"Su", "Mo", "Tu", "We", "Th", "Fr", "Sa"}

var cardStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(ColorDim).
	PaddingLeft(1).
	PaddingRight(1)

// YearGrid draws the year view's 12 month cards, Layout.Cols per row.
func YearGrid(f history.Frame, opts Options) string {
	cols := max(1, f.Layout.Cols)
	var rows []string
	for chunk := range slices.Chunk(f.Months, cols) {
		cards := make([]string, 0, len(chunk))
		for _, ym := range chunk {
			cards = append(cards, MonthCard(f, ym, opts))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cards...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// MonthCard draws one mini month. Months borrowed from a neighbouring year
// get a different header color.
func MonthCard(f history.Frame, ym calendar.YearMonth, opts Options) string {
	titleStyle := StyleHeader
	if ym.Offset != 0 {
		titleStyle = StylePurple.Bold(true)
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(fmt.Sprintf("%d-%02d", ym.Year, int(ym.Month))))
	b.WriteString("\n")
	for i, name := range sundayFirst {
		b.WriteString(weekdayStyle(time.Weekday(i)).Render(fmt.Sprintf("%-3s", name)))
	}

	first := domain.NewDate(ym.Year, ym.Month, 1)
	lead := int(first.Weekday())
	b.WriteString("\n" + strings.Repeat("   ", lead))
	last := first.EndOfMonth().Day
	for day := 1; day <= last; day++ {
		b.WriteString(yearDayCell(f, domain.NewDate(ym.Year, ym.Month, day), opts))
		if (lead+day)%7 == 0 && day < last {
			b.WriteString("\n")
		}
	}
	return cardStyle.Render(b.String())
}

func weekdayStyle(w time.Weekday) lipgloss.Style {
	switch w {
	case time.Sunday:
		return StyleRed
	case time.Saturday:
		return StyleBlue
	default:
		return StyleDim
	}
}

// yearDayCell is the day number followed by a one-cell marker: the first
// event's stage color, a count digit for busier days, or a holiday star.
func yearDayCell(f history.Frame, d domain.Date, opts Options) string {
	key := d.String()
	holiday := f.Holiday(key)

	marker := " "
	events := f.Index.Events(key)
	switch {
	case len(events) == 1:
		marker = lipgloss.NewStyle().Foreground(StageColor(events[0].ProgressStage)).Render("•")
	case len(events) > 9:
		marker = lipgloss.NewStyle().Foreground(StageColor(events[0].ProgressStage)).Render("+")
	case len(events) > 1:
		marker = lipgloss.NewStyle().Foreground(StageColor(events[0].ProgressStage)).Render(strconv.Itoa(len(events)))
	case holiday != "":
		marker = StyleRed.Render("*")
	}
	return dayStyle(f, d, holiday != "", opts).Render(fmt.Sprintf("%2d", d.Day)) + marker
}

// dayStyle marks weekends, holidays, today, the selection and the cursor.
func dayStyle(f history.Frame, d domain.Date, holiday bool, opts Options) lipgloss.Style {
	style := StyleFg
	switch d.Weekday() {
	case time.Sunday:
		style = StyleRed
	case time.Saturday:
		style = StyleBlue
	}
	if holiday {
		style = StyleRed.Bold(true)
	}
	if d == f.Today {
		style = style.Underline(true)
	}
	if f.IsSelected(d.String()) {
		style = style.Reverse(true)
	}
	if !opts.Cursor.IsZero() && d == opts.Cursor {
		style = StyleCursor
	}
	return style
}
