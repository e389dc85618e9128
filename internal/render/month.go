package render

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/samber/lo"

	"github.com/alexanderramin/histcal/internal/domain"
	"github.com/alexanderramin/histcal/internal/history"
)

const (
	monthCellEvents = 2
	monthCellHeight = monthCellEvents + 3
	minMonthCell    = 10
)

const barBlock = "█"

// MonthCalendar draws the month view as a grid whose weeks begin on the
// configured week start day. Each cell lists its first events and, when
// the activity summary covers the date, a stacked bar of activity counts.
func MonthCalendar(f history.Frame, opts Options) string {
	cellW := max(minMonthCell, opts.Width/7-1)
	cell := lipgloss.NewStyle().Width(cellW).Height(monthCellHeight).MarginRight(1)

	startDay := domain.NormalizeWeekStartDay(f.WeekStartDay)
	header := make([]string, 7)
	for i := range 7 {
		w := time.Weekday((startDay + i) % 7)
		header[i] = lipgloss.NewStyle().Width(cellW).MarginRight(1).Inherit(weekdayStyle(w)).
			Render(domain.WeekdayName(int(w)))
	}
	rows := []string{lipgloss.JoinHorizontal(lipgloss.Top, header...)}

	first := f.Range.Start.StartOfMonth()
	last := first.EndOfMonth()
	cursor := first.AddDays(-((int(first.Weekday()) - startDay + 7) % 7))
	for !cursor.After(last) {
		week := make([]string, 7)
		for i := range 7 {
			week[i] = cell.Render(monthDayCell(f, cursor, first.Month, cellW, opts))
			cursor = cursor.AddDays(1)
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, week...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func monthDayCell(f history.Frame, d domain.Date, month time.Month, width int, opts Options) string {
	if d.Month != month {
		return Dim(fmt.Sprintf("%2d", d.Day))
	}
	key := d.String()
	holiday := f.Holiday(key)

	head := dayStyle(f, d, holiday != "", opts).Render(fmt.Sprintf("%2d", d.Day))
	if holiday != "" {
		head += " " + StyleRed.Render(Truncate(holiday, width-3))
	}
	lines := []string{head}

	events := f.Index.Events(key)
	for _, e := range events[:min(len(events), monthCellEvents)] {
		lines = append(lines, EventMarker(e)+" "+Truncate(e.ProjectLabel(), width-3))
	}
	if extra := len(events) - monthCellEvents; extra > 0 {
		lines = append(lines, Dim(fmt.Sprintf("+%d more", extra)))
	}
	if counts := f.Summary[key]; len(counts) > 0 {
		lines = append(lines, StackBar(counts, width))
	}
	return strings.Join(lines, "\n")
}

// EventMarker is the stage dot followed by the combination dot.
func EventMarker(e domain.Event) string {
	return Dot(StageColor(e.ProgressStage)) + Dot(ComboColor(e))
}

// StackBar draws one bar of the given width split into segments
// proportional to each activity type's count. Types without a count are
// skipped; an all-zero summary draws nothing.
func StackBar(counts map[string]int, width int) string {
	codes := stackOrder(counts)
	total := lo.SumBy(codes, func(code string) int { return counts[code] })
	if total == 0 || width <= 0 {
		return ""
	}

	var b strings.Builder
	cum, drawn := 0, 0
	for _, code := range codes {
		cum += counts[code]
		end := (cum*width + total/2) / total
		if n := end - drawn; n > 0 {
			b.WriteString(lipgloss.NewStyle().Foreground(ActivityColor(code)).Render(strings.Repeat(barBlock, n)))
		}
		drawn = end
	}
	return b.String()
}

// stackOrder lists the types with a positive count: known types in legend
// order, then the rest alphabetically.
func stackOrder(counts map[string]int) []string {
	var out []string
	for _, code := range activityOrder {
		if counts[code] > 0 {
			out = append(out, code)
		}
	}
	var rest []string
	for code, n := range counts {
		if n > 0 && !slices.Contains(activityOrder, code) {
			rest = append(rest, code)
		}
	}
	slices.Sort(rest)
	return append(out, rest...)
}
