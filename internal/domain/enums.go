package domain

import "time"

// View identifies one of the four temporal views of the history browser.
type View string

const (
	ViewYear  View = "year"
	ViewMonth View = "month"
	ViewWeek  View = "week"
	ViewDaily View = "daily"
)

// Views lists the views in display order.
var Views = []View{ViewYear, ViewMonth, ViewWeek, ViewDaily}

// ParseView returns the view named by s, falling back to year.
func ParseView(s string) View {
	switch View(s) {
	case ViewMonth, ViewWeek, ViewDaily:
		return View(s)
	default:
		return ViewYear
	}
}

// SortOrder controls event ordering inside date buckets and exports.
type SortOrder string

const (
	SortChronological SortOrder = "start"
	SortRecent        SortOrder = "recent"
)

// NormalizeSortOrder maps anything other than "recent" to chronological.
func NormalizeSortOrder(s string) SortOrder {
	if SortOrder(s) == SortRecent {
		return SortRecent
	}
	return SortChronological
}

// Direction is +1 for chronological and -1 for reverse order.
func (o SortOrder) Direction() int {
	if o == SortRecent {
		return -1
	}
	return 1
}

// MonthOrderMode controls how the year grid lays out its 12 months.
type MonthOrderMode string

const (
	MonthOrderNormal      MonthOrderMode = "normal"
	MonthOrderCurrentLast MonthOrderMode = "current-last"
	MonthOrderCurrentSlot MonthOrderMode = "current-slot"
)

func ParseMonthOrderMode(s string) MonthOrderMode {
	switch MonthOrderMode(s) {
	case MonthOrderCurrentLast, MonthOrderCurrentSlot:
		return MonthOrderMode(s)
	default:
		return MonthOrderNormal
	}
}

// DefaultWeekStartDay is Monday.
const DefaultWeekStartDay = int(time.Monday)

// NormalizeWeekStartDay clamps unknown values to Monday.
func NormalizeWeekStartDay(day int) int {
	if day >= 0 && day <= 6 {
		return day
	}
	return DefaultWeekStartDay
}

var weekdayShort = [7]string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

// WeekdayName returns the three-letter English weekday name.
func WeekdayName(day int) string {
	if day < 0 || day > 6 {
		return ""
	}
	return weekdayShort[day]
}
