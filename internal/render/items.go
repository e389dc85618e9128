package render

import (
	"strings"
	"unicode/utf8"

	"github.com/alexanderramin/histcal/internal/domain"
)

// ContentLimit is how many characters of an event's content the week list
// and the detail modal show.
const ContentLimit = 120

// Clip shortens s to n characters and appends "..." when it was longer.
func Clip(s string, n int) string {
	if n <= 0 || utf8.RuneCountInString(s) <= n {
		return s
	}
	return string([]rune(s)[:n]) + "..."
}

// activityChip is the activity label on its color.
func activityChip(e domain.Event, opts domain.FilterOptions) string {
	return Chip(ActivityColor(e.ActivityType), domain.CoalesceDash(e.ActivityLabel(opts)))
}

// metaLine is "stage · field · service".
func metaLine(e domain.Event) string {
	return strings.Join([]string{e.StageLabel(), e.FieldLabel(), e.ServiceLabel()}, " · ")
}

// eventLines renders an event as a title line and its details. A positive
// limit clips the content.
func eventLines(e domain.Event, opts domain.FilterOptions, limit int) []string {
	content := domain.CoalesceDash(strings.TrimSpace(e.Content))
	return []string{
		EventMarker(e) + " " + Bold(e.ProjectLabel()),
		activityChip(e, opts) + "  " + metaLine(e),
		Dim("Manager ") + e.ManagerLabel() + Dim(" · Org ") + e.OrgLabel(),
		Clip(content, limit),
	}
}
