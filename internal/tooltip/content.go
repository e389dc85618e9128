package tooltip

import (
	"strings"

	"github.com/alexanderramin/histcal/internal/domain"
)

// HolidayPrefix introduces the holiday line of a day tooltip.
const HolidayPrefix = "Holiday: "

// InfoLine is "project | field | service | manager | org".
func InfoLine(e domain.Event) string {
	return strings.Join([]string{
		e.ProjectLabel(), e.FieldLabel(), e.ServiceLabel(), e.ManagerLabel(), e.OrgLabel(),
	}, " | ")
}

// DetailLine is "activity | stage | content" with empty parts skipped.
func DetailLine(e domain.Event, opts domain.FilterOptions) string {
	parts := []string{e.ActivityLabel(opts), e.StageLabel(), strings.TrimSpace(e.Content)}
	kept := parts[:0]
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, " | ")
}

// EventText is the info line followed by the detail line.
func EventText(e domain.Event, opts domain.FilterOptions) string {
	return InfoLine(e) + "\n" + DetailLine(e, opts)
}

// DayText joins every event's text with a blank line and appends the
// holiday label. It is empty when there is nothing to show.
func DayText(events []domain.Event, opts domain.FilterOptions, holiday string) string {
	blocks := make([]string, 0, len(events))
	for _, e := range events {
		blocks = append(blocks, EventText(e, opts))
	}
	text := strings.Join(blocks, "\n\n")
	if holiday == "" {
		return text
	}
	if text == "" {
		return HolidayPrefix + holiday
	}
	return text + "\n" + HolidayPrefix + holiday
}

// SegmentKind distinguishes tooltip lines.
type SegmentKind int

const (
	SegmentTitle SegmentKind = iota
	SegmentBody
	SegmentGap
)

// Segment is one rendered tooltip line.
type Segment struct {
	Kind SegmentKind
	Text string
}

// Segments splits text into lines. The first line of the text and the first
// line after each blank line are titles; blank lines become gaps.
func Segments(text string) []Segment {
	if text == "" {
		return nil
	}
	lines := strings.Split(text, "\n")
	out := make([]Segment, 0, len(lines))
	titled := false
	for _, line := range lines {
		switch {
		case line == "":
			out = append(out, Segment{Kind: SegmentGap})
			titled = false
		case !titled:
			out = append(out, Segment{Kind: SegmentTitle, Text: line})
			titled = true
		default:
			out = append(out, Segment{Kind: SegmentBody, Text: line})
		}
	}
	return out
}
