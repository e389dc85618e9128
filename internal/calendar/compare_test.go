package calendar

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/alexanderramin/histcal/internal/domain"
)

func ev(id, base, created string) domain.Event {
	return domain.Event{HistoryID: domain.FlexID(id), BaseDate: base, CreatedAt: created}
}

func ids(events []domain.Event) []string {
	out := make([]string, len(events))
	for i, e := range events {
		out[i] = e.ID()
	}
	return out
}

func TestFormatTimestamp(t *testing.T) {
	cases := map[string]string{
		"":                           "",
		"2025-01-08":                 "2025-01-08 00:00:00",
		"2025-01-08T09:30":           "2025-01-08 09:30:00",
		"2025-01-08T09:30:15.123Z":   "2025-01-08 09:30:15",
		"2025-01-08T09:30:15+09:00":  "2025-01-08 09:30:15",
		"2025-01-08 09:30:15.000000": "2025-01-08 09:30:15",
		"not a date":                 "not a date",
	}
	for in, want := range cases {
		assert.Equal(t, want, FormatTimestamp(in), "input=%q", in)
	}
}

func TestParseTimestamp(t *testing.T) {
	assert.Zero(t, ParseTimestamp(""))
	assert.Zero(t, ParseTimestamp("garbage"))
	assert.Less(t, ParseTimestamp("2025-01-08T09:00:00"), ParseTimestamp("2025-01-08T10:00:00"))
}

func TestCompare_Chronological(t *testing.T) {
	events := []domain.Event{
		ev("3", "2025-01-09", "2025-01-01T10:00:00"),
		ev("2", "2025-01-08", "2025-01-01T11:00:00"),
		ev("1", "2025-01-08", "2025-01-01T10:00:00"),
		ev("b", "2025-01-08", ""),
		ev("a", "2025-01-08", ""),
	}
	SortEvents(domain.SortChronological, events)
	assert.Equal(t, []string{"a", "b", "1", "2", "3"}, ids(events))
}

func TestCompare_RecentKeepsIDAscending(t *testing.T) {
	events := []domain.Event{
		ev("1", "2025-01-08", "2025-01-01T10:00:00"),
		ev("3", "2025-01-09", "2025-01-01T10:00:00"),
		ev("b", "2025-01-08", ""),
		ev("a", "2025-01-08", ""),
		ev("2", "2025-01-08", "2025-01-01T11:00:00"),
	}
	SortEvents(domain.SortRecent, events)
	assert.Equal(t, []string{"3", "2", "1", "a", "b"}, ids(events))
}

func TestCompare_UpdatedFallbackAndPipelineID(t *testing.T) {
	a := domain.Event{PipelineID: "P-2", BaseDate: "2025-01-08", UpdatedAt: "2025-01-01T08:00:00"}
	b := domain.Event{PipelineID: "P-1", BaseDate: "2025-01-08", CreatedAt: "2025-01-01T09:00:00"}
	assert.Equal(t, -1, Compare(domain.SortChronological, a, b))

	c := domain.Event{PipelineID: "P-1", BaseDate: "2025-01-08"}
	d := domain.Event{PipelineID: "P-2", BaseDate: "2025-01-08"}
	assert.Equal(t, -1, Compare(domain.SortChronological, c, d))
	assert.Equal(t, -1, Compare(domain.SortRecent, c, d))
}
