package calendar

import (
	"regexp"
	"slices"
	"strings"
	"time"

	"github.com/alexanderramin/histcal/internal/domain"
)

var (
	tsZoneSuffix = regexp.MustCompile(`(\.\d+)?(Z|[+-]\d{2}:?\d{2})$`)
	tsDateOnly   = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	tsMinutes    = regexp.MustCompile(`^\d{4}-\d{2}-\d{2} \d{2}:\d{2}$`)
	tsSeconds    = regexp.MustCompile(`^\d{4}-\d{2}-\d{2} \d{2}:\d{2}:\d{2}`)
)

// FormatTimestamp normalizes an API timestamp to "YYYY-MM-DD HH:MM:SS".
// Zone suffixes and fractional seconds are dropped; values that match none
// of the known shapes are returned trimmed but otherwise unchanged.
func FormatTimestamp(value string) string {
	s := strings.TrimSpace(value)
	if s == "" {
		return ""
	}
	s = strings.Replace(s, "T", " ", 1)
	s = tsZoneSuffix.ReplaceAllString(s, "")
	switch {
	case tsDateOnly.MatchString(s):
		return s + " 00:00:00"
	case tsMinutes.MatchString(s):
		return s + ":00"
	case tsSeconds.MatchString(s):
		return s[:19]
	default:
		return s
	}
}

// ParseTimestamp returns the value as Unix milliseconds, or 0 when it
// cannot be parsed.
func ParseTimestamp(value string) int64 {
	s := FormatTimestamp(value)
	if s == "" {
		return 0
	}
	t, err := time.Parse("2006-01-02 15:04:05", s)
	if err != nil {
		return 0
	}
	return t.UnixMilli()
}

func baseDateMillis(e domain.Event) int64 {
	key, ok := e.DateKey()
	if !ok {
		return 0
	}
	d, _ := domain.ParseDate(key)
	return d.Time().UnixMilli()
}

// Compare orders two events:
// 1. Base date, in the sort direction
// 2. Created timestamp (updated as fallback), in the sort direction
// 3. ID, always ascending
func Compare(order domain.SortOrder, a, b domain.Event) int {
	dir := order.Direction()

	if da, db := baseDateMillis(a), baseDateMillis(b); da != db {
		return cmpInt64(da, db) * dir
	}

	ca := ParseTimestamp(domain.CoalesceStr(a.CreatedAt, a.UpdatedAt))
	cb := ParseTimestamp(domain.CoalesceStr(b.CreatedAt, b.UpdatedAt))
	if ca != cb {
		return cmpInt64(ca, cb) * dir
	}

	return strings.Compare(a.ID(), b.ID())
}

// SortEvents sorts events in place.
func SortEvents(order domain.SortOrder, events []domain.Event) {
	slices.SortStableFunc(events, func(a, b domain.Event) int {
		return Compare(order, a, b)
	})
}

func cmpInt64(a, b int64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
