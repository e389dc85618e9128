package calendar

import (
	"slices"

	"github.com/samber/lo"
)

// Selection is the set of selected date keys.
type Selection struct {
	dates map[string]struct{}
}

func NewSelection(dates ...string) *Selection {
	s := &Selection{dates: make(map[string]struct{}, len(dates))}
	for _, d := range dates {
		s.dates[d] = struct{}{}
	}
	return s
}

// Replace makes the selection exactly dates.
func (s *Selection) Replace(dates ...string) {
	s.dates = make(map[string]struct{}, len(dates))
	for _, d := range dates {
		s.dates[d] = struct{}{}
	}
}

// Toggle flips membership of date and reports whether it is now selected.
func (s *Selection) Toggle(date string) bool {
	if _, ok := s.dates[date]; ok {
		delete(s.dates, date)
		return false
	}
	s.dates[date] = struct{}{}
	return true
}

func (s *Selection) Clear() {
	clear(s.dates)
}

func (s *Selection) Has(date string) bool {
	_, ok := s.dates[date]
	return ok
}

// Dates returns the selected keys in ascending order.
func (s *Selection) Dates() []string {
	out := lo.Keys(s.dates)
	slices.Sort(out)
	return out
}

// Earliest returns the smallest selected date.
func (s *Selection) Earliest() (string, bool) {
	if len(s.dates) == 0 {
		return "", false
	}
	return lo.Min(lo.Keys(s.dates)), true
}

// Prune drops every date that has no events in idx.
func (s *Selection) Prune(idx *Index) {
	for d := range s.dates {
		if !idx.Has(d) {
			delete(s.dates, d)
		}
	}
}

// AllSelected reports whether dates is non-empty and fully selected.
func (s *Selection) AllSelected(dates []string) bool {
	if len(dates) == 0 {
		return false
	}
	return lo.EveryBy(dates, s.Has)
}
