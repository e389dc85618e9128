package calendar

import (
	"slices"

	"github.com/alexanderramin/histcal/internal/domain"
)

// Index groups a fetched result window by base date. A key exists only if
// it has at least one event; each bucket is ordered by Compare.
type Index struct {
	order   domain.SortOrder
	buckets map[string][]domain.Event
	keys    []string
}

// BuildIndex groups events by base date and sorts each bucket. Events
// without a usable base date are dropped.
func BuildIndex(events []domain.Event, order domain.SortOrder) *Index {
	idx := &Index{order: order, buckets: make(map[string][]domain.Event)}
	for _, e := range events {
		key, ok := e.DateKey()
		if !ok {
			continue
		}
		idx.buckets[key] = append(idx.buckets[key], e)
	}
	idx.keys = make([]string, 0, len(idx.buckets))
	for key := range idx.buckets {
		idx.keys = append(idx.keys, key)
	}
	slices.Sort(idx.keys)
	idx.Resort(order)
	return idx
}

// Resort reorders every bucket for a new sort order without refetching.
func (x *Index) Resort(order domain.SortOrder) {
	x.order = order
	for _, bucket := range x.buckets {
		SortEvents(order, bucket)
	}
}

// Sorted returns a copy of the index ordered for order. The receiver is
// left untouched so frames already handed out stay stable.
func (x *Index) Sorted(order domain.SortOrder) *Index {
	if x == nil {
		return BuildIndex(nil, order)
	}
	out := &Index{order: order, buckets: make(map[string][]domain.Event, len(x.buckets)), keys: slices.Clone(x.keys)}
	for key, bucket := range x.buckets {
		out.buckets[key] = slices.Clone(bucket)
	}
	out.Resort(order)
	return out
}

func (x *Index) Order() domain.SortOrder {
	if x == nil {
		return domain.SortChronological
	}
	return x.order
}

// Events returns a copy of the bucket for date.
func (x *Index) Events(date string) []domain.Event {
	if x == nil {
		return nil
	}
	return slices.Clone(x.buckets[date])
}

func (x *Index) Has(date string) bool {
	return x.Count(date) > 0
}

func (x *Index) Count(date string) int {
	if x == nil {
		return 0
	}
	return len(x.buckets[date])
}

// Keys returns the populated dates in ascending order.
func (x *Index) Keys() []string {
	if x == nil {
		return nil
	}
	return slices.Clone(x.keys)
}

// Len returns the number of populated dates.
func (x *Index) Len() int {
	if x == nil {
		return 0
	}
	return len(x.keys)
}

// All returns every event, ordered by Compare across buckets.
func (x *Index) All() []domain.Event {
	if x == nil {
		return nil
	}
	out := make([]domain.Event, 0, len(x.keys))
	for _, key := range x.keys {
		out = append(out, x.buckets[key]...)
	}
	SortEvents(x.order, out)
	return out
}

// Adjacent returns the nearest populated date after (dir > 0) or before
// (dir < 0) current. When current is itself populated the neighbour in key
// order is returned.
func (x *Index) Adjacent(current string, dir int) (string, bool) {
	if x == nil || len(x.keys) == 0 {
		return "", false
	}
	if i, found := slices.BinarySearch(x.keys, current); found {
		next := i + sign(dir)
		if next < 0 || next >= len(x.keys) {
			return "", false
		}
		return x.keys[next], true
	}
	if dir > 0 {
		for _, key := range x.keys {
			if key > current {
				return key, true
			}
		}
		return "", false
	}
	for i := len(x.keys) - 1; i >= 0; i-- {
		if x.keys[i] < current {
			return x.keys[i], true
		}
	}
	return "", false
}

// First and Last return the earliest and latest populated dates.
func (x *Index) First() (string, bool) {
	if x.Len() == 0 {
		return "", false
	}
	return x.keys[0], true
}

func (x *Index) Last() (string, bool) {
	if x.Len() == 0 {
		return "", false
	}
	return x.keys[len(x.keys)-1], true
}

func sign(n int) int {
	if n < 0 {
		return -1
	}
	return 1
}
