package holiday

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"sync"

	"github.com/samber/lo"
)

// GenericName labels a holiday that carries neither a local nor an English name.
const GenericName = "Public holiday"

// Cache holds the per-year holiday overlay. A year is marked before its
// fetch starts; a failed fetch unmarks it so the next access retries.
type Cache struct {
	fetcher Fetcher
	logger  *slog.Logger

	mu    sync.Mutex
	years map[int]bool
	names map[string][]string
}

// NewCache creates an empty cache over fetcher.
func NewCache(fetcher Fetcher, logger *slog.Logger) *Cache {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Cache{
		fetcher: fetcher,
		logger:  logger,
		years:   make(map[int]bool),
		names:   make(map[string][]string),
	}
}

// Ensure loads year unless it is already cached or in flight. The error is
// returned for callers that care; the overlay itself never blocks a load.
func (c *Cache) Ensure(ctx context.Context, year int) error {
	if year <= 0 || c.fetcher == nil {
		return nil
	}
	c.mu.Lock()
	if c.years[year] {
		c.mu.Unlock()
		return nil
	}
	c.years[year] = true
	c.mu.Unlock()

	entries, err := c.fetcher.PublicHolidays(ctx, year)
	if err != nil {
		c.mu.Lock()
		delete(c.years, year)
		c.mu.Unlock()
		c.logger.Warn("holiday data unavailable", "year", year, "error", err)
		return err
	}

	c.mu.Lock()
	c.index(entries)
	c.mu.Unlock()
	return nil
}

// Refresher fetches a year past any stored copy.
type Refresher interface {
	Refresh(ctx context.Context, year int) ([]Entry, error)
}

// Refresh refetches year and replaces its overlay entries. A fetcher that
// implements Refresher bypasses its stored copy. On failure the previous
// entries stay.
func (c *Cache) Refresh(ctx context.Context, year int) error {
	if year <= 0 || c.fetcher == nil {
		return nil
	}
	fetch := c.fetcher.PublicHolidays
	if r, ok := c.fetcher.(Refresher); ok {
		fetch = r.Refresh
	}
	entries, err := fetch(ctx, year)
	if err != nil {
		c.logger.Warn("holiday refresh failed", "year", year, "error", err)
		return err
	}

	c.mu.Lock()
	prefix := fmt.Sprintf("%04d-", year)
	for date := range c.names {
		if strings.HasPrefix(date, prefix) {
			delete(c.names, date)
		}
	}
	c.years[year] = true
	c.index(entries)
	c.mu.Unlock()
	return nil
}

// index adds entries to the overlay. Callers hold c.mu.
func (c *Cache) index(entries []Entry) {
	for _, e := range entries {
		if e.Date == "" {
			continue
		}
		name := lo.CoalesceOrEmpty(strings.TrimSpace(e.LocalName), strings.TrimSpace(e.Name), GenericName)
		if !lo.Contains(c.names[e.Date], name) {
			c.names[e.Date] = append(c.names[e.Date], name)
		}
	}
}

// EnsureYears loads every listed year, continuing past failures.
func (c *Cache) EnsureYears(ctx context.Context, years []int) {
	for _, y := range years {
		_ = c.Ensure(ctx, y)
	}
}

// Names returns the deduplicated holiday names on date, in source order.
func (c *Cache) Names(date string) []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]string(nil), c.names[date]...)
}

// Label joins the names on date with ", ", or returns "" for a regular day.
func (c *Cache) Label(date string) string {
	return strings.Join(c.Names(date), ", ")
}

// Dates returns every holiday date in year, ascending.
func (c *Cache) Dates(year int) []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	prefix := fmt.Sprintf("%04d-", year)
	out := lo.Filter(lo.Keys(c.names), func(d string, _ int) bool {
		return strings.HasPrefix(d, prefix)
	})
	slices.Sort(out)
	return out
}
