package history

import (
	"context"
	"log/slog"
	"strings"

	"github.com/alexanderramin/histcal/internal/calendar"
	"github.com/alexanderramin/histcal/internal/domain"
)

// SetView switches the active view and reloads. Month and week anchors move
// to the earliest selected date when there is one; week prefers an active
// custom range; daily falls back to today only when unset.
func (c *Controller) SetView(ctx context.Context, view domain.View) error {
	return c.do(ctx, "set_view", func() error {
		today := c.today()
		earliest, hasSelection := c.earliestSelected()
		c.state.View = view

		switch view {
		case domain.ViewMonth:
			if hasSelection {
				c.state.MonthAnchor = earliest
			}
			c.state.MonthAnchor = orToday(c.state.MonthAnchor, today)
		case domain.ViewWeek:
			if r, err := c.state.Custom.Resolve(); err == nil {
				c.state.WeekAnchor = r.Start
			} else if hasSelection {
				c.state.WeekAnchor = earliest
			}
			c.state.WeekAnchor = orToday(c.state.WeekAnchor, today)
			c.state.MonthAnchor = c.state.WeekAnchor
		case domain.ViewDaily:
			c.state.DailyAnchor = orToday(c.state.DailyAnchor, today)
		}
		return c.commit(ctx, true)
	})
}

func (c *Controller) earliestSelected() (domain.Date, bool) {
	key, ok := c.selection.Earliest()
	if !ok {
		return domain.Date{}, false
	}
	d, err := domain.ParseDate(key)
	return d, err == nil
}

// Shift moves the active view one unit backwards (dir < 0) or forwards.
// Year and month move by one; week moves seven days or, with a custom
// range, by the range's own length. Daily steps to the adjacent date with
// events, walking month by month when the loaded month has none.
func (c *Controller) Shift(ctx context.Context, dir int) error {
	if dir < 0 {
		dir = -1
	} else {
		dir = 1
	}
	return c.do(ctx, "shift", func() error {
		today := c.today()
		switch c.state.View {
		case domain.ViewMonth:
			c.state.MonthAnchor = orToday(c.state.MonthAnchor, today).AddMonths(dir)
		case domain.ViewWeek:
			if r, err := c.state.Custom.Resolve(); err == nil {
				span := max(1, r.Days()) * dir
				start, end := r.Start.AddDays(span), r.End.AddDays(span)
				c.state.Custom = calendar.CustomRange{From: start.String(), To: end.String()}
				c.state.WeekAnchor = start
				c.state.MonthAnchor = start
			} else {
				c.state.WeekAnchor = orToday(c.state.WeekAnchor, today).AddDays(7 * dir)
				c.state.MonthAnchor = c.state.WeekAnchor
			}
		case domain.ViewDaily:
			return c.walkDaily(ctx, dir)
		default:
			c.state.Year += dir
		}
		return c.commit(ctx, true)
	})
}

// walkDaily moves the daily anchor to the adjacent populated date. When the
// loaded month has none in that direction it loads following months, up to
// the configured limit, and lands on the first (forward) or last (backward)
// populated date of the first month that has any.
func (c *Controller) walkDaily(ctx context.Context, dir int) error {
	current := orToday(c.state.DailyAnchor, c.today())
	if next, ok := c.index.Adjacent(current.String(), dir); ok {
		if d, err := domain.ParseDate(next); err == nil {
			c.state.DailyAnchor = d
			c.persist(ctx)
			return nil
		}
	}

	month := current.StartOfMonth()
	for range c.cfg.WalkMonths {
		month = month.AddMonths(dir)
		c.state.DailyAnchor = month
		if err := c.load(ctx); err != nil {
			c.rollback()
			return err
		}
		key, ok := c.index.First()
		if dir < 0 {
			key, ok = c.index.Last()
		}
		if ok {
			if d, err := domain.ParseDate(key); err == nil {
				c.state.DailyAnchor = d
			}
			break
		}
	}
	c.persist(ctx)
	return nil
}

// Today moves every anchor to today. In year view the selected year follows;
// in week view the custom range is cleared.
func (c *Controller) Today(ctx context.Context) error {
	return c.do(ctx, "today", func() error {
		today := c.today()
		c.state.MonthAnchor = today
		c.state.WeekAnchor = today
		c.state.DailyAnchor = today
		switch c.state.View {
		case domain.ViewYear:
			c.state.Year = today.Year
		case domain.ViewWeek:
			c.state.Custom = calendar.CustomRange{}
		}
		return c.commit(ctx, true)
	})
}

// SetDailyDate moves the daily anchor. Data reloads only when the daily
// view's month changes.
func (c *Controller) SetDailyDate(ctx context.Context, d domain.Date) error {
	return c.do(ctx, "set_daily_date", func() error {
		before := c.state.VisibleRange(c.today())
		c.state.DailyAnchor = d
		after := c.state.VisibleRange(c.today())
		return c.commit(ctx, c.state.View == domain.ViewDaily && before != after)
	})
}

// SetYear selects the year shown by the year grid.
func (c *Controller) SetYear(ctx context.Context, year int) error {
	return c.do(ctx, "set_year", func() error {
		if year <= 0 {
			year = c.today().Year
		}
		c.state.Year = year
		return c.commit(ctx, true)
	})
}

// SetMonthOrder changes the year grid's month ordering.
func (c *Controller) SetMonthOrder(ctx context.Context, order calendar.MonthOrder) error {
	return c.do(ctx, "set_month_order", func() error {
		c.state.MonthOrder = calendar.MonthOrder{
			Mode: domain.ParseMonthOrderMode(string(order.Mode)),
			Slot: calendar.ClampSlot(order.Slot),
		}
		return c.commit(ctx, true)
	})
}

// SetYearLayout changes the year grid layout. The data is unaffected.
func (c *Controller) SetYearLayout(ctx context.Context, layout calendar.Layout) error {
	return c.do(ctx, "set_year_layout", func() error {
		c.state.Layout = calendar.ParseLayout(layout.String())
		return c.commit(ctx, false)
	})
}

// SetSortOrder re-sorts the loaded index without refetching.
func (c *Controller) SetSortOrder(ctx context.Context, order domain.SortOrder) error {
	return c.do(ctx, "set_sort_order", func() error {
		c.state.Sort = domain.NormalizeSortOrder(string(order))
		c.index = c.index.Sorted(c.state.Sort)
		return c.commit(ctx, false)
	})
}

// SetWeekStartDay changes the first weekday of a derived week. Data
// reloads only when the week view is showing a derived week.
func (c *Controller) SetWeekStartDay(ctx context.Context, day int) error {
	return c.do(ctx, "set_week_start", func() error {
		c.state.WeekStartDay = domain.NormalizeWeekStartDay(day)
		reload := c.state.View == domain.ViewWeek && !c.state.Custom.Active()
		return c.commit(ctx, reload)
	})
}

// ApplyCustomRange sets an explicit week range. An incomplete or reversed
// range is rejected with a notice and leaves the state unchanged.
func (c *Controller) ApplyCustomRange(ctx context.Context, from, to string) error {
	return c.do(ctx, "apply_custom_range", func() error {
		custom := calendar.CustomRange{From: strings.TrimSpace(from), To: strings.TrimSpace(to)}
		r, err := custom.Resolve()
		if err != nil {
			c.notify(slog.LevelWarn, rangeNotice(custom))
			return err
		}
		c.state.Custom = custom
		c.state.WeekAnchor = r.Start
		c.state.MonthAnchor = r.Start
		return c.commit(ctx, true)
	})
}

// ClearCustomRange drops the explicit week range and moves the week and
// month anchors to today.
func (c *Controller) ClearCustomRange(ctx context.Context) error {
	return c.do(ctx, "clear_custom_range", func() error {
		today := c.today()
		c.state.Custom = calendar.CustomRange{}
		c.state.WeekAnchor = today
		c.state.MonthAnchor = today
		return c.commit(ctx, c.state.View == domain.ViewWeek)
	})
}

func rangeNotice(custom calendar.CustomRange) string {
	if !custom.Active() {
		return "Enter both a start and an end date."
	}
	_, errFrom := domain.ParseDate(custom.From)
	_, errTo := domain.ParseDate(custom.To)
	if errFrom != nil || errTo != nil {
		return "Enter valid dates as YYYY-MM-DD."
	}
	return "The end date cannot be before the start date."
}
