package history

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/alexanderramin/histcal/internal/calendar"
	"github.com/alexanderramin/histcal/internal/domain"
	"github.com/alexanderramin/histcal/internal/export"
)

// SelectDate applies a date click and reports whether the detail modal
// should open. A plain click replaces the selection and moves the daily
// anchor; in year and month views the modal opens only for dates with
// events. A multi click toggles the date and never opens the modal. In week
// view the week anchor follows the clicked date either way.
func (c *Controller) SelectDate(ctx context.Context, date string, multi bool) (bool, error) {
	var open bool
	err := c.do(ctx, "select_date", func() error {
		d, err := domain.ParseDate(date)
		if err != nil {
			return fmt.Errorf("selecting date: %w", err)
		}
		key := d.String()
		if c.state.View == domain.ViewWeek {
			c.state.WeekAnchor = d
		}
		if multi {
			c.selection.Toggle(key)
			c.persist(ctx)
			return nil
		}

		c.selection.Replace(key)
		c.state.DailyAnchor = d
		switch c.state.View {
		case domain.ViewYear, domain.ViewMonth:
			open = c.index.Has(key)
		default:
			open = true
		}
		c.persist(ctx)
		return nil
	})
	return open, err
}

// SetSelectAllVisible selects every visible week date that has events, or
// clears the selection. It only applies to the week view.
func (c *Controller) SetSelectAllVisible(ctx context.Context, checked bool) error {
	return c.do(ctx, "select_all_visible", func() error {
		if c.state.View != domain.ViewWeek {
			return nil
		}
		if !checked {
			c.selection.Clear()
			return nil
		}
		week := c.state.WeekRange(c.today())
		c.selection.Replace(eventDates(week.Range, c.index)...)
		return nil
	})
}

// ClearSelection empties the selection.
func (c *Controller) ClearSelection(ctx context.Context) error {
	return c.do(ctx, "clear_selection", func() error {
		c.selection.Clear()
		return nil
	})
}

// SelectedEvents returns the union of the selected dates' events, ordered
// by the active sort order.
func (c *Controller) SelectedEvents() []domain.Event {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.selectedEvents()
}

func (c *Controller) selectedEvents() []domain.Event {
	var out []domain.Event
	for _, date := range c.selection.Dates() {
		out = append(out, c.index.Events(date)...)
	}
	calendar.SortEvents(c.state.Sort, out)
	return out
}

// Export writes the selection as a spreadsheet. An empty selection returns
// export.ErrEmptySelection without a notice.
func (c *Controller) Export(ctx context.Context) (export.Result, error) {
	return c.runExport(ctx, "export_xlsx", func(e Exporter, sel export.Selection) (export.Result, error) {
		return e.XLSX(ctx, sel)
	})
}

// ExportICS writes the selection as an iCalendar file.
func (c *Controller) ExportICS(ctx context.Context) (export.Result, error) {
	return c.runExport(ctx, "export_ics", func(e Exporter, sel export.Selection) (export.Result, error) {
		return e.ICS(ctx, sel)
	})
}

func (c *Controller) runExport(ctx context.Context, name string, write func(Exporter, export.Selection) (export.Result, error)) (export.Result, error) {
	var res export.Result
	err := c.do(ctx, name, func() error {
		sel := export.Selection{
			Dates:   c.selection.Dates(),
			Events:  c.selectedEvents(),
			Options: c.options,
		}
		if len(sel.Events) == 0 {
			return export.ErrEmptySelection
		}
		if c.exporter == nil {
			c.notify(slog.LevelWarn, export.WriterUnavailableMessage)
			return export.ErrWriterUnavailable
		}

		var err error
		res, err = write(c.exporter, sel)
		switch {
		case errors.Is(err, export.ErrWriterUnavailable):
			c.notify(slog.LevelWarn, export.WriterUnavailableMessage)
		case errors.Is(err, export.ErrEmptySelection):
		case err != nil:
			c.logger.Error("export failed", "error", err)
			c.notify(slog.LevelError, "Export failed: "+err.Error())
		default:
			c.notify(slog.LevelInfo, fmt.Sprintf("Exported %d rows to %s", res.Rows, res.Path))
		}
		return err
	})
	return res, err
}
