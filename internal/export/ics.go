package export

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/emersion/go-ical"

	"github.com/alexanderramin/histcal/internal/domain"
)

// ProductID identifies generated calendars.
const ProductID = "-//histcal//EN"

// EncodeICS writes one all-day VEVENT per event.
func EncodeICS(w io.Writer, events []domain.Event, opts domain.FilterOptions, stamp time.Time) error {
	cal := ical.NewCalendar()
	cal.Props.SetText(ical.PropVersion, "2.0")
	cal.Props.SetText(ical.PropProductID, ProductID)

	for _, e := range events {
		key, ok := e.DateKey()
		if !ok {
			continue
		}
		day, _ := domain.ParseDate(key)
		cal.Children = append(cal.Children, toVEvent(e, day, opts, stamp))
	}

	if err := ical.NewEncoder(w).Encode(cal); err != nil {
		return fmt.Errorf("encoding calendar: %w", err)
	}
	return nil
}

func toVEvent(e domain.Event, day domain.Date, opts domain.FilterOptions, stamp time.Time) *ical.Component {
	ve := ical.NewComponent(ical.CompEvent)
	ve.Props.SetText(ical.PropUID, fmt.Sprintf("history-%s@histcal", e.ID()))
	ve.Props.SetDateTime(ical.PropDateTimeStamp, stamp.UTC())
	start := time.Date(day.Year, day.Month, day.Day, 0, 0, 0, 0, time.UTC)
	ve.Props.SetDate(ical.PropDateTimeStart, start)
	ve.Props.SetDate(ical.PropDateTimeEnd, start.AddDate(0, 0, 1))

	summary := e.ProjectLabel()
	if activity := e.ActivityLabel(opts); activity != "" {
		summary += " · " + activity
	}
	ve.Props.SetText(ical.PropSummary, Sanitize(summary))

	var desc []string
	desc = append(desc, fmt.Sprintf("Stage: %s", e.StageLabel()))
	desc = append(desc, fmt.Sprintf("Customer: %s", e.CustomerLabel()))
	desc = append(desc, fmt.Sprintf("Manager: %s / %s", e.ManagerLabel(), e.OrgLabel()))
	if strings.TrimSpace(e.Content) != "" {
		desc = append(desc, "", e.Content)
	}
	ve.Props.SetText(ical.PropDescription, Sanitize(strings.Join(desc, "\n")))
	if e.PipelineID != "" {
		ve.Props.SetText(ical.PropCategories, Sanitize(e.PipelineID))
	}
	return ve
}
