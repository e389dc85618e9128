package render

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/histcal/internal/domain"
)

// EmptySelection is shown when the selected dates have no events.
const EmptySelection = "No history on the selected dates."

// ModalSummary is "first ~ last · N items" over the sorted selected dates.
func ModalSummary(dates []string, count int) string {
	span := "-"
	if len(dates) > 0 {
		span = dates[0] + " ~ " + dates[len(dates)-1]
	}
	return fmt.Sprintf("%s · %s", span, countLabel(count))
}

// ModalItem renders one event of the detail list.
func ModalItem(e domain.Event, opts domain.FilterOptions) string {
	date, ok := e.DateKey()
	if !ok {
		date = "-"
	}
	content := domain.CoalesceDash(strings.TrimSpace(e.Content))
	return strings.Join([]string{
		Bold(date + " · " + e.ProjectLabel()),
		activityChip(e, opts) + "  " + metaLine(e),
		Dim("Customer ") + e.CustomerLabel() + Dim(" · Manager ") + e.ManagerLabel() + Dim(" · Org ") + e.OrgLabel(),
		Clip(content, ContentLimit),
	}, "\n")
}

// Modal draws the detail modal for the selected dates and their events.
func Modal(dates []string, events []domain.Event, opts domain.FilterOptions, width int) string {
	body := Dim(EmptySelection)
	if len(events) > 0 {
		items := make([]string, 0, len(events))
		for _, e := range events {
			items = append(items, ModalItem(e, opts))
		}
		body = strings.Join(items, "\n\n")
	}
	if width > 4 {
		body = wrap(body, width-4)
	}
	return RenderBox("Selected history", Dim(ModalSummary(dates, len(events)))+"\n\n"+body)
}
