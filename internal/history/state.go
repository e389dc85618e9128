package history

import (
	"strconv"

	"github.com/alexanderramin/histcal/internal/calendar"
	"github.com/alexanderramin/histcal/internal/domain"
	"github.com/alexanderramin/histcal/internal/settings"
)

// State is the controller's view configuration. It is what gets persisted.
type State struct {
	View         domain.View
	Year         int
	Layout       calendar.Layout
	MonthOrder   calendar.MonthOrder
	Sort         domain.SortOrder
	WeekStartDay int
	Custom       calendar.CustomRange
	MonthAnchor  domain.Date
	WeekAnchor   domain.Date
	DailyAnchor  domain.Date
	Tooltip      bool
	Criteria     calendar.Criteria
}

// DefaultState is the configuration used on first launch and after Reset.
func DefaultState(today domain.Date) State {
	return State{
		View:         domain.ViewYear,
		Year:         today.Year,
		Layout:       calendar.DefaultLayout,
		MonthOrder:   calendar.MonthOrder{Mode: domain.MonthOrderCurrentLast, Slot: 1},
		Sort:         domain.SortChronological,
		WeekStartDay: domain.DefaultWeekStartDay,
		MonthAnchor:  today,
		WeekAnchor:   today,
		DailyAnchor:  today,
		Criteria:     calendar.Criteria{ProjectID: calendar.AllProjects},
	}
}

// WeekRange resolves the week view's range.
func (s State) WeekRange(today domain.Date) calendar.WeekRange {
	return calendar.ResolveWeek(orToday(s.WeekAnchor, today), s.WeekStartDay, s.Custom)
}

// VisibleRange returns the date range the active view shows and fetches.
func (s State) VisibleRange(today domain.Date) calendar.Range {
	switch s.View {
	case domain.ViewMonth:
		return calendar.MonthRange(orToday(s.MonthAnchor, today))
	case domain.ViewWeek:
		return s.WeekRange(today).Range
	case domain.ViewDaily:
		return calendar.MonthRange(orToday(s.DailyAnchor, today))
	default:
		return calendar.YearRange(s.Year, s.MonthOrder, today)
	}
}

func orToday(d, today domain.Date) domain.Date {
	if d.IsZero() {
		return today
	}
	return d
}

// Snapshot converts the state into its persisted form.
func (s State) Snapshot() settings.Snapshot {
	tooltip := s.Tooltip
	weekStart := s.WeekStartDay
	return settings.Snapshot{
		View:         string(s.View),
		Year:         strconv.Itoa(s.Year),
		YearLayout:   s.Layout.String(),
		MonthOrder:   string(s.MonthOrder.Mode),
		MonthSlot:    strconv.Itoa(calendar.ClampSlot(s.MonthOrder.Slot)),
		Tooltip:      &tooltip,
		Filters:      settings.FiltersFrom(s.Criteria),
		Project:      settings.Project{Keyword: s.Criteria.ProjectKeyword, Selected: s.Criteria.ProjectID},
		SortOrder:    string(s.Sort),
		WeekStartDay: &weekStart,
		WeekRange:    s.Custom,
		Anchors: settings.Anchors{
			Month: s.MonthAnchor.String(),
			Week:  s.WeekAnchor.String(),
			Daily: s.DailyAnchor.String(),
		},
	}
}

// applyPrimitives copies the snapshot fields that need no option lists.
// Filters and the project selection are applied once their options load.
func (s *State) applyPrimitives(snap settings.Snapshot) {
	s.View = domain.ParseView(snap.View)
	if y, ok := snap.YearValue(); ok {
		s.Year = y
	}
	if snap.YearLayout != "" {
		s.Layout = calendar.ParseLayout(snap.YearLayout)
	}
	if snap.MonthOrder != "" {
		s.MonthOrder.Mode = domain.ParseMonthOrderMode(snap.MonthOrder)
	}
	if slot, ok := snap.SlotValue(); ok {
		s.MonthOrder.Slot = calendar.ClampSlot(slot)
	}
	if snap.Tooltip != nil {
		s.Tooltip = *snap.Tooltip
	}
	s.Sort = domain.NormalizeSortOrder(snap.SortOrder)
	if snap.WeekStartDay != nil {
		s.WeekStartDay = domain.NormalizeWeekStartDay(*snap.WeekStartDay)
	}
	if snap.WeekRange.Active() {
		s.Custom = snap.WeekRange
	}
	setAnchor(&s.MonthAnchor, snap.Anchors.Month)
	setAnchor(&s.WeekAnchor, snap.Anchors.Week)
	setAnchor(&s.DailyAnchor, snap.Anchors.Daily)
	s.Criteria.ProjectKeyword = snap.Criteria().ProjectKeyword
}

func setAnchor(dst *domain.Date, raw string) {
	if d, err := domain.ParseDate(raw); err == nil {
		*dst = d
	}
}
