package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/alexanderramin/histcal/internal/calendar"
	"github.com/alexanderramin/histcal/internal/domain"
	"github.com/alexanderramin/histcal/internal/history"
)

// browseForm is a huh form shown in place of the calendar. done runs once
// the form completes; Esc drops it.
type browseForm struct {
	title string
	form  *huh.Form
	done  func() tea.Cmd
}

func newBrowseForm(title string, done func() tea.Cmd, groups ...*huh.Group) *browseForm {
	form := huh.NewForm(groups...).WithTheme(histcalHuhTheme()).WithShowHelp(false)
	return &browseForm{title: title, form: form, done: done}
}

func optionList(opts []domain.Option, selected []string) []huh.Option[string] {
	out := make([]huh.Option[string], 0, len(opts))
	for _, o := range opts {
		label := domain.CoalesceStr(o.Label, o.Value)
		out = append(out, huh.NewOption(label, o.Value).Selected(contains(selected, o.Value)))
	}
	return out
}

func contains(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}

func validateOptionalDate(s string) error {
	s = strings.TrimSpace(s)
	if s == "" || domain.IsDateInput(s) {
		return nil
	}
	return errors.New("use YYYY-MM-DD")
}

func validateDate(s string) error {
	if _, err := domain.ParseDate(strings.TrimSpace(s)); err != nil {
		return errors.New("use YYYY-MM-DD")
	}
	return nil
}

func validateSlot(s string) error {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 1 || n > 12 {
		return errors.New("enter a number from 1 to 12")
	}
	return nil
}

func validateLayout(s string) error {
	parts := strings.Split(strings.ToLower(strings.TrimSpace(s)), "x")
	if len(parts) != 2 {
		return errors.New("use COLSxROWS, e.g. 4x3")
	}
	for _, p := range parts {
		if n, err := strconv.Atoi(p); err != nil || n < 1 {
			return errors.New("use COLSxROWS, e.g. 4x3")
		}
	}
	return nil
}

// filtersForm edits the five multi-select filters. It returns nil while no
// option list has loaded.
func (m browseModel) filtersForm() *browseForm {
	opts := m.frame.Options
	c := m.frame.Criteria
	criteria := calendar.Criteria{
		Fields:        append([]string(nil), c.Fields...),
		Services:      append([]string(nil), c.Services...),
		ActivityTypes: append([]string(nil), c.ActivityTypes...),
		Managers:      append([]string(nil), c.Managers...),
		Orgs:          append([]string(nil), c.Orgs...),
		ProjectID:     c.ProjectID,
	}

	lists := []struct {
		title string
		opts  []domain.Option
		value *[]string
	}{
		{"Fields", opts.Fields, &criteria.Fields},
		{"Services", opts.Services, &criteria.Services},
		{"Activity types", opts.ActivityTypes, &criteria.ActivityTypes},
		{"Managers", opts.Managers, &criteria.Managers},
		{"Organizations", opts.Orgs, &criteria.Orgs},
	}
	var fields []huh.Field
	for _, l := range lists {
		if len(l.opts) == 0 {
			continue
		}
		fields = append(fields, huh.NewMultiSelect[string]().
			Title(l.title).
			Options(optionList(l.opts, *l.value)...).
			Value(l.value).
			Height(min(len(l.opts)+2, 8)))
	}
	if len(fields) == 0 {
		return nil
	}

	ctrl := m.ctrl
	return newBrowseForm("Filters", func() tea.Cmd {
		return m.run(func(ctx context.Context) error { return ctrl.SetFilters(ctx, criteria) })
	}, huh.NewGroup(fields...))
}

// rangeForm edits the week view's custom range. Blank bounds are left to
// the controller, which reports them as a notice.
func (m browseModel) rangeForm() *browseForm {
	from, to := m.frame.Custom.From, m.frame.Custom.To
	if from == "" && !m.frame.Week.Start.IsZero() {
		from, to = m.frame.Week.Start.String(), m.frame.Week.End.String()
	}
	ctrl := m.ctrl
	return newBrowseForm("Custom range", func() tea.Cmd {
		return m.run(func(ctx context.Context) error {
			return ctrl.ApplyCustomRange(ctx, strings.TrimSpace(from), strings.TrimSpace(to))
		})
	}, huh.NewGroup(
		huh.NewInput().Title("From").Placeholder("2025-01-01").Value(&from).Validate(validateOptionalDate),
		huh.NewInput().Title("To").Placeholder("2025-01-31").Value(&to).Validate(validateOptionalDate),
	))
}

// projectForm picks one project of the loaded search page, or all projects.
func (m browseModel) projectForm() *browseForm {
	selected := m.frame.Criteria.ProjectID
	if selected == "" {
		selected = calendar.AllProjects
	}
	options := []huh.Option[string]{huh.NewOption("All projects", calendar.AllProjects)}
	for _, p := range m.frame.Projects.Items {
		options = append(options, huh.NewOption(p.Label(), string(p.PipelineID)))
	}

	title := "Project"
	if kw := m.frame.Criteria.ProjectKeyword; kw != "" {
		title = fmt.Sprintf("Project matching %q", kw)
	}
	if p := m.frame.Projects; p.TotalPages > 1 {
		title += fmt.Sprintf(" (page %d of %d)", p.Page, p.TotalPages)
	}

	ctrl := m.ctrl
	return newBrowseForm("Project", func() tea.Cmd {
		return m.run(func(ctx context.Context) error { return ctrl.SelectProject(ctx, selected) })
	}, huh.NewGroup(
		huh.NewSelect[string]().Title(title).Options(options...).Value(&selected).Height(min(len(options)+2, 14)),
	))
}

// gotoForm jumps to a date. The year grid follows its year, the daily view
// its day; month and week views select the day and re-anchor on it.
func (m browseModel) gotoForm() *browseForm {
	raw := m.cursor.String()
	ctrl := m.ctrl
	view := m.frame.View
	return newBrowseForm("Go to", func() tea.Cmd {
		d, err := domain.ParseDate(strings.TrimSpace(raw))
		if err != nil {
			return nil
		}
		return tea.Batch(
			func() tea.Msg { return cursorMsg{date: d} },
			m.run(func(ctx context.Context) error {
				switch view {
				case domain.ViewYear:
					return ctrl.SetYear(ctx, d.Year)
				case domain.ViewDaily:
					return ctrl.SetDailyDate(ctx, d)
				default:
					if _, err := ctrl.SelectDate(ctx, d.String(), false); err != nil {
						return err
					}
					return ctrl.SetView(ctx, view)
				}
			}),
		)
	}, huh.NewGroup(
		huh.NewInput().Title("Date").Placeholder("2025-01-31").Value(&raw).Validate(validateDate),
	))
}

// optionsForm edits the display options. Each changed option is applied in
// turn; the first failure stops the chain.
func (m browseModel) optionsForm() *browseForm {
	s := m.frame.State
	layout := s.Layout.String()
	mode := s.MonthOrder.Mode
	slot := strconv.Itoa(calendar.ClampSlot(s.MonthOrder.Slot))
	sort := s.Sort
	weekStart := s.WeekStartDay
	tooltips := s.Tooltip

	weekdays := make([]huh.Option[int], 0, 7)
	for day := range 7 {
		weekdays = append(weekdays, huh.NewOption(domain.WeekdayName(day), day))
	}

	ctrl := m.ctrl
	return newBrowseForm("Options", func() tea.Cmd {
		return m.run(func(ctx context.Context) error {
			if next := calendar.ParseLayout(layout); next != s.Layout {
				if err := ctrl.SetYearLayout(ctx, next); err != nil {
					return err
				}
			}
			n, _ := strconv.Atoi(strings.TrimSpace(slot))
			if next := (calendar.MonthOrder{Mode: mode, Slot: n}); next != s.MonthOrder {
				if err := ctrl.SetMonthOrder(ctx, next); err != nil {
					return err
				}
			}
			if sort != s.Sort {
				if err := ctrl.SetSortOrder(ctx, sort); err != nil {
					return err
				}
			}
			if weekStart != s.WeekStartDay {
				if err := ctrl.SetWeekStartDay(ctx, weekStart); err != nil {
					return err
				}
			}
			if tooltips != s.Tooltip {
				return ctrl.SetTooltipEnabled(ctx, tooltips)
			}
			return nil
		})
	}, huh.NewGroup(
		huh.NewInput().Title("Year layout").Description("months per row x rows").Value(&layout).Validate(validateLayout),
		huh.NewSelect[domain.MonthOrderMode]().Title("Month order").Options(
			huh.NewOption("January first", domain.MonthOrderNormal),
			huh.NewOption("Current month last", domain.MonthOrderCurrentLast),
			huh.NewOption("Current month in slot", domain.MonthOrderCurrentSlot),
		).Value(&mode),
		huh.NewInput().Title("Current month slot").Value(&slot).Validate(validateSlot),
	), huh.NewGroup(
		huh.NewSelect[domain.SortOrder]().Title("Sort").Options(
			huh.NewOption("Oldest first", domain.SortChronological),
			huh.NewOption("Most recent first", domain.SortRecent),
		).Value(&sort),
		huh.NewSelect[int]().Title("Week starts on").Options(weekdays...).Value(&weekStart),
		huh.NewConfirm().Title("Tooltips").Affirmative("On").Negative("Off").Value(&tooltips),
	))
}

// noticeFor turns an operation error into a status line.
func noticeFor(err error) history.Notice {
	return history.Notice{Level: slog.LevelError, Message: err.Error()}
}
