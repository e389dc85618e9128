package testutil

import (
	"context"
	"net/url"
	"sync"

	"github.com/alexanderramin/histcal/internal/api"
	"github.com/alexanderramin/histcal/internal/domain"
)

// FakeSource is an in-memory api.Source. Calendar filters its events by the
// date_from/date_to parameters only; every call is recorded.
type FakeSource struct {
	mu sync.Mutex

	Options  domain.FilterOptions
	Events   []domain.Event
	Summary  domain.ActivitySummary
	Projects domain.ProjectPage

	OptionsErr  error
	CalendarErr error
	ProjectsErr error

	// BeforeFilterOptions and BeforeSearchProjects run at the start of the
	// matching call, outside the lock, so a test can hold one call back.
	BeforeFilterOptions  func()
	BeforeSearchProjects func()

	CalendarCalls []url.Values
	SummaryCalls  []url.Values
	ProjectCalls  []api.ProjectQuery
}

var _ api.Source = (*FakeSource)(nil)

func (f *FakeSource) FilterOptions(context.Context) (domain.FilterOptions, error) {
	if f.BeforeFilterOptions != nil {
		f.BeforeFilterOptions()
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.Options, f.OptionsErr
}

func (f *FakeSource) Calendar(_ context.Context, params url.Values) ([]domain.Event, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.CalendarCalls = append(f.CalendarCalls, params)
	if f.CalendarErr != nil {
		return nil, f.CalendarErr
	}
	from, to := params.Get("date_from"), params.Get("date_to")
	var out []domain.Event
	for _, e := range f.Events {
		key, ok := e.DateKey()
		if !ok {
			continue
		}
		if (from == "" || key >= from) && (to == "" || key <= to) {
			out = append(out, e)
		}
	}
	return out, nil
}

func (f *FakeSource) ActivitySummary(_ context.Context, params url.Values) (domain.ActivitySummary, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.SummaryCalls = append(f.SummaryCalls, params)
	return f.Summary, nil
}

func (f *FakeSource) SearchProjects(_ context.Context, q api.ProjectQuery) (domain.ProjectPage, error) {
	if f.BeforeSearchProjects != nil {
		f.BeforeSearchProjects()
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.ProjectCalls = append(f.ProjectCalls, q)
	if f.ProjectsErr != nil {
		return domain.ProjectPage{}, f.ProjectsErr
	}
	page := f.Projects
	page.Page = max(1, q.Page)
	if page.TotalPages == 0 {
		page.TotalPages = 1
	}
	return page, nil
}

// CalendarCallCount returns the number of Calendar calls so far.
func (f *FakeSource) CalendarCallCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.CalendarCalls)
}

// LastCalendarParams returns the parameters of the most recent Calendar call.
func (f *FakeSource) LastCalendarParams() url.Values {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.CalendarCalls) == 0 {
		return nil
	}
	return f.CalendarCalls[len(f.CalendarCalls)-1]
}

// ProjectCallCount returns the number of SearchProjects calls so far.
func (f *FakeSource) ProjectCallCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.ProjectCalls)
}

// LastProjectQuery returns the most recent SearchProjects query.
func (f *FakeSource) LastProjectQuery() api.ProjectQuery {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.ProjectCalls) == 0 {
		return api.ProjectQuery{}
	}
	return f.ProjectCalls[len(f.ProjectCalls)-1]
}
