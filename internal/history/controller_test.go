package history

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/histcal/internal/calendar"
	"github.com/alexanderramin/histcal/internal/domain"
	"github.com/alexanderramin/histcal/internal/settings"
	"github.com/alexanderramin/histcal/internal/testutil"
)

func TestStart_WithoutSnapshotLoadsDefaults(t *testing.T) {
	src := newSource(testutil.NewTestEvent("2025-01-03"))
	store := &settings.MemoryStore{}
	c := newController(t, src, store, Config{})

	require.NoError(t, c.Start(context.Background()))

	assert.Equal(t, 1, src.CalendarCallCount())
	params := src.LastCalendarParams()
	// current-last ordering in January spans Feb of the previous year.
	assert.Equal(t, "2024-02-01", params.Get("date_from"))
	assert.Equal(t, "2025-01-31", params.Get("date_to"))

	f := c.Frame()
	assert.True(t, f.Loaded)
	assert.Equal(t, domain.ViewYear, f.View)
	assert.True(t, f.Index.Has("2025-01-03"))
	assert.Equal(t, 0, store.SaveCount())
	assert.False(t, c.Restoring())
}

func TestStart_IsRegisteredOnce(t *testing.T) {
	src := newSource()
	c := startedController(t, src)

	require.NoError(t, c.Start(context.Background()))
	assert.Equal(t, 1, src.CalendarCallCount())
	assert.True(t, c.Register("keys"))
	assert.False(t, c.Register("keys"))
}

func TestStart_RestoreFiresExactlyOneLoad(t *testing.T) {
	src := newSource()
	store := &settings.MemoryStore{}
	weekStart := 0
	seedSnapshot(t, store, settings.Snapshot{
		View:         "week",
		Filters:      settings.Filters{Field: []string{"F1", "GONE"}, Manager: []string{"nobody"}},
		Project:      settings.Project{Keyword: "ni", Selected: "P-9"},
		SortOrder:    "recent",
		WeekStartDay: &weekStart,
		Anchors:      settings.Anchors{Week: "2025-01-08"},
	})
	c := newController(t, src, store, Config{})

	require.NoError(t, c.Start(context.Background()))

	require.Equal(t, 1, src.CalendarCallCount())
	params := src.LastCalendarParams()
	assert.Equal(t, "2025-01-05", params.Get("date_from"))
	assert.Equal(t, "2025-01-11", params.Get("date_to"))
	assert.Equal(t, "F1", params.Get("field_code"))
	assert.Empty(t, params.Get("manager_id"), "vanished values become a wildcard")
	assert.Equal(t, "P-9", params.Get("pipeline_id"))
	assert.Equal(t, "ni", src.LastProjectQuery().Keyword)

	state := c.State()
	assert.Equal(t, domain.SortRecent, state.Sort)
	assert.Equal(t, 0, state.WeekStartDay)
	assert.False(t, c.Restoring())
	assert.Equal(t, 0, store.SaveCount(), "restore does not write back")
}

func TestStart_RestoreProjectsBeforeFiltersFiresOneLoad(t *testing.T) {
	src := newSource()
	projectsServed := make(chan struct{})
	src.BeforeSearchProjects = func() { close(projectsServed) }
	src.BeforeFilterOptions = func() {
		<-projectsServed
		// Give the project page time to be applied first.
		time.Sleep(20 * time.Millisecond)
	}
	store := &settings.MemoryStore{}
	seedSnapshot(t, store, settings.Snapshot{
		View:    "month",
		Filters: settings.Filters{Service: []string{"S2", "GONE"}},
		Project: settings.Project{Selected: "P-10"},
		Anchors: settings.Anchors{Month: "2025-03-14"},
	})
	c := newController(t, src, store, Config{})

	require.NoError(t, c.Start(context.Background()))

	require.Equal(t, 1, src.CalendarCallCount())
	params := src.LastCalendarParams()
	assert.Equal(t, "2025-03-01", params.Get("date_from"))
	assert.Equal(t, "S2", params.Get("service_code"), "filters applied before the load")
	assert.Equal(t, "P-10", params.Get("pipeline_id"))
	assert.False(t, c.Restoring())
	assert.Equal(t, 0, store.SaveCount())
}

func TestStart_RestoreDropsProjectMissingFromPage(t *testing.T) {
	src := newSource()
	store := &settings.MemoryStore{}
	seedSnapshot(t, store, settings.Snapshot{Project: settings.Project{Selected: "P-404"}})
	c := newController(t, src, store, Config{})

	require.NoError(t, c.Start(context.Background()))

	assert.Equal(t, calendar.AllProjects, c.State().Criteria.ProjectID)
	assert.Empty(t, src.LastCalendarParams().Get("pipeline_id"))
}

func TestStart_RestoreOptionFailureStillLoads(t *testing.T) {
	src := newSource()
	src.OptionsErr = errors.New("boom")
	store := &settings.MemoryStore{}
	seedSnapshot(t, store, settings.Snapshot{Filters: settings.Filters{Field: []string{"F1", "GONE"}}})
	c := newController(t, src, store, Config{})

	err := c.Start(context.Background())
	require.Error(t, err)

	assert.Equal(t, 1, src.CalendarCallCount())
	assert.Equal(t, "F1,GONE", src.LastCalendarParams().Get("field_code"))
	notices := c.Notices()
	require.Len(t, notices, 1)
	assert.Equal(t, slog.LevelWarn, notices[0].Level)
	assert.Empty(t, c.Notices(), "notices drain")
}

func TestStart_CorruptSnapshotIgnored(t *testing.T) {
	src := newSource()
	store := &settings.MemoryStore{Raw: "{not json"}
	c := newController(t, src, store, Config{})

	require.NoError(t, c.Start(context.Background()))
	assert.Equal(t, 1, src.CalendarCallCount())
	assert.Equal(t, DefaultState(testToday()), c.State())
}

func TestLoadFailureKeepsPriorIndex(t *testing.T) {
	src := newSource(testutil.NewTestEvent("2025-01-03"))
	c := startedController(t, src)

	src.CalendarErr = errors.New("down")
	err := c.Reload(context.Background())
	require.Error(t, err)

	assert.True(t, c.Frame().Index.Has("2025-01-03"))
	notices := c.Notices()
	require.Len(t, notices, 1)
	assert.Equal(t, slog.LevelError, notices[0].Level)
}

func TestPersistAfterCommittedInteraction(t *testing.T) {
	src := newSource()
	store := &settings.MemoryStore{}
	c := newController(t, src, store, Config{})
	ctx := context.Background()
	require.NoError(t, c.Start(ctx))

	require.NoError(t, c.SetTooltipEnabled(ctx, true))
	require.NoError(t, c.SetYearLayout(ctx, calendar.Layout{Cols: 6, Rows: 2}))

	assert.Equal(t, 1, src.CalendarCallCount(), "tooltip and layout do not refetch")
	assert.Equal(t, 2, store.SaveCount())

	snap, ok := store.Load(ctx)
	require.True(t, ok)
	require.NotNil(t, snap.Tooltip)
	assert.True(t, *snap.Tooltip)
	assert.Equal(t, "6x2", snap.YearLayout)
	assert.Equal(t, "2025-01-08", snap.Anchors.Daily)
}

func TestMonthViewFetchesActivitySummary(t *testing.T) {
	src := newSource(testutil.NewTestEvent("2025-01-08"))
	c := startedController(t, src)
	assert.Empty(t, src.SummaryCalls)

	require.NoError(t, c.SetView(context.Background(), domain.ViewMonth))

	require.Len(t, src.SummaryCalls, 1)
	assert.Equal(t, "2025-01-01", src.SummaryCalls[0].Get("date_from"))
	assert.Equal(t, 2, c.Frame().Summary.Total("2025-01-08"))
}

type stubHolidays struct {
	years  []int
	labels map[string]string
}

func (s *stubHolidays) EnsureYears(_ context.Context, years []int) {
	s.years = append(s.years, years...)
}

func (s *stubHolidays) Label(date string) string { return s.labels[date] }

func TestFrameCarriesHolidays(t *testing.T) {
	hol := &stubHolidays{labels: map[string]string{"2025-01-01": "New Year's Day"}}
	c := New(Deps{Source: newSource(), Holidays: hol, Now: fixedNow}, Config{})
	t.Cleanup(func() { _ = c.Close() })

	require.NoError(t, c.Start(context.Background()))

	assert.Equal(t, []int{2024, 2025}, hol.years)
	f := c.Frame()
	assert.Equal(t, "New Year's Day", f.Holiday("2025-01-01"))
	assert.Empty(t, f.Holiday("2025-01-02"))
}

func TestReset(t *testing.T) {
	src := newSource(testutil.NewTestEvent("2025-01-03"))
	store := &settings.MemoryStore{}
	c := newController(t, src, store, Config{})
	ctx := context.Background()
	require.NoError(t, c.Start(ctx))

	require.NoError(t, c.SetView(ctx, domain.ViewWeek))
	require.NoError(t, c.SetFilters(ctx, calendar.Criteria{Fields: []string{"F1"}}))
	require.NoError(t, c.SetSortOrder(ctx, domain.SortRecent))
	require.NoError(t, c.ApplyCustomRange(ctx, "2025-01-01", "2025-01-05"))
	_, err := c.SelectDate(ctx, "2025-01-03", false)
	require.NoError(t, err)
	require.NotEmpty(t, store.Raw)

	require.NoError(t, c.Reset(ctx))

	assert.Equal(t, DefaultState(testToday()), c.State())
	assert.Empty(t, c.Frame().Selected())
	assert.Empty(t, store.Raw, "snapshot deleted")
	q := src.LastProjectQuery()
	assert.Equal(t, 1, q.Page)
	assert.Empty(t, q.Keyword)
}

func TestClosedController(t *testing.T) {
	c := New(Deps{Source: newSource(), Now: fixedNow}, Config{})
	require.NoError(t, c.Close())
	require.NoError(t, c.Close())

	err := c.SetView(context.Background(), domain.ViewMonth)
	assert.ErrorIs(t, err, ErrClosed)
}

type recordingOpObserver struct {
	names []string
}

func (r *recordingOpObserver) ObserveOperation(_ context.Context, e OperationEvent) {
	r.names = append(r.names, e.Name)
}

func TestOperationsAreObserved(t *testing.T) {
	obs := &recordingOpObserver{}
	c := New(Deps{Source: newSource(), Observer: obs, Now: fixedNow}, Config{})
	t.Cleanup(func() { _ = c.Close() })
	ctx := context.Background()

	require.NoError(t, c.Start(ctx))
	require.NoError(t, c.Shift(ctx, 1))

	assert.Equal(t, []string{"start", "shift"}, obs.names)
}
