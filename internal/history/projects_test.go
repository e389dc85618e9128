package history

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/histcal/internal/calendar"
)

func TestSetFiltersKeepsProject(t *testing.T) {
	src := newSource()
	c := startedController(t, src)
	ctx := context.Background()
	require.NoError(t, c.SelectProject(ctx, "P-9"))

	require.NoError(t, c.SetFilters(ctx, calendar.Criteria{
		Fields:   []string{" F1 ", "F1", ""},
		Managers: []string{"kim", "lee"},
	}))

	params := src.LastCalendarParams()
	assert.Equal(t, "F1", params.Get("field_code"))
	assert.Equal(t, "kim,lee", params.Get("manager_id"))
	assert.Equal(t, "P-9", params.Get("pipeline_id"))
}

func TestSelectProject(t *testing.T) {
	src := newSource()
	c := startedController(t, src)
	ctx := context.Background()

	require.NoError(t, c.SelectProject(ctx, "P-10"))
	assert.Equal(t, "P-10", src.LastCalendarParams().Get("pipeline_id"))

	require.NoError(t, c.SelectProject(ctx, ""))
	assert.Equal(t, calendar.AllProjects, c.State().Criteria.ProjectID)
	assert.Empty(t, src.LastCalendarParams().Get("pipeline_id"))
}

func TestSearchProjects(t *testing.T) {
	src := newSource()
	c := startedController(t, src)
	ctx := context.Background()
	require.NoError(t, c.SelectProject(ctx, "P-9"))

	require.NoError(t, c.SearchProjects(ctx, "  acme "))

	q := src.LastProjectQuery()
	assert.Equal(t, "acme", q.Keyword)
	assert.Equal(t, 1, q.Page)
	assert.Equal(t, DefaultPageSize, q.PageSize)
	state := c.State()
	assert.Equal(t, calendar.AllProjects, state.Criteria.ProjectID)
	params := src.LastCalendarParams()
	assert.Equal(t, "acme", params.Get("project_keyword"))
	assert.Empty(t, params.Get("pipeline_id"))
}

func TestLoadProjectPage(t *testing.T) {
	src := newSource()
	c := startedController(t, src)
	ctx := context.Background()
	calls := src.ProjectCallCount()

	require.NoError(t, c.LoadProjectPage(ctx, 1))
	assert.Equal(t, calls, src.ProjectCallCount(), "current page is a no-op")

	require.NoError(t, c.LoadProjectPage(ctx, 2))
	assert.Equal(t, calls+1, src.ProjectCallCount())
	assert.Equal(t, 2, src.LastProjectQuery().Page)
	assert.Equal(t, 2, c.Frame().Projects.Page)
}

func TestLoadProjectPage_SelectionMissingFallsBack(t *testing.T) {
	src := newSource()
	c := startedController(t, src)
	ctx := context.Background()
	require.NoError(t, c.SelectProject(ctx, "P-77"))
	loads := src.CalendarCallCount()

	require.NoError(t, c.LoadProjectPage(ctx, 3))

	assert.Equal(t, calendar.AllProjects, c.State().Criteria.ProjectID)
	assert.Equal(t, loads+1, src.CalendarCallCount())
}

func TestQueueProjectSearch_Debounced(t *testing.T) {
	src := newSource()
	c := newController(t, src, nil, Config{SearchDebounce: 20 * time.Millisecond})
	require.NoError(t, c.Start(context.Background()))
	calls := src.ProjectCallCount()

	c.QueueProjectSearch("a")
	c.QueueProjectSearch("ab")
	c.QueueProjectSearch("abc")

	assert.Eventually(t, func() bool {
		return src.ProjectCallCount() == calls+1
	}, time.Second, 5*time.Millisecond)
	time.Sleep(60 * time.Millisecond)
	assert.Equal(t, calls+1, src.ProjectCallCount())
	assert.Equal(t, "abc", src.LastProjectQuery().Keyword)
	assert.Equal(t, "abc", c.State().Criteria.ProjectKeyword)
}

func TestSetTooltipEnabled(t *testing.T) {
	c := startedController(t, newSource())

	require.NoError(t, c.SetTooltipEnabled(context.Background(), true))
	assert.True(t, c.Frame().Tooltip)
}
