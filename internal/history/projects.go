package history

import (
	"context"
	"errors"
	"strings"

	"github.com/alexanderramin/histcal/internal/calendar"
)

// SetFilters replaces the five multi-select filters and reloads. The
// project selection and keyword are kept.
func (c *Controller) SetFilters(ctx context.Context, criteria calendar.Criteria) error {
	return c.do(ctx, "set_filters", func() error {
		c.state.Criteria = withFilters(c.state.Criteria, criteria.Normalize())
		return c.commit(ctx, true)
	})
}

// SelectProject filters by one project id. Empty or the all-projects
// sentinel removes the project filter.
func (c *Controller) SelectProject(ctx context.Context, id string) error {
	return c.do(ctx, "select_project", func() error {
		id = strings.TrimSpace(id)
		if id == "" {
			id = calendar.AllProjects
		}
		c.state.Criteria.ProjectID = id
		return c.commit(ctx, true)
	})
}

// SearchProjects sets the project keyword, reloads the first project page
// with the selection reset to all projects, then reloads data.
func (c *Controller) SearchProjects(ctx context.Context, keyword string) error {
	return c.do(ctx, "search_projects", func() error {
		c.state.Criteria.ProjectKeyword = strings.TrimSpace(keyword)
		_, errProjects := c.loadProjects(ctx, 1, true)
		return errors.Join(errProjects, c.commit(ctx, true))
	})
}

// QueueProjectSearch runs SearchProjects after the debounce interval. Only
// the last keyword queued within the interval is searched.
func (c *Controller) QueueProjectSearch(keyword string) {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	ctx, search := c.ctx, c.search
	c.mu.Unlock()

	search(func() {
		if ctx.Err() != nil {
			return
		}
		if err := c.SearchProjects(ctx, keyword); err != nil && !errors.Is(err, ErrClosed) {
			c.logger.Warn("debounced project search failed", "keyword", keyword, "error", err)
		}
	})
}

// LoadProjectPage loads another page of project options. Requesting the
// current page is a no-op. Data reloads only when the selected project is
// not on the new page and therefore falls back to all projects.
func (c *Controller) LoadProjectPage(ctx context.Context, page int) error {
	return c.do(ctx, "load_project_page", func() error {
		if page < 1 || page == c.projects.Page {
			return nil
		}
		changed, err := c.loadProjects(ctx, page, false)
		if err != nil {
			return err
		}
		return c.commit(ctx, changed)
	})
}

// SetTooltipEnabled turns hover tooltips on or off.
func (c *Controller) SetTooltipEnabled(ctx context.Context, on bool) error {
	return c.do(ctx, "set_tooltip", func() error {
		c.state.Tooltip = on
		return c.commit(ctx, false)
	})
}
