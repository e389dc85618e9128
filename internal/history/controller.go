package history

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"sync"
	"time"

	"github.com/bep/debounce"

	"github.com/alexanderramin/histcal/internal/api"
	"github.com/alexanderramin/histcal/internal/calendar"
	"github.com/alexanderramin/histcal/internal/domain"
	"github.com/alexanderramin/histcal/internal/export"
	"github.com/alexanderramin/histcal/internal/settings"
)

const (
	DefaultSearchDebounce = 300 * time.Millisecond
	DefaultPageSize       = 25
	DefaultWalkMonths     = 24
)

// HolidayOverlay supplies holiday labels for visible dates.
type HolidayOverlay interface {
	EnsureYears(ctx context.Context, years []int)
	Label(date string) string
}

// Exporter writes the current selection to a file.
type Exporter interface {
	XLSX(ctx context.Context, sel export.Selection) (export.Result, error)
	ICS(ctx context.Context, sel export.Selection) (export.Result, error)
}

// Config tunes search debouncing, project paging and the daily walk.
type Config struct {
	SearchDebounce time.Duration
	PageSize       int
	WalkMonths     int
}

func (c Config) withDefaults() Config {
	if c.SearchDebounce <= 0 {
		c.SearchDebounce = DefaultSearchDebounce
	}
	if c.PageSize <= 0 {
		c.PageSize = DefaultPageSize
	}
	if c.WalkMonths <= 0 {
		c.WalkMonths = DefaultWalkMonths
	}
	return c
}

// Deps are the controller's collaborators. Source and Store are required.
type Deps struct {
	Source   api.Source
	Holidays HolidayOverlay
	Store    settings.Store
	Exporter Exporter
	Logger   *slog.Logger
	Observer OperationObserver
	Now      func() time.Time
}

// Controller owns the history browser state. Every operation holds the
// controller lock until its fetches complete, so interactions are applied
// one at a time in call order.
type Controller struct {
	mu sync.Mutex

	source   api.Source
	holidays HolidayOverlay
	store    settings.Store
	exporter Exporter
	logger   *slog.Logger
	observer OperationObserver
	now      func() time.Time
	cfg      Config

	ctx        context.Context
	cancel     context.CancelFunc
	search     func(func())
	registered map[string]struct{}
	closed     bool

	gate    settings.Gate
	pending calendar.Criteria

	state     State
	options   domain.FilterOptions
	projects  domain.ProjectPage
	index     *calendar.Index
	summary   domain.ActivitySummary
	selection *calendar.Selection
	loaded    bool
	loadSeq   uint64
	notices   []Notice

	prev checkpoint
}

// checkpoint is the state an operation started from. A failed fetch
// restores it so nothing is half applied.
type checkpoint struct {
	state    State
	projects domain.ProjectPage
	index    *calendar.Index
	summary  domain.ActivitySummary
	selected []string
}

// New builds a controller in the default state. Call Start to restore saved
// settings and load data, and Close when done.
func New(deps Deps, cfg Config) *Controller {
	cfg = cfg.withDefaults()
	now := deps.Now
	if now == nil {
		now = time.Now
	}
	logger := deps.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	observer := deps.Observer
	if observer == nil {
		observer = NoopOperationObserver{}
	}
	store := deps.Store
	if store == nil {
		store = &settings.MemoryStore{}
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &Controller{
		source:     deps.Source,
		holidays:   deps.Holidays,
		store:      store,
		exporter:   deps.Exporter,
		logger:     logger,
		observer:   observer,
		now:        now,
		cfg:        cfg,
		ctx:        ctx,
		cancel:     cancel,
		search:     debounce.New(cfg.SearchDebounce),
		registered: make(map[string]struct{}),
		state:      DefaultState(domain.DateOf(now())),
		index:      calendar.BuildIndex(nil, domain.SortChronological),
		selection:  calendar.NewSelection(),
	}
}

// Close cancels pending debounced work. Later operations return ErrClosed.
func (c *Controller) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return nil
	}
	c.closed = true
	c.cancel()
	return nil
}

// Register adds name to the controller's one-time registration set and
// reports whether it was not registered before. Front ends use it to bind
// handlers exactly once per controller.
func (c *Controller) Register(name string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.register(name)
}

func (c *Controller) register(name string) bool {
	if _, ok := c.registered[name]; ok {
		return false
	}
	c.registered[name] = struct{}{}
	return true
}

func (c *Controller) today() domain.Date {
	return domain.DateOf(c.now())
}

// do runs fn under the controller lock and reports it to the observer.
func (c *Controller) do(ctx context.Context, name string, fn func() error) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return ErrClosed
	}
	c.prev = c.checkpoint()
	start := time.Now()
	err := fn()
	c.observer.ObserveOperation(ctx, OperationEvent{
		Name:     name,
		Duration: time.Since(start),
		Err:      err,
		Fields:   map[string]any{"view": string(c.state.View)},
	})
	return err
}

// Start restores the saved snapshot and loads the option lists. The filter
// options and the first project page are fetched concurrently and applied
// in the order they arrive. When a snapshot exists the first data load
// waits until both have been applied; otherwise data loads right away.
func (c *Controller) Start(ctx context.Context) error {
	return c.do(ctx, "start", func() error {
		if !c.register("start") {
			return nil
		}
		snap, ok := c.store.Load(ctx)
		if ok {
			c.gate.Begin()
			c.state.applyPrimitives(snap)
			c.pending = snap.Criteria()
		}

		applies := make(chan func() error, 2)
		go func() {
			opts, fetchErr := c.source.FilterOptions(ctx)
			applies <- func() error { return c.applyFilters(ctx, opts, fetchErr) }
		}()
		q := c.projectQuery(1)
		go func() {
			page, fetchErr := c.source.SearchProjects(ctx, q)
			applies <- func() error {
				_, err := c.applyProjects(ctx, q, page, fetchErr, false)
				return err
			}
		}()

		var errs []error
		for range 2 {
			apply := <-applies
			errs = append(errs, apply())
		}
		if !ok {
			errs = append(errs, c.load(ctx))
		}
		return errors.Join(errs...)
	})
}

// applyFilters stores fetched filter options. During a restore it applies
// the saved filters, dropping values the options no longer offer. A failed
// fetch still marks filters ready so the restore cannot stall; the saved
// values are then kept as they are.
func (c *Controller) applyFilters(ctx context.Context, opts domain.FilterOptions, err error) error {
	if err != nil {
		c.logger.Warn("filter options load failed", "error", err)
		c.notify(slog.LevelWarn, "Could not load filter options.")
		err = fmt.Errorf("loading filter options: %w", err)
	} else {
		c.options = opts
	}

	if !c.gate.Restoring() {
		return err
	}
	saved := c.pending
	if err == nil {
		saved = saved.Restrict(opts)
	}
	c.state.Criteria = withFilters(c.state.Criteria, saved)
	if c.gate.MarkFiltersReady() {
		return errors.Join(err, c.load(ctx))
	}
	return err
}

func (c *Controller) projectQuery(page int) api.ProjectQuery {
	return api.ProjectQuery{Keyword: c.state.Criteria.ProjectKeyword, Page: max(1, page), PageSize: c.cfg.PageSize}
}

// loadProjects fetches one page of projects for the current keyword and
// applies it. It reports whether the selection changed.
func (c *Controller) loadProjects(ctx context.Context, page int, reset bool) (bool, error) {
	q := c.projectQuery(page)
	result, err := c.source.SearchProjects(ctx, q)
	return c.applyProjects(ctx, q, result, err, reset)
}

// applyProjects stores a fetched project page. A reset selects all
// projects; otherwise a selection missing from the page falls back to all
// projects.
func (c *Controller) applyProjects(ctx context.Context, q api.ProjectQuery, result domain.ProjectPage, err error, reset bool) (bool, error) {
	before := c.state.Criteria.ProjectID
	restoring := c.gate.Restoring()

	switch {
	case err != nil:
		c.logger.Warn("project options load failed", "page", q.Page, "error", err)
		c.notify(slog.LevelWarn, "Could not load projects.")
		err = fmt.Errorf("loading projects: %w", err)
		if restoring {
			c.state.Criteria.ProjectID = c.pending.ProjectID
		}
	case reset:
		c.projects = result
		c.state.Criteria.ProjectID = calendar.AllProjects
	default:
		c.projects = result
		id := c.state.Criteria.ProjectID
		if restoring {
			id = c.pending.ProjectID
		}
		if _, found := result.Find(id); !found {
			id = calendar.AllProjects
		}
		c.state.Criteria.ProjectID = id
	}

	if restoring && c.gate.MarkProjectsReady() {
		err = errors.Join(err, c.load(ctx))
	}
	return before != c.state.Criteria.ProjectID, err
}

// load fetches the visible range and rebuilds the index. It is a no-op
// while a restore is in progress. On failure the previous index stays.
func (c *Controller) load(ctx context.Context) error {
	if c.gate.Restoring() {
		return nil
	}
	r := c.state.VisibleRange(c.today())
	if c.holidays != nil {
		c.holidays.EnsureYears(ctx, r.Years())
	}

	c.loadSeq++
	params := c.state.Criteria.Params(r)
	events, err := c.source.Calendar(ctx, params)
	if err != nil {
		c.logger.Error("history load failed", "range", r.String(), "seq", c.loadSeq, "error", err)
		c.notify(slog.LevelError, "Could not load history data.")
		return fmt.Errorf("loading %s: %w", r, err)
	}
	c.index = calendar.BuildIndex(events, c.state.Sort)
	c.selection.Prune(c.index)
	c.loaded = true
	c.logger.Debug("history loaded", "range", r.String(), "seq", c.loadSeq, "events", len(events), "dates", c.index.Len())

	c.summary = nil
	if c.state.View == domain.ViewMonth {
		summary, err := c.source.ActivitySummary(ctx, params)
		if err != nil {
			c.logger.Warn("activity summary load failed", "range", r.String(), "error", err)
		} else {
			c.summary = summary
		}
	}
	return nil
}

// persist saves the snapshot unless a restore is running. Failures are
// logged only.
func (c *Controller) persist(ctx context.Context) {
	if c.gate.Restoring() {
		return
	}
	if err := c.store.Save(ctx, c.state.Snapshot()); err != nil {
		c.logger.Warn("settings save failed", "error", err)
	}
}

func (c *Controller) checkpoint() checkpoint {
	state := c.state
	state.Criteria = cloneCriteria(state.Criteria)
	return checkpoint{
		state:    state,
		projects: c.projects,
		index:    c.index,
		summary:  c.summary,
		selected: c.selection.Dates(),
	}
}

// rollback restores the checkpoint taken when the running operation began.
func (c *Controller) rollback() {
	c.state = c.prev.state
	c.projects = c.prev.projects
	c.index = c.prev.index
	c.summary = c.prev.summary
	c.selection.Replace(c.prev.selected...)
}

// commit reloads when asked and then persists. A failed reload rolls the
// operation back and nothing is saved.
func (c *Controller) commit(ctx context.Context, reload bool) error {
	if reload {
		if err := c.load(ctx); err != nil {
			c.rollback()
			return err
		}
	}
	c.persist(ctx)
	return nil
}

// Reload refetches the visible range.
func (c *Controller) Reload(ctx context.Context) error {
	return c.do(ctx, "reload", func() error {
		return c.load(ctx)
	})
}

// Reset returns to the default configuration, clears filters and the
// selection, reloads the first project page and deletes the saved snapshot.
func (c *Controller) Reset(ctx context.Context) error {
	return c.do(ctx, "reset", func() error {
		c.state = DefaultState(c.today())
		c.pending = calendar.Criteria{}
		c.selection.Clear()
		c.index = c.index.Sorted(c.state.Sort)

		_, errProjects := c.loadProjects(ctx, 1, true)
		if err := c.store.Clear(ctx); err != nil {
			c.logger.Warn("settings clear failed", "error", err)
		}
		return errors.Join(errProjects, c.load(ctx))
	})
}

// State returns a copy of the current configuration.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	s := c.state
	s.Criteria = cloneCriteria(s.Criteria)
	return s
}

// Restoring reports whether a settings restore is still waiting for options.
func (c *Controller) Restoring() bool {
	return c.gate.Restoring()
}

// Frame returns an immutable snapshot for rendering.
func (c *Controller) Frame() Frame {
	c.mu.Lock()
	defer c.mu.Unlock()

	today := c.today()
	state := c.state
	state.Criteria = cloneCriteria(state.Criteria)
	r := state.VisibleRange(today)
	f := Frame{
		State:    state,
		Today:    today,
		Range:    r,
		Months:   calendar.YearMonths(state.Year, state.MonthOrder, today),
		Week:     state.WeekRange(today),
		Index:    c.index,
		Summary:  c.summary,
		Options:  c.options,
		Projects: c.projects,
		Loaded:   c.loaded,
		Holidays: make(map[string]string),
		selected: calendar.NewSelection(c.selection.Dates()...),
	}
	if c.holidays != nil {
		for _, d := range r.Dates() {
			if label := c.holidays.Label(d.String()); label != "" {
				f.Holidays[d.String()] = label
			}
		}
	}
	return f
}

func withFilters(dst, src calendar.Criteria) calendar.Criteria {
	dst.Fields = slices.Clone(src.Fields)
	dst.Services = slices.Clone(src.Services)
	dst.ActivityTypes = slices.Clone(src.ActivityTypes)
	dst.Managers = slices.Clone(src.Managers)
	dst.Orgs = slices.Clone(src.Orgs)
	return dst
}

func cloneCriteria(c calendar.Criteria) calendar.Criteria {
	return withFilters(c, c)
}
