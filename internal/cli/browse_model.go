package cli

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/alexanderramin/histcal/internal/calendar"
	"github.com/alexanderramin/histcal/internal/domain"
	"github.com/alexanderramin/histcal/internal/export"
	"github.com/alexanderramin/histcal/internal/history"
	"github.com/alexanderramin/histcal/internal/render"
	"github.com/alexanderramin/histcal/internal/tooltip"
)

// tooltipWidth caps the tooltip box, border included.
const tooltipWidth = 64

// maxStatus is the number of notices kept for the status line.
const maxStatus = 3

// frameMsg carries the controller's frame after an operation.
type frameMsg struct {
	frame     history.Frame
	notices   []history.Notice
	err       error
	openModal bool
}

// cursorMsg moves the keyboard cursor.
type cursorMsg struct{ date domain.Date }

// refreshMsg re-reads the frame after background work such as a debounced
// project search.
type refreshMsg struct{}

// browseModel is the bubbletea model of the history browser. Controller
// operations run inside Cmds and report back with a frameMsg; the model
// only renders the latest frame.
type browseModel struct {
	ctrl     *history.Controller
	keys     browseKeyMap
	help     help.Model
	search   textinput.Model
	vp       viewport.Model
	tip      *tooltip.Controller
	debounce time.Duration

	width, height int

	frame      history.Frame
	cursor     domain.Date
	pointer    tooltip.Point
	hasPointer bool

	modal     bool
	searching bool
	form      *browseForm
	status    []history.Notice
	quitting  bool
}

func newBrowseModel(ctrl *history.Controller, debounce time.Duration) browseModel {
	if debounce <= 0 {
		debounce = history.DefaultSearchDebounce
	}

	vp := viewport.New(0, 0)
	vp.KeyMap = modalViewportKeyMap()
	vp.MouseWheelEnabled = true
	vp.MouseWheelDelta = 3

	search := textinput.New()
	search.Prompt = "/ "
	search.Placeholder = "project, customer or ordering party"
	search.CharLimit = 80

	h := help.New()
	h.Styles.ShortKey = render.StyleHeader
	h.Styles.ShortDesc = render.StyleDim
	h.Styles.FullKey = render.StyleHeader
	h.Styles.FullDesc = render.StyleDim

	return browseModel{
		ctrl:     ctrl,
		keys:     newBrowseKeyMap(),
		help:     h,
		search:   search,
		vp:       vp,
		tip:      &tooltip.Controller{},
		debounce: debounce,
	}
}

// ── controller commands ─────────────────────────────────────────────────────

// run executes op against the controller in a Cmd and reports the frame.
func (m browseModel) run(op func(ctx context.Context) error) tea.Cmd {
	ctrl := m.ctrl
	return func() tea.Msg {
		err := op(context.Background())
		return frameMsg{frame: ctrl.Frame(), notices: ctrl.Notices(), err: err}
	}
}

func (m browseModel) snapshot() tea.Cmd {
	return m.run(func(context.Context) error { return nil })
}

func (m browseModel) selectDate(multi bool) tea.Cmd {
	ctrl, date := m.ctrl, m.cursor.String()
	return func() tea.Msg {
		open, err := ctrl.SelectDate(context.Background(), date, multi)
		return frameMsg{frame: ctrl.Frame(), notices: ctrl.Notices(), err: err, openModal: open}
	}
}

func (m browseModel) export(write func(context.Context) (export.Result, error)) tea.Cmd {
	return m.run(func(ctx context.Context) error {
		_, err := write(ctx)
		if errors.Is(err, export.ErrEmptySelection) {
			return nil
		}
		return err
	})
}

func (m browseModel) setView(view domain.View) tea.Cmd {
	ctrl := m.ctrl
	return m.run(func(ctx context.Context) error { return ctrl.SetView(ctx, view) })
}

func (m browseModel) shift(dir int) tea.Cmd {
	ctrl := m.ctrl
	return m.run(func(ctx context.Context) error { return ctrl.Shift(ctx, dir) })
}

// ── bubbletea interface ─────────────────────────────────────────────────────

func (m browseModel) Init() tea.Cmd {
	return m.run(m.ctrl.Start)
}

func (m browseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.search.Width = max(10, msg.Width-40)
		m.refresh()
		if m.form != nil {
			return m.updateForm(msg)
		}
		return m, nil

	case frameMsg:
		m.applyFrame(msg)
		return m, nil

	case cursorMsg:
		m.cursor = msg.date
		m.refresh()
		return m, nil

	case refreshMsg:
		return m, m.snapshot()

	case tea.MouseMsg:
		m.pointer = tooltip.Point{X: msg.X, Y: msg.Y}
		m.hasPointer = true
		m.tip.Move(m.pointer)
		if m.form != nil {
			return m.updateForm(msg)
		}
		var cmd tea.Cmd
		m.vp, cmd = m.vp.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	if m.form != nil {
		return m.updateForm(msg)
	}
	if m.searching {
		var cmd tea.Cmd
		m.search, cmd = m.search.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m browseModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		m.quitting = true
		return m, tea.Quit
	}
	if m.form != nil {
		if msg.Type == tea.KeyEsc {
			m.form = nil
			m.refresh()
			return m, nil
		}
		return m.updateForm(msg)
	}
	if m.searching {
		return m.updateSearch(msg)
	}

	k := m.keys
	if m.modal {
		switch {
		case key.Matches(msg, k.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, k.Clear, k.Open, k.Select):
			m.modal = false
			m.refresh()
			return m, nil
		}
		var cmd tea.Cmd
		m.vp, cmd = m.vp.Update(msg)
		return m, cmd
	}

	ctrl := m.ctrl
	switch {
	case key.Matches(msg, k.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, k.Year):
		return m, m.setView(domain.ViewYear)
	case key.Matches(msg, k.Month):
		return m, m.setView(domain.ViewMonth)
	case key.Matches(msg, k.Week):
		return m, m.setView(domain.ViewWeek)
	case key.Matches(msg, k.Daily):
		return m, m.setView(domain.ViewDaily)
	case key.Matches(msg, k.Prev):
		return m, m.shift(-1)
	case key.Matches(msg, k.Next):
		return m, m.shift(1)
	case key.Matches(msg, k.Today):
		m.cursor = m.frame.Today
		return m, m.run(ctrl.Today)
	case key.Matches(msg, k.GoTo):
		return m.openForm(m.gotoForm())
	case key.Matches(msg, k.Left):
		return m.moveCursor(-1)
	case key.Matches(msg, k.Right):
		return m.moveCursor(1)
	case key.Matches(msg, k.Up):
		if m.scrollsBody() {
			m.vp.ScrollUp(1)
			return m, nil
		}
		return m.moveCursor(-7)
	case key.Matches(msg, k.Down):
		if m.scrollsBody() {
			m.vp.ScrollDown(1)
			return m, nil
		}
		return m.moveCursor(7)
	case key.Matches(msg, k.Select):
		return m, m.selectDate(false)
	case key.Matches(msg, k.Multi):
		return m, m.selectDate(true)
	case key.Matches(msg, k.All):
		checked, enabled := m.frame.SelectAllState()
		if !enabled {
			return m, nil
		}
		return m, m.run(func(ctx context.Context) error { return ctrl.SetSelectAllVisible(ctx, !checked) })
	case key.Matches(msg, k.Open):
		if len(m.frame.Selected()) > 0 {
			m.modal = true
			m.refresh()
			m.vp.GotoTop()
		}
		return m, nil
	case key.Matches(msg, k.Clear):
		return m, m.run(ctrl.ClearSelection)
	case key.Matches(msg, k.Sort):
		next := domain.SortRecent
		if m.frame.Sort == domain.SortRecent {
			next = domain.SortChronological
		}
		return m, m.run(func(ctx context.Context) error { return ctrl.SetSortOrder(ctx, next) })
	case key.Matches(msg, k.Filters):
		form := m.filtersForm()
		if form == nil {
			m.pushStatus(history.Notice{Level: slog.LevelWarn, Message: "Filter options have not loaded yet."})
			return m, nil
		}
		return m.openForm(form)
	case key.Matches(msg, k.Range):
		return m.openForm(m.rangeForm())
	case key.Matches(msg, k.ClearRange):
		return m, m.run(ctrl.ClearCustomRange)
	case key.Matches(msg, k.Search):
		m.searching = true
		m.search.SetValue(m.frame.Criteria.ProjectKeyword)
		m.search.CursorEnd()
		return m, m.search.Focus()
	case key.Matches(msg, k.Project):
		return m.openForm(m.projectForm())
	case key.Matches(msg, k.PrevPage):
		return m, m.loadPage(-1)
	case key.Matches(msg, k.NextPage):
		return m, m.loadPage(1)
	case key.Matches(msg, k.Options):
		return m.openForm(m.optionsForm())
	case key.Matches(msg, k.ExportXLSX):
		return m, m.export(ctrl.Export)
	case key.Matches(msg, k.ExportICS):
		return m, m.export(ctrl.ExportICS)
	case key.Matches(msg, k.Tooltip):
		on := !m.frame.Tooltip
		return m, m.run(func(ctx context.Context) error { return ctrl.SetTooltipEnabled(ctx, on) })
	case key.Matches(msg, k.Reset):
		m.modal = false
		m.cursor = domain.Date{}
		return m, m.run(ctrl.Reset)
	case key.Matches(msg, k.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.refresh()
		return m, nil
	}
	return m, nil
}

// updateSearch edits the project keyword. Each change queues a debounced
// search; Enter searches right away.
func (m browseModel) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	ctrl := m.ctrl
	switch msg.Type {
	case tea.KeyEsc:
		m.searching = false
		m.search.Blur()
		return m, nil
	case tea.KeyEnter:
		m.searching = false
		m.search.Blur()
		keyword := m.search.Value()
		return m, m.run(func(ctx context.Context) error { return ctrl.SearchProjects(ctx, keyword) })
	}

	before := m.search.Value()
	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	keyword := m.search.Value()
	if keyword == before {
		return m, cmd
	}
	queue := func() tea.Msg {
		ctrl.QueueProjectSearch(keyword)
		return nil
	}
	refresh := tea.Tick(m.debounce+50*time.Millisecond, func(time.Time) tea.Msg { return refreshMsg{} })
	return m, tea.Batch(cmd, queue, refresh)
}

func (m browseModel) openForm(f *browseForm) (tea.Model, tea.Cmd) {
	if f == nil {
		return m, nil
	}
	m.form = f
	return m, f.form.Init()
}

// updateForm forwards msg to the open form and runs its completion.
func (m browseModel) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := m.form.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form.form = f
	}
	switch m.form.form.State {
	case huh.StateCompleted:
		done := m.form.done
		m.form = nil
		m.refresh()
		if done == nil {
			return m, nil
		}
		return m, done()
	case huh.StateAborted:
		m.form = nil
		m.refresh()
		return m, nil
	}
	return m, cmd
}

// loadPage moves the project search by delta pages within its bounds.
func (m browseModel) loadPage(delta int) tea.Cmd {
	p := m.frame.Projects
	page := max(1, p.Page) + delta
	if page < 1 || page > max(1, p.TotalPages) {
		return nil
	}
	ctrl := m.ctrl
	return m.run(func(ctx context.Context) error { return ctrl.LoadProjectPage(ctx, page) })
}

// moveCursor moves the cursor by days. Leaving the visible range shifts
// the view; in the daily view it steps to the adjacent day with history.
func (m browseModel) moveCursor(days int) (tea.Model, tea.Cmd) {
	dir := 1
	if days < 0 {
		dir = -1
	}
	if m.frame.View == domain.ViewDaily {
		return m, m.shift(dir)
	}
	if m.cursor.IsZero() {
		return m, nil
	}
	m.cursor = m.cursor.AddDays(days)
	if m.frame.Range.Contains(m.cursor) {
		m.refresh()
		return m, nil
	}
	return m, m.shift(dir)
}

// scrollsBody reports whether up and down scroll the body instead of
// moving the cursor.
func (m browseModel) scrollsBody() bool {
	return m.frame.View == domain.ViewWeek || m.frame.View == domain.ViewDaily
}

// ── state ───────────────────────────────────────────────────────────────────

func (m *browseModel) applyFrame(msg frameMsg) {
	m.frame = msg.frame
	for _, n := range msg.notices {
		m.pushStatus(n)
	}
	if msg.err != nil && len(msg.notices) == 0 && !errors.Is(msg.err, history.ErrClosed) {
		m.pushStatus(noticeFor(msg.err))
	}

	f := m.frame
	switch {
	case f.View == domain.ViewDaily:
		m.cursor = f.DailyAnchor
		if m.cursor.IsZero() {
			m.cursor = f.Today
		}
	case m.cursor.IsZero() || !f.Range.Contains(m.cursor):
		if f.Range.Contains(f.Today) {
			m.cursor = f.Today
		} else {
			m.cursor = f.Range.Start
		}
	}

	if msg.openModal {
		m.modal = true
	}
	if len(f.Selected()) == 0 {
		m.modal = false
	}
	m.refresh()
	if msg.openModal {
		m.vp.GotoTop()
	}
}

func (m *browseModel) pushStatus(n history.Notice) {
	m.status = append(m.status, n)
	if len(m.status) > maxStatus {
		m.status = m.status[len(m.status)-maxStatus:]
	}
}

// refresh re-renders the body into the viewport and re-targets the
// tooltip at the cursor.
func (m *browseModel) refresh() {
	m.vp.Width = max(m.width, 20)
	m.vp.Height = max(1, m.height-lipgloss.Height(m.renderHeader())-lipgloss.Height(m.renderStatusBar()))
	m.vp.SetContent(m.content())
	m.syncTooltip()
}

func (m *browseModel) syncTooltip() {
	m.tip.SetEnabled(m.frame.Tooltip)
	if m.modal || m.form != nil || m.scrollsBody() {
		m.tip.Hide()
		return
	}
	target := m.cursor.String()
	text := tooltip.DayText(m.frame.Index.Events(target), m.frame.Options, m.frame.Holiday(target))
	if st := m.tip.State(); st.Visible && st.Target == target && st.Text == text {
		return
	}
	m.tip.Hide()
	pointer := m.pointer
	if !m.hasPointer {
		pointer = tooltip.Point{X: 2, Y: 2}
	}
	m.tip.Enter(target, text, pointer)
}

func (m browseModel) renderWidth() int {
	if m.width > 0 {
		return m.width
	}
	return render.DefaultWidth
}

func (m browseModel) content() string {
	if !m.frame.Loaded && m.frame.Index == nil {
		return render.Dim("Loading history...")
	}
	if m.modal {
		dates := m.frame.Selected()
		return render.Modal(dates, selectedEvents(m.frame, dates), m.frame.Options, m.renderWidth())
	}
	opts := render.Options{Width: m.renderWidth()}
	if !m.scrollsBody() {
		opts.Cursor = m.cursor
	}
	return render.View(m.frame, opts)
}

// selectedEvents collects the events of dates in the frame's sort order.
func selectedEvents(f history.Frame, dates []string) []domain.Event {
	var out []domain.Event
	for _, d := range dates {
		out = append(out, f.Index.Events(d)...)
	}
	calendar.SortEvents(f.Sort, out)
	return out
}

// ── rendering ───────────────────────────────────────────────────────────────

func (m browseModel) View() string {
	if m.quitting {
		return ""
	}

	var body string
	switch {
	case m.form != nil:
		body = render.Header(m.form.title) + "\n" + m.form.form.View()
	case m.height > 0:
		body = m.vp.View()
	default:
		body = m.content()
	}

	out := strings.Join([]string{m.renderHeader(), body, m.renderStatusBar()}, "\n")
	if m.form == nil && !m.modal {
		if st := m.tip.State(); st.Visible {
			box := render.TooltipBox(st.Text, tooltipWidth)
			size := tooltip.Size{W: lipgloss.Width(box), H: lipgloss.Height(box)}
			screen := tooltip.Size{W: m.renderWidth(), H: max(m.height, lipgloss.Height(out))}
			pos := tooltip.CellGeometry.Place(st.Pointer, size, screen)
			out = overlay(out, box, pos.X, pos.Y)
		}
	}

	// Pad to the terminal height so the alt-screen renderer leaves no
	// stale lines behind.
	if m.height > 0 {
		if lines := strings.Count(out, "\n") + 1; lines < m.height {
			out += strings.Repeat("\n", m.height-lines)
		}
	}
	return out
}

func (m browseModel) renderHeader() string {
	tabs := make([]string, 0, len(domain.Views))
	for _, v := range domain.Views {
		label := " " + string(v) + " "
		if v == m.frame.View {
			tabs = append(tabs, render.StyleSelected.Render(label))
		} else {
			tabs = append(tabs, render.Dim(label))
		}
	}
	header := render.StylePurple.Render("histcal") + "  " + strings.Join(tabs, "")

	if m.searching {
		header += "  " + m.search.View()
	} else if kw := m.frame.Criteria.ProjectKeyword; kw != "" {
		header += "  " + render.Dim("project: "+kw)
	}
	if m.frame.Custom.Active() {
		header += "  " + render.StyleYellow.Render(m.frame.Custom.From+" ~ "+m.frame.Custom.To)
	}

	sep := render.Dim(strings.Repeat("─", max(m.width, 20)))
	return header + "\n" + sep
}

func (m browseModel) renderStatusBar() string {
	var lines []string
	lines = append(lines, render.Dim(strings.Repeat("─", max(m.width, 20))))
	if n := len(m.status); n > 0 {
		lines = append(lines, noticeStyle(m.status[n-1].Level).Render(m.status[n-1].Message))
	}
	switch {
	case m.form != nil:
		lines = append(lines, render.Dim("enter: next  esc: cancel"))
	case m.modal:
		lines = append(lines, render.Dim("↑↓ pgup/pgdn: scroll  esc: close"))
	default:
		lines = append(lines, m.help.View(m.keys))
	}
	return strings.Join(lines, "\n")
}

func noticeStyle(level slog.Level) lipgloss.Style {
	switch {
	case level >= slog.LevelError:
		return render.StyleRed
	case level >= slog.LevelWarn:
		return render.StyleYellow
	default:
		return render.StyleGreen
	}
}
