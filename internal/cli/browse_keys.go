package cli

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
)

// browseKeyMap holds the browser's bindings. It implements help.KeyMap.
type browseKeyMap struct {
	Year   key.Binding
	Month  key.Binding
	Week   key.Binding
	Daily  key.Binding
	Prev   key.Binding
	Next   key.Binding
	Today  key.Binding
	GoTo   key.Binding
	Left   key.Binding
	Right  key.Binding
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Multi  key.Binding
	All    key.Binding
	Open   key.Binding
	Clear  key.Binding
	Sort   key.Binding

	Filters    key.Binding
	Range      key.Binding
	ClearRange key.Binding
	Search     key.Binding
	Project    key.Binding
	PrevPage   key.Binding
	NextPage   key.Binding
	Options    key.Binding
	ExportXLSX key.Binding
	ExportICS  key.Binding
	Tooltip    key.Binding
	Reset      key.Binding
	Help       key.Binding
	Quit       key.Binding
}

func newBrowseKeyMap() browseKeyMap {
	return browseKeyMap{
		Year:   key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "year")),
		Month:  key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "month")),
		Week:   key.NewBinding(key.WithKeys("w"), key.WithHelp("w", "week")),
		Daily:  key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "daily")),
		Prev:   key.NewBinding(key.WithKeys("p", "pgup"), key.WithHelp("p", "previous")),
		Next:   key.NewBinding(key.WithKeys("n", "pgdown"), key.WithHelp("n", "next")),
		Today:  key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "today")),
		GoTo:   key.NewBinding(key.WithKeys("g"), key.WithHelp("g", "go to")),
		Left:   key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←", "day before")),
		Right:  key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→", "day after")),
		Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑", "week before")),
		Down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓", "week after")),
		Select: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "select")),
		Multi:  key.NewBinding(key.WithKeys(" ", "space"), key.WithHelp("space", "add to selection")),
		All:    key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "select all")),
		Open:   key.NewBinding(key.WithKeys("v"), key.WithHelp("v", "show selected")),
		Clear:  key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "clear selection")),
		Sort:   key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "sort")),

		Filters:    key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "filters")),
		Range:      key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "custom range")),
		ClearRange: key.NewBinding(key.WithKeys("C"), key.WithHelp("C", "clear range")),
		Search:     key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search projects")),
		Project:    key.NewBinding(key.WithKeys("P"), key.WithHelp("P", "pick project")),
		PrevPage:   key.NewBinding(key.WithKeys("["), key.WithHelp("[", "previous page")),
		NextPage:   key.NewBinding(key.WithKeys("]"), key.WithHelp("]", "next page")),
		Options:    key.NewBinding(key.WithKeys("o"), key.WithHelp("o", "options")),
		ExportXLSX: key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "export xlsx")),
		ExportICS:  key.NewBinding(key.WithKeys("i"), key.WithHelp("i", "export ics")),
		Tooltip:    key.NewBinding(key.WithKeys("T"), key.WithHelp("T", "tooltips")),
		Reset:      key.NewBinding(key.WithKeys("R"), key.WithHelp("R", "reset")),
		Help:       key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "more keys")),
		Quit:       key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k browseKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Year, k.Month, k.Week, k.Daily, k.Prev, k.Next, k.Select, k.Filters, k.Help, k.Quit}
}

func (k browseKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Year, k.Month, k.Week, k.Daily, k.Prev, k.Next, k.Today, k.GoTo},
		{k.Left, k.Right, k.Up, k.Down, k.Select, k.Multi, k.All, k.Open, k.Clear},
		{k.Sort, k.Filters, k.Range, k.ClearRange, k.Search, k.Project, k.PrevPage, k.NextPage},
		{k.Options, k.ExportXLSX, k.ExportICS, k.Tooltip, k.Reset, k.Help, k.Quit},
	}
}

// modalViewportKeyMap scrolls the selection modal with arrows and pages
// only, leaving letters free to close it.
func modalViewportKeyMap() viewport.KeyMap {
	return viewport.KeyMap{
		PageDown:     key.NewBinding(key.WithKeys("pgdown")),
		PageUp:       key.NewBinding(key.WithKeys("pgup")),
		HalfPageUp:   key.NewBinding(key.WithKeys("ctrl+u")),
		HalfPageDown: key.NewBinding(key.WithKeys("ctrl+d")),
		Up:           key.NewBinding(key.WithKeys("up")),
		Down:         key.NewBinding(key.WithKeys("down")),
	}
}
