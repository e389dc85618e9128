package render

import (
	"slices"
	"unicode/utf16"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexanderramin/histcal/internal/domain"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
	ColorMuted  = lipgloss.Color("#94a3b8")
)

// Predefined lipgloss styles.
var (
	StyleGreen    = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow   = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed      = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue     = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple   = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim      = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg       = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader   = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold     = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
	StyleSelected = lipgloss.NewStyle().Reverse(true)
	StyleCursor   = lipgloss.NewStyle().Foreground(ColorYellow).Reverse(true)
)

// ActivityColors maps activity-type codes to chip colors.
var ActivityColors = map[string]lipgloss.Color{
	"MEETING":              lipgloss.Color("#2563eb"),
	"PROPOSAL":             lipgloss.Color("#7c3aed"),
	"CONTRACT":             lipgloss.Color("#16a34a"),
	"FOLLOWUP":             lipgloss.Color("#f59e0b"),
	"SUPPORT":              lipgloss.Color("#0ea5e9"),
	"ETC":                  lipgloss.Color("#94a3b8"),
	domain.UnknownActivity: lipgloss.Color("#cbd5f5"),
}

// ActivityColor returns the chip color of an activity type.
func ActivityColor(code string) lipgloss.Color {
	if c, ok := ActivityColors[code]; ok {
		return c
	}
	return ActivityColors[domain.UnknownActivity]
}

var activityOrder = []string{"MEETING", "PROPOSAL", "CONTRACT", "FOLLOWUP", "SUPPORT", "ETC", domain.UnknownActivity}

// ActivityCodes returns the activity types with a fixed color in legend order.
func ActivityCodes() []string {
	return slices.Clone(activityOrder)
}

// StageColors maps progress-stage codes to colors.
var StageColors = map[string]lipgloss.Color{
	"S01": lipgloss.Color("#3498db"),
	"S02": lipgloss.Color("#9b59b6"),
	"S03": lipgloss.Color("#f39c12"),
	"S04": lipgloss.Color("#e67e22"),
	"S05": lipgloss.Color("#e74c3c"),
	"S06": lipgloss.Color("#c0392b"),
	"S07": lipgloss.Color("#27ae60"),
	"S08": lipgloss.Color("#2ecc71"),
	"S09": lipgloss.Color("#95a5a6"),
}

// DefaultStageColor is used for unknown stages.
var DefaultStageColor = lipgloss.Color("#95a5a6")

func StageColor(code string) lipgloss.Color {
	if c, ok := StageColors[code]; ok {
		return c
	}
	return DefaultStageColor
}

// ComboPalette is the color set for field/service/manager/org combinations.
var ComboPalette = []lipgloss.Color{
	"#0ea5e9", "#22c55e", "#f97316", "#6366f1", "#14b8a6",
	"#e11d48", "#a855f7", "#facc15", "#64748b", "#06b6d4",
}

// ComboKey identifies an event's field/service/manager/org combination.
func ComboKey(e domain.Event) string {
	return e.FieldCode + "|" + e.ServiceCode + "|" + e.ManagerID + "|" + string(e.OrgID)
}

// ComboColor picks a stable palette color for the event's combination.
func ComboColor(e domain.Event) lipgloss.Color {
	return ComboPalette[ComboIndex(ComboKey(e))]
}

// ComboIndex hashes s over its UTF-16 code units with the 32-bit rolling
// hash h = h*31 + unit and returns |h| mod the palette size. Colors stay
// the same across sessions and clients that use the same hash.
func ComboIndex(s string) int {
	if s == "" {
		s = "default"
	}
	var h int32
	for _, unit := range utf16.Encode([]rune(s)) {
		h = (h << 5) - h + int32(unit)
	}
	n := int64(h)
	if n < 0 {
		n = -n
	}
	return int(n % int64(len(ComboPalette)))
}
