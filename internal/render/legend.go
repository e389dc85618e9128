package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/samber/lo"

	"github.com/alexanderramin/histcal/internal/domain"
)

// maxLegendColors caps the stage and combination swatches.
const maxLegendColors = 4

// Legend holds the swatches explaining the calendar markers.
type Legend struct {
	Stages     []lipgloss.Color
	Combos     []lipgloss.Color
	Activities []domain.Option
}

// BuildLegend collects up to four distinct stage and combination colors in
// event order, falling back to a neutral swatch, plus one chip per activity
// type. Activity chips come from the option list when it is loaded.
func BuildLegend(events []domain.Event, opts domain.FilterOptions) Legend {
	stages := lo.Uniq(lo.Map(events, func(e domain.Event, _ int) lipgloss.Color {
		return StageColor(e.ProgressStage)
	}))
	combos := lo.Uniq(lo.Map(events, func(e domain.Event, _ int) lipgloss.Color {
		return ComboColor(e)
	}))

	legend := Legend{
		Stages: capColors(stages),
		Combos: capColors(combos),
	}
	if len(opts.ActivityTypes) > 0 {
		legend.Activities = opts.ActivityTypes
	} else {
		legend.Activities = lo.Map(ActivityCodes(), func(code string, _ int) domain.Option {
			return domain.Option{Value: code, Label: code}
		})
	}
	return legend
}

func capColors(colors []lipgloss.Color) []lipgloss.Color {
	if len(colors) == 0 {
		return []lipgloss.Color{ColorMuted}
	}
	return colors[:min(len(colors), maxLegendColors)]
}

// Render draws the legend as three labelled rows.
func (l Legend) Render() string {
	dots := func(colors []lipgloss.Color) string {
		return strings.Join(lo.Map(colors, func(c lipgloss.Color, _ int) string { return Dot(c) }), "")
	}
	chips := lo.Map(l.Activities, func(o domain.Option, _ int) string {
		return Chip(ActivityColor(o.Value), domain.CoalesceStr(o.Label, o.Value))
	})
	return strings.Join([]string{
		Dim("stage    ") + dots(l.Stages),
		Dim("combo    ") + dots(l.Combos),
		Dim("activity ") + strings.Join(chips, "  "),
	}, "\n")
}
