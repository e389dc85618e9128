package cli

import (
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/alexanderramin/histcal/internal/render"
)

// histcalHuhTheme styles huh forms with the renderer palette.
func histcalHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	t.Focused.Title = lipgloss.NewStyle().Foreground(render.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(render.ColorHeader)
	t.Focused.MultiSelectSelector = lipgloss.NewStyle().Foreground(render.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(render.ColorGreen)
	t.Focused.SelectedPrefix = lipgloss.NewStyle().Foreground(render.ColorGreen).SetString("[x] ")
	t.Focused.UnselectedPrefix = lipgloss.NewStyle().Foreground(render.ColorDim).SetString("[ ] ")
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(render.ColorFg)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(render.ColorFg).Background(render.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(render.ColorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(render.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(render.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(render.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(render.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(render.ColorDim)
	t.Focused.ErrorMessage = lipgloss.NewStyle().Foreground(render.ColorRed)

	t.Blurred.Title = lipgloss.NewStyle().Foreground(render.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(render.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(render.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(render.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(render.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(render.ColorDim)

	return t
}
