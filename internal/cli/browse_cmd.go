package cli

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

func newBrowseCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "browse",
		Short: "Open the interactive history calendar",
		Long: "Opens the calendar in the terminal. The view, filters, project and\n" +
			"options are saved as you change them and restored on the next start.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBrowse(cmd, app)
		},
	}
}

func runBrowse(cmd *cobra.Command, app *App) error {
	ctrl := app.NewController(app.Store, app.Config.ExportDir)
	defer ctrl.Close()

	model := newBrowseModel(ctrl, app.Config.SearchDebounce)
	if app.RunProgram != nil {
		return app.RunProgram(model)
	}

	p := tea.NewProgram(model,
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
		tea.WithContext(cmd.Context()),
		tea.WithInput(cmd.InOrStdin()),
		tea.WithOutput(cmd.OutOrStdout()),
	)
	_, err := p.Run()
	return err
}
