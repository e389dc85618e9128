package cli

import (
	"context"
	"log/slog"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/alexanderramin/histcal/internal/api"
	"github.com/alexanderramin/histcal/internal/config"
	"github.com/alexanderramin/histcal/internal/export"
	"github.com/alexanderramin/histcal/internal/history"
	"github.com/alexanderramin/histcal/internal/repository"
	"github.com/alexanderramin/histcal/internal/settings"
)

// HolidayCalendar is the holiday overlay plus the year listing used by the
// holidays command.
type HolidayCalendar interface {
	history.HolidayOverlay
	Ensure(ctx context.Context, year int) error
	Refresh(ctx context.Context, year int) error
	Dates(year int) []string
	Names(date string) []string
}

// App holds the collaborators every command needs.
type App struct {
	Config    config.Config
	Logger    *slog.Logger
	Source    api.Source
	Holidays  HolidayCalendar
	Store     settings.Store
	ExportLog repository.ExportLogRepo
	Now       func() time.Time

	// IsInteractive reports whether stdin is a terminal.
	IsInteractive func() bool
	// RunProgram runs the browser model. Nil uses a full-screen tea.Program.
	RunProgram func(m tea.Model) error
}

// NewController builds a history controller over store.
func (a *App) NewController(store settings.Store, exportDir string) *history.Controller {
	exporter := export.NewService(exportDir, a.ExportLog, a.Logger)
	exporter.Now = a.Now
	deps := history.Deps{
		Source:   a.Source,
		Store:    store,
		Exporter: exporter,
		Logger:   a.Logger,
		Observer: history.NewLogOperationObserver(a.Logger),
		Now:      a.Now,
	}
	if a.Holidays != nil {
		deps.Holidays = a.Holidays
	}
	return history.New(deps, a.Config.History())
}

func (a *App) logger() *slog.Logger {
	if a.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return a.Logger
}

// NewRootCmd creates the top-level "histcal" command. Without a
// subcommand it opens the browser on a terminal and prints help otherwise.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "histcal",
		Short:         "Sales-activity history calendar browser",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.IsInteractive != nil && app.IsInteractive() {
				return runBrowse(cmd, app)
			}
			return cmd.Help()
		},
	}

	root.AddCommand(
		newBrowseCmd(app),
		newExportCmd(app),
		newExportsCmd(app),
		newSettingsCmd(app),
		newHolidaysCmd(app),
	)

	return root
}
