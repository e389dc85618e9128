package cli

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/histcal/internal/calendar"
	"github.com/alexanderramin/histcal/internal/domain"
	"github.com/alexanderramin/histcal/internal/export"
	"github.com/alexanderramin/histcal/internal/render"
	"github.com/alexanderramin/histcal/internal/settings"
)

var errUnknownFilter = errors.New("unknown filter values")

func newExportCmd(app *App) *cobra.Command {
	var (
		from, to  dateValue
		format    = formatValue{format: domain.ExportXLSX}
		criteria  calendar.Criteria
		projectID string
		outDir    string
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export every history event in a date range",
		Long: "Loads the history between --from and --to with the given filters,\n" +
			"selects every day that has events and writes them to one file.\n" +
			"Saved browser settings are neither read nor changed.",
		RunE: func(cmd *cobra.Command, args []string) error {
			custom := calendar.CustomRange{From: from.String(), To: to.String()}
			if _, err := custom.Resolve(); err != nil {
				return err
			}
			if outDir == "" {
				outDir = app.Config.ExportDir
			}

			// A one-off snapshot restores straight into the week view over
			// the requested range, so the first load is the only one.
			store := &settings.MemoryStore{}
			snap := settings.Snapshot{
				View:      string(domain.ViewWeek),
				Filters:   settings.FiltersFrom(criteria.Normalize()),
				WeekRange: custom,
			}
			if err := store.Save(cmd.Context(), snap); err != nil {
				return err
			}

			ctrl := app.NewController(store, outDir)
			defer ctrl.Close()

			ctx := cmd.Context()
			if err := ctrl.Start(ctx); err != nil {
				return fmt.Errorf("loading history: %w", err)
			}
			if unknown := criteria.Normalize().Unknown(ctrl.Frame().Options); len(unknown) > 0 {
				return fmt.Errorf("%w: %s", errUnknownFilter, strings.Join(unknown, ", "))
			}
			if projectID != "" {
				if err := ctrl.SelectProject(ctx, projectID); err != nil {
					return fmt.Errorf("loading project history: %w", err)
				}
			}
			if err := ctrl.SetSelectAllVisible(ctx, true); err != nil {
				return err
			}

			write := ctrl.Export
			if format.format == domain.ExportICS {
				write = ctrl.ExportICS
			}
			res, err := write(ctx)
			if errors.Is(err, export.ErrEmptySelection) {
				fmt.Fprintf(cmd.OutOrStdout(), "No history between %s and %s; nothing exported.\n", custom.From, custom.To)
				return nil
			}
			if err != nil {
				return fmt.Errorf("exporting: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Exported %d rows to %s\n", res.Rows, res.Path)
			return nil
		},
	}

	f := cmd.Flags()
	f.Var(&from, "from", "first day of the range (YYYY-MM-DD)")
	f.Var(&to, "to", "last day of the range (YYYY-MM-DD)")
	f.Var(&format, "format", "output format: xlsx or ics")
	f.StringSliceVar(&criteria.Fields, "field", nil, "field codes to include")
	f.StringSliceVar(&criteria.Services, "service", nil, "service codes to include")
	f.StringSliceVar(&criteria.ActivityTypes, "activity", nil, "activity types to include")
	f.StringSliceVar(&criteria.Managers, "manager", nil, "manager ids to include")
	f.StringSliceVar(&criteria.Orgs, "org", nil, "org ids to include")
	f.StringVar(&projectID, "project", "", "pipeline id of a single project")
	f.StringVar(&outDir, "out", "", "output directory (default from HISTCAL_EXPORT_DIR)")
	_ = cmd.MarkFlagRequired("from")
	_ = cmd.MarkFlagRequired("to")

	return cmd
}

func newExportsCmd(app *App) *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "exports",
		Short: "List recently written export files",
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.ExportLog == nil {
				return errors.New("export log unavailable")
			}
			records, err := app.ExportLog.ListRecent(cmd.Context(), limit)
			if err != nil {
				return fmt.Errorf("listing exports: %w", err)
			}
			if len(records) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), render.Dim("No exports yet."))
				return nil
			}
			rows := make([][]string, 0, len(records))
			for _, r := range records {
				rows = append(rows, []string{
					r.CreatedAt.Local().Format("2006-01-02 15:04"),
					string(r.Format),
					r.DateFrom + " ~ " + r.DateTo,
					strconv.Itoa(r.Rows),
					r.Path,
				})
			}
			fmt.Fprint(cmd.OutOrStdout(), render.Table([]string{"Written", "Format", "Range", "Rows", "Path"}, rows))
			return nil
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 10, "number of exports to list")
	return cmd
}
