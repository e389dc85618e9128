package cli

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/histcal/internal/domain"
	"github.com/alexanderramin/histcal/internal/render"
)

func newHolidaysCmd(app *App) *cobra.Command {
	var refresh bool
	cmd := &cobra.Command{
		Use:   "holidays <year>",
		Short: "List the public holidays of a year",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			year, err := strconv.Atoi(args[0])
			if err != nil || year < 1 || year > 9999 {
				return fmt.Errorf("invalid year %q", args[0])
			}
			if app.Holidays == nil {
				return errors.New("holiday source unavailable")
			}
			load := app.Holidays.Ensure
			if refresh {
				load = app.Holidays.Refresh
			}
			if err := load(cmd.Context(), year); err != nil {
				return fmt.Errorf("loading holidays for %d: %w", year, err)
			}

			dates := app.Holidays.Dates(year)
			if len(dates) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), render.Dim(fmt.Sprintf("No holidays for %d.", year)))
				return nil
			}
			rows := make([][]string, 0, len(dates))
			for _, date := range dates {
				weekday := ""
				if d, err := domain.ParseDate(date); err == nil {
					weekday = domain.WeekdayName(int(d.Weekday()))
				}
				rows = append(rows, []string{date, weekday, strings.Join(app.Holidays.Names(date), ", ")})
			}
			fmt.Fprint(cmd.OutOrStdout(), render.Table([]string{"Date", "Day", "Holiday"}, rows))
			return nil
		},
	}
	cmd.Flags().BoolVar(&refresh, "refresh", false, "refetch the year and replace the stored copy")
	return cmd
}
