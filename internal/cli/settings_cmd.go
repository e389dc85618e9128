package cli

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/histcal/internal/render"
)

func newSettingsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Inspect or reset the saved browser settings",
	}
	cmd.AddCommand(newSettingsShowCmd(app), newSettingsResetCmd(app))
	return cmd
}

func newSettingsShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the saved view settings as JSON",
		RunE: func(cmd *cobra.Command, args []string) error {
			snap, ok := app.Store.Load(cmd.Context())
			if !ok {
				fmt.Fprintln(cmd.OutOrStdout(), render.Dim("No saved settings."))
				return nil
			}
			raw, err := snap.Encode()
			if err != nil {
				return err
			}
			var pretty bytes.Buffer
			if err := json.Indent(&pretty, []byte(raw), "", "  "); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), pretty.String())
			return nil
		},
	}
}

func newSettingsResetCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Delete the saved view settings",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Store.Clear(cmd.Context()); err != nil {
				return fmt.Errorf("clearing settings: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Saved settings cleared.")
			return nil
		},
	}
}
