package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fbivlabs/fbiv-vpn/internal/agent/config"
)

// NewThemeCmd creates the CLI command for the UI theme preference.
//
// Without arguments the command prints the current theme. With an
// argument ("light" or "dark") it stores the new preference in the
// local config file.
//
// Examples:
//
//	fbivctl theme
//	fbivctl theme dark
func NewThemeCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:          "theme [light|dark]",
		Short:        "Get or set the UI theme",
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), app.Creds.Theme)
				return nil
			}

			theme := args[0]
			if theme != config.ThemeLight && theme != config.ThemeDark {
				return fmt.Errorf("unknown theme %q (want light or dark)", theme)
			}

			app.Creds.Theme = theme
			if err := config.Save(app.CredsPath, app.Creds); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "theme set to %s\n", theme)
			return nil
		},
	}
}
