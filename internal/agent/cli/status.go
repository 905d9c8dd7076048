package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

// NewStatusCmd creates the CLI command that shows the connection
// status.
//
// The command reads the recorded connection from the local config file
// and prints the server name plus the elapsed session time. When no
// connection is recorded it prints "disconnected".
//
// Example:
//
//	fbivctl status
func NewStatusCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:          "status",
		Short:        "Show the connection status",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !app.Creds.Connected() {
				fmt.Fprintln(cmd.OutOrStdout(), "disconnected")
				return nil
			}

			elapsed := time.Duration(0)
			if app.Creds.ConnectedAt != nil {
				elapsed = time.Since(*app.Creds.ConnectedAt).Round(time.Second)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "connected to %s (server %d)\nelapsed: %s\n",
				app.Creds.ConnectedServerName, app.Creds.ConnectedServerID, elapsed)
			return nil
		},
	}
}
