package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fbivlabs/fbiv-vpn/internal/agent/config"
)

// NewDisconnectCmd creates the CLI command that ends the current
// connection.
//
// The command tells the server to close the session and clears the
// recorded connection from the local config file. Running it while
// already disconnected succeeds without a server call.
//
// Example:
//
//	fbivctl disconnect
func NewDisconnectCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:          "disconnect",
		Short:        "End the current connection",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !app.Creds.Connected() {
				fmt.Fprintln(cmd.OutOrStdout(), "not connected")
				return nil
			}

			c := NewAPIClient(app.ServerURL)
			resp, err := c.Disconnect(app.Creds.Token)
			if err != nil {
				return err
			}

			app.Creds.ClearConnection()
			if err := config.Save(app.CredsPath, app.Creds); err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), resp.Message)
			return nil
		},
	}
}
