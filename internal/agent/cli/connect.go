package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/fbivlabs/fbiv-vpn/internal/agent/config"
	"github.com/fbivlabs/fbiv-vpn/internal/shared/models"
	"github.com/fbivlabs/fbiv-vpn/internal/shared/utils"
)

// NewConnectCmd creates the CLI command that connects to a server.
//
// The command resolves the server by ID from the server list, runs the
// connection handshake and records the active connection in the local
// config file, so status/disconnect work in later invocations.
//
// Pressing Ctrl-C during the handshake aborts the attempt and leaves
// the client disconnected. Works without a session token; with one the
// connection counts toward the account's usage history.
//
// Example:
//
//	fbivctl connect --server 1
func NewConnectCmd(app *App) *cobra.Command {
	var serverID int64

	cmd := &cobra.Command{
		Use:   "connect",
		Short: "Connect to a VPN server",
		Long: `Connects to a VPN server.

Pick a server ID from "fbivctl servers". Ctrl-C during the handshake
cancels the attempt.

Example:
  fbivctl connect --server 1
`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.Creds.Connected() {
				return fmt.Errorf("already connected to %s, run: fbivctl disconnect", app.Creds.ConnectedServerName)
			}

			c := NewAPIClient(app.ServerURL)
			servers, err := c.Servers()
			if err != nil {
				return err
			}
			var target *models.Server
			for i := range servers {
				if servers[i].ID == serverID {
					target = &servers[i]
					break
				}
			}
			if target == nil {
				return fmt.Errorf("unknown server %d, run: fbivctl servers", serverID)
			}

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			m := NewMachine(c, app.Creds.Token)
			fmt.Fprintf(cmd.OutOrStdout(), "connecting to %s...\n", target.Name)
			resp, err := m.Connect(ctx, target)
			if err != nil {
				if ctx.Err() != nil {
					fmt.Fprintln(cmd.OutOrStdout(), "connection cancelled")
					return nil
				}
				return err
			}

			// record the connection so later invocations see it
			app.Creds.ConnectedServerID = target.ID
			app.Creds.ConnectedServerName = target.Name
			app.Creds.ConnectedAt = utils.Ptr(time.Now().UTC())
			if err := config.Save(app.CredsPath, app.Creds); err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), resp.Message)
			return nil
		},
	}

	cmd.Flags().Int64Var(&serverID, "server", 0, "server ID to connect to")
	cmd.MarkFlagRequired("server")

	return cmd
}
