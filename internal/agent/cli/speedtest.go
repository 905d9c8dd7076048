package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/fbivlabs/fbiv-vpn/internal/agent/vpn"
)

// NewSpeedTestCmd creates the CLI command that runs a speed test.
//
// The command measures ping, download and upload in three phases,
// prints the result and submits it to the server. Ctrl-C aborts the
// test between phases; an aborted test is not submitted.
//
// The result is labeled with the currently connected server, or
// "Not connected" when there is no active connection. With a session
// token the result lands in the account's history.
//
// Example:
//
//	fbivctl speedtest
func NewSpeedTestCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:          "speedtest",
		Short:        "Run a speed test and submit the result",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			label := "Not connected"
			if app.Creds.ConnectedServerName != "" {
				label = app.Creds.ConnectedServerName
			}

			t := NewSpeedTest()
			t.Progress = func(p vpn.SpeedPhase) {
				if p != vpn.PhaseDone {
					fmt.Fprintf(cmd.OutOrStdout(), "measuring %s...\n", p)
				}
			}

			req, err := t.Run(ctx, label)
			if err != nil {
				if ctx.Err() != nil {
					fmt.Fprintln(cmd.OutOrStdout(), "speed test cancelled")
					return nil
				}
				return err
			}

			c := NewAPIClient(app.ServerURL)
			res, err := c.SubmitSpeedTest(req, app.Creds.Token)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(),
				"download: %.1f Mbps\nupload: %.1f Mbps\nping: %d ms (jitter %.1f ms)\nserver: %s\n",
				res.DownloadSpeed, res.UploadSpeed, res.Ping, res.Jitter, res.Server)
			return nil
		},
	}
}
