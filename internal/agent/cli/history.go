package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

// NewHistoryCmd creates the CLI command that shows recent speed tests.
//
// With a saved session token the command shows the account's own
// results; without one it shows the shared anonymous history.
//
// Example:
//
//	fbivctl history
func NewHistoryCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:          "history",
		Short:        "Show recent speed test results",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			c := NewAPIClient(app.ServerURL)
			tests, err := c.SpeedTestHistory(app.Creds.Token)
			if err != nil {
				return err
			}
			if len(tests) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "no speed tests yet")
				return nil
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "WHEN\tDOWNLOAD\tUPLOAD\tPING\tSERVER")
			for _, t := range tests {
				fmt.Fprintf(w, "%s\t%.1f Mbps\t%.1f Mbps\t%d ms\t%s\n",
					t.Timestamp.Format("02.01.2006 15:04"),
					t.DownloadSpeed, t.UploadSpeed, t.Ping, t.Server)
			}
			return w.Flush()
		},
	}
}
