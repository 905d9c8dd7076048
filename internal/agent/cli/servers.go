package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

// NewServersCmd creates the CLI command that lists available servers.
//
// The command fetches the server list from the API and prints it as a
// table: ID, location, country, current load, ping and whether the
// server requires a paid plan. The endpoint is public, no session
// token needed.
//
// Example:
//
//	fbivctl servers
func NewServersCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:          "servers",
		Short:        "List available VPN servers",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			c := NewAPIClient(app.ServerURL)
			servers, err := c.Servers()
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tLOCATION\tCOUNTRY\tLOAD\tPING\tPLAN")
			for _, s := range servers {
				plan := "free"
				if s.Premium {
					plan = "premium"
				}
				fmt.Fprintf(w, "%d\t%s\t%s\t%d%%\t%dms\t%s\n",
					s.ID, s.Location, s.Country, s.Load, s.Ping, plan)
			}
			return w.Flush()
		},
	}
}
