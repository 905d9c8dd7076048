package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

// NewStatsCmd creates the CLI command that shows global network
// statistics: total user/server/country counters and the five fastest
// servers. The endpoint is public.
//
// Example:
//
//	fbivctl stats
func NewStatsCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:          "stats",
		Short:        "Show global network statistics",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			c := NewAPIClient(app.ServerURL)
			stats, err := c.Stats()
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "users: %d\nservers: %d\ncountries: %d\n\ntop servers:\n",
				stats.TotalUsers, stats.TotalServers, stats.TotalCountries)

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			for _, s := range stats.TopServers {
				fmt.Fprintf(w, "%s %s\t%dms\t%d%% load\n", s.Flag, s.Location, s.Ping, s.Load)
			}
			return w.Flush()
		},
	}
}
