package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewVersionCmd creates the CLI command that prints build info.
//
// The command prints the application version and the build date passed
// in at compile time. Used to check which client build is installed.
//
// Example:
//
//	fbivctl version
func NewVersionCmd(buildVersion, buildDate string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version and build date",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(
				cmd.OutOrStdout(),
				"version=%s\nbuild_date=%s\n",
				buildVersion,
				buildDate,
			)
		},
	}
}
