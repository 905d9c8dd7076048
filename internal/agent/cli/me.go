package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewMeCmd creates the CLI command that shows the current account.
//
// The command sends the saved session token to the server and prints
// the account it resolves to. Useful for checking whether the token is
// still valid.
//
// Example:
//
//	fbivctl me
func NewMeCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:          "me",
		Short:        "Show the current account",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.Creds == nil || app.Creds.Token == "" {
				return fmt.Errorf("no session token, run: fbivctl login")
			}

			c := NewAPIClient(app.ServerURL)
			user, err := c.Me(app.Creds.Token)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "name=%s\nemail=%s\nsubscription=%s\n",
				user.Name, user.Email, user.Subscription)
			return nil
		},
	}
}
