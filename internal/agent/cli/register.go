package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fbivlabs/fbiv-vpn/internal/agent/config"
)

// NewRegisterCmd creates the CLI command for account registration.
//
// The command creates a new account on the FBIV VPN server, receives a
// session token and saves it in the local config file, so the new user
// is logged in right away.
//
// The --name and --email flags are required. The password is prompted
// interactively with hidden input by default; --password-stdin reads
// it from STDIN for scripts.
//
// Example:
//
//	fbivctl register --name "Ana" --email ana@example.com
func NewRegisterCmd(app *App) *cobra.Command {
	var (
		name              string
		email             string
		passwordFromStdin bool
	)

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create a new account (and log in)",
		Long: `Creates a new account on the server.

The password is prompted interactively (hidden input).
For scripts: --password-stdin reads the password from STDIN.

Example:
  fbivctl register --name "Ana" --email ana@example.com
`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			password, err := ReadPassword(cmd, passwordFromStdin)
			if err != nil {
				return err
			}

			c := NewAPIClient(app.ServerURL)
			resp, err := c.Register(name, email, password)
			if err != nil {
				return err
			}

			// keep the session token in the application state
			app.Creds.Token = resp.Token
			app.Creds.Name = resp.User.Name
			app.Creds.Email = resp.User.Email

			// persist the token in the local config file
			if err := config.Save(app.CredsPath, app.Creds); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "registered %s (token saved)\n", resp.User.Email)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "display name for the new account")
	cmd.Flags().StringVar(&email, "email", "", "email for the new account")
	cmd.Flags().BoolVar(&passwordFromStdin, "password-stdin", false, "read the password from STDIN")
	cmd.MarkFlagRequired("name")
	cmd.MarkFlagRequired("email")

	return cmd
}
