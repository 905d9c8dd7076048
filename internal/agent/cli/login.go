package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fbivlabs/fbiv-vpn/internal/agent/config"
)

// NewLoginCmd creates the CLI command for logging in.
//
// The command authenticates against the FBIV VPN server, receives a
// session token and saves it in the local config file.
//
// The --email flag is required. The password is prompted interactively
// with hidden input by default, so it does not leak into shell
// history; --password-stdin reads it from STDIN for scripts.
//
// Example:
//
//	fbivctl login --email ana@example.com
func NewLoginCmd(app *App) *cobra.Command {
	var (
		email             string
		passwordFromStdin bool
	)

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in (obtain a session token)",
		Long: `Logs in to the server.

The password is prompted interactively (hidden input).
For scripts: --password-stdin reads the password from STDIN.

Example:
  fbivctl login --email ana@example.com
`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			password, err := ReadPassword(cmd, passwordFromStdin)
			if err != nil {
				return err
			}

			c := NewAPIClient(app.ServerURL)
			resp, err := c.Login(email, password)
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

			fmt.Fprintln(cmd.OutOrStdout(), "login ok (token saved)")
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "email for login")
	cmd.Flags().BoolVar(&passwordFromStdin, "password-stdin", false, "read the password from STDIN")
	cmd.MarkFlagRequired("email")

	return cmd
}
