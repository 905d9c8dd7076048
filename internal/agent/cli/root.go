// Package cli implements the command-line interface of the FBIV VPN client.
//
// The package is responsible for:
//   - defining the root command and the set of subcommands;
//   - parsing command-line arguments and flags;
//   - loading the local state (session token, theme) from the config file;
//   - running the commands and printing the result to the user.
//
// The package entry point is the Execute function.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/fbivlabs/fbiv-vpn/internal/agent/config"
)

// App holds the CLI application state shared between commands.
//
// The struct carries the server connection parameters and the loaded
// local state. An App instance is created when the root command is
// built and passed into the subcommands.
type App struct {
	// ServerURL is the base URL of the FBIV VPN API server
	// (e.g. "http://localhost:5000").
	ServerURL string

	// CredsPath is the path of the file with the saved local state
	// (session token, theme preference).
	CredsPath string
	// Creds is the local state loaded from the config file.
	// May be nil when loading was not performed or failed.
	Creds *config.Credentials
}

// NewRootCmd creates the CLI root command and registers the subcommands.
//
// buildVersion and buildDate feed the build info output (version
// command). PersistentPreRunE initializes the application state: it
// resolves the state file path and loads the saved token and theme.
func NewRootCmd(buildVersion, buildDate string) *cobra.Command {
	app := &App{
		ServerURL: "http://localhost:5000",
	}

	cmd := &cobra.Command{
		Use:   "fbivctl",
		Short: "FBIV VPN CLI: account, servers and connection control",
		Long: `FBIV VPN CLI.

Commands:
  register    Create a new account
  login       Log in (obtain a session token)
  me          Show the current account
  servers     List available VPN servers
  connect     Connect to a server
  disconnect  End the current connection
  status      Show the connection status
  speedtest   Run a speed test and submit the result
  history     Show recent speed test results
  stats       Show global network statistics
  theme       Get or set the UI theme
  version     Show version and build date

Examples:

Register:
  fbivctl register --name "Ana" --email ana@example.com --password StrongPass123

Login:
  fbivctl login --email ana@example.com
  (prompts for the password and saves the session token locally)

Connect:
  fbivctl connect --server 1
`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			p, err := config.DefaultPath()
			if err != nil {
				return err
			}
			app.CredsPath = p

			creds, err := config.Load(app.CredsPath)
			if err != nil {
				return err
			}
			app.Creds = creds
			return nil
		},
	}

	cmd.SetOut(os.Stdout)
	cmd.SetErr(os.Stderr)

	cmd.PersistentFlags().StringVar(&app.ServerURL, "server-url", "http://localhost:5000", "API server base URL")

	cmd.AddCommand(NewRegisterCmd(app))
	cmd.AddCommand(NewLoginCmd(app))
	cmd.AddCommand(NewMeCmd(app))
	cmd.AddCommand(NewServersCmd(app))
	cmd.AddCommand(NewConnectCmd(app))
	cmd.AddCommand(NewDisconnectCmd(app))
	cmd.AddCommand(NewStatusCmd(app))
	cmd.AddCommand(NewSpeedTestCmd(app))
	cmd.AddCommand(NewHistoryCmd(app))
	cmd.AddCommand(NewStatsCmd(app))
	cmd.AddCommand(NewThemeCmd(app))
	cmd.AddCommand(NewVersionCmd(buildVersion, buildDate))

	return cmd
}

// Execute runs the CLI command processing.
//
// On a command error the message is printed to stderr and the process
// exits with code 1 (os.Exit(1)).
func Execute(buildVersion, buildDate string) {
	if err := NewRootCmd(buildVersion, buildDate).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
