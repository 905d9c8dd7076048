package tests

import (
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"

	"github.com/fbivlabs/fbiv-vpn/internal/agent/cli"
	"github.com/fbivlabs/fbiv-vpn/internal/agent/config"
)

// newTestApp builds an App with a temp creds path, bypassing the root
// command's PersistentPreRunE.
func newTestApp(t *testing.T, serverURL string) *cli.App {
	t.Helper()

	return &cli.App{
		ServerURL: serverURL,
		CredsPath: filepath.Join(t.TempDir(), "creds.json"),
		Creds:     &config.Credentials{Theme: config.ThemeLight},
	}
}

// stubPassword makes ReadPassword return a fixed value for the test.
func stubPassword(t *testing.T, password string) {
	t.Helper()

	orig := cli.ReadPassword
	cli.ReadPassword = func(cmd *cobra.Command, fromStdin bool) (string, error) {
		return password, nil
	}
	t.Cleanup(func() { cli.ReadPassword = orig })
}
