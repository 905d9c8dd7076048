package cli

import (
	"github.com/spf13/cobra"

	"github.com/fbivlabs/fbiv-vpn/internal/agent/api"
	"github.com/fbivlabs/fbiv-vpn/internal/agent/vpn"
)

// for tests
var (
	NewAPIClient = api.NewClient
	NewMachine   = vpn.NewMachine
	NewSpeedTest = vpn.NewSpeedTester
	ReadPassword = func(cmd *cobra.Command, fromStdin bool) (string, error) {
		return readPassword(cmd, fromStdin)
	}
)
