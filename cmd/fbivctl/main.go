// Package main contains the entry point of the client CLI application.
//
// The package is responsible for starting the console client and passing
// the version and build date into the CLI layer of the application.
package main

import "github.com/fbivlabs/fbiv-vpn/internal/agent/cli"

var (
	// buildVersion holds the application version passed in at build time.
	// Defaults to "dev".
	buildVersion = "dev"
	// buildDate holds the application build date.
	// Defaults to "unknown".
	buildDate = "unknown"
)

func main() {
	cli.Execute(buildVersion, buildDate)
}
