package tests

import (
	"bytes"
	"strings"
	"testing"

	"github.com/fbivlabs/fbiv-vpn/internal/agent/cli"
	"github.com/fbivlabs/fbiv-vpn/internal/agent/config"
)

func TestNewThemeCmd_NoArgs_PrintsCurrentTheme(t *testing.T) {
	app := newTestApp(t, "http://127.0.0.1:1")

	cmd := cli.NewThemeCmd(app)

	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)

	if err := cmd.Execute(); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if got := strings.TrimSpace(out.String()); got != "light" {
		t.Fatalf("expected light, got %q", got)
	}
}

func TestNewThemeCmd_SetDark_Persists(t *testing.T) {
	app := newTestApp(t, "http://127.0.0.1:1")

	cmd := cli.NewThemeCmd(app)

	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs([]string{"dark"})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if got := out.String(); !strings.Contains(got, "theme set to dark") {
		t.Fatalf("unexpected output: %q", got)
	}

	loaded, err := config.Load(app.CredsPath)
	if err != nil {
		t.Fatalf("load creds: %v", err)
	}
	if loaded.Theme != config.ThemeDark {
		t.Fatalf("expected theme dark, got %q", loaded.Theme)
	}
}

func TestNewThemeCmd_UnknownTheme_ReturnsError(t *testing.T) {
	app := newTestApp(t, "http://127.0.0.1:1")

	cmd := cli.NewThemeCmd(app)
	cmd.SetOut(new(bytes.Buffer))
	cmd.SetErr(new(bytes.Buffer))
	cmd.SetArgs([]string{"solarized"})

	err := cmd.Execute()
	if err == nil {
		t.Fatalf("expected error, got nil")
	}
	if !strings.Contains(err.Error(), "unknown theme") {
		t.Fatalf("unexpected error: %v", err)
	}
}
