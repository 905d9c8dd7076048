package tests

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/fbivlabs/fbiv-vpn/internal/agent/cli"
	"github.com/fbivlabs/fbiv-vpn/internal/agent/config"
	sm "github.com/fbivlabs/fbiv-vpn/internal/shared/models"
)

func TestNewDisconnectCmd_Connected_ClearsRecordedConnection(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/disconnect", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Fatalf("expected POST, got %s", r.Method)
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(sm.DisconnectResponse{Success: true, Message: "Disconnected from VPN"})
	})

	srv := httptest.NewServer(mux)
	defer srv.Close()

	app := newTestApp(t, srv.URL)
	at := time.Now().UTC()
	app.Creds.ConnectedServerID = 2
	app.Creds.ConnectedServerName = "FBIV-AMS-01"
	app.Creds.ConnectedAt = &at

	cmd := cli.NewDisconnectCmd(app)

	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)

	if err := cmd.Execute(); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}

	if got := out.String(); !strings.Contains(got, "Disconnected from VPN") {
		t.Fatalf("unexpected output: %q", got)
	}

	loaded, err := config.Load(app.CredsPath)
	if err != nil {
		t.Fatalf("load creds: %v", err)
	}
	if loaded.Connected() {
		t.Fatalf("expected recorded connection cleared, got %+v", *loaded)
	}
}

func TestNewDisconnectCmd_NotConnected_NoServerCall(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/disconnect", func(w http.ResponseWriter, r *http.Request) {
		t.Fatalf("unexpected server call")
	})

	srv := httptest.NewServer(mux)
	defer srv.Close()

	app := newTestApp(t, srv.URL)

	cmd := cli.NewDisconnectCmd(app)

	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)

	if err := cmd.Execute(); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if got := out.String(); !strings.Contains(got, "not connected") {
		t.Fatalf("unexpected output: %q", got)
	}
}
