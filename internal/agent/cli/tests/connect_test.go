package tests

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/fbivlabs/fbiv-vpn/internal/agent/cli"
	"github.com/fbivlabs/fbiv-vpn/internal/agent/config"
	sm "github.com/fbivlabs/fbiv-vpn/internal/shared/models"
)

func newConnectServer(t *testing.T) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("/api/servers", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode([]sm.Server{
			{ID: 1, Name: "FBIV-NY-01", Location: "New York", Country: "USA"},
			{ID: 2, Name: "FBIV-AMS-01", Location: "Amsterdam", Country: "Netherlands"},
		})
	})
	mux.HandleFunc("/api/connect", func(w http.ResponseWriter, r *http.Request) {
		var req sm.ConnectRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		if req.ServerID != 2 {
			t.Fatalf("expected server 2, got %d", req.ServerID)
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(sm.ConnectResponse{
			Success: true,
			Message: "Connected to Amsterdam",
			Server:  sm.Server{ID: 2, Location: "Amsterdam"},
		})
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestNewConnectCmd_Success_RecordsConnection(t *testing.T) {
	srv := newConnectServer(t)
	app := newTestApp(t, srv.URL)

	cmd := cli.NewConnectCmd(app)

	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs([]string{"--server", "2"})

	// the handshake delay makes this test take a couple of seconds
	if err := cmd.Execute(); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}

	got := out.String()
	if !strings.Contains(got, "connecting to FBIV-AMS-01") {
		t.Fatalf("unexpected output: %q", got)
	}
	if !strings.Contains(got, "Connected to Amsterdam") {
		t.Fatalf("unexpected output: %q", got)
	}

	loaded, err := config.Load(app.CredsPath)
	if err != nil {
		t.Fatalf("load creds: %v", err)
	}
	if !loaded.Connected() || loaded.ConnectedServerID != 2 {
		t.Fatalf("expected recorded connection to server 2, got %+v", *loaded)
	}
	if loaded.ConnectedServerName != "FBIV-AMS-01" || loaded.ConnectedAt == nil {
		t.Fatalf("expected server name and timestamp recorded, got %+v", *loaded)
	}
}

func TestNewConnectCmd_AlreadyConnected_ReturnsError(t *testing.T) {
	app := newTestApp(t, "http://127.0.0.1:1")
	app.Creds.ConnectedServerID = 1
	app.Creds.ConnectedServerName = "FBIV-NY-01"

	cmd := cli.NewConnectCmd(app)
	cmd.SetOut(new(bytes.Buffer))
	cmd.SetErr(new(bytes.Buffer))
	cmd.SetArgs([]string{"--server", "2"})

	err := cmd.Execute()
	if err == nil {
		t.Fatalf("expected error, got nil")
	}
	if !strings.Contains(err.Error(), "already connected to FBIV-NY-01") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestNewConnectCmd_UnknownServer_ReturnsError(t *testing.T) {
	srv := newConnectServer(t)
	app := newTestApp(t, srv.URL)

	cmd := cli.NewConnectCmd(app)
	cmd.SetOut(new(bytes.Buffer))
	cmd.SetErr(new(bytes.Buffer))
	cmd.SetArgs([]string{"--server", "999"})

	err := cmd.Execute()
	if err == nil {
		t.Fatalf("expected error, got nil")
	}
	if !strings.Contains(err.Error(), "unknown server 999") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestNewConnectCmd_MissingServerFlag_ReturnsError(t *testing.T) {
	app := newTestApp(t, "http://127.0.0.1:1")

	cmd := cli.NewConnectCmd(app)
	cmd.SetOut(new(bytes.Buffer))
	cmd.SetErr(new(bytes.Buffer))
	cmd.SetArgs([]string{})

	err := cmd.Execute()
	if err == nil {
		t.Fatalf("expected error, got nil")
	}
	if !strings.Contains(err.Error(), "required") {
		t.Fatalf("unexpected error: %v", err)
	}
}
