package tests

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/fbivlabs/fbiv-vpn/internal/agent/api"
	sm "github.com/fbivlabs/fbiv-vpn/internal/shared/models"
)

func TestClient_Servers_Success(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/servers", func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodGet, r.Method)
		require.Empty(t, r.Header.Get("Authorization"))

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode([]sm.Server{
			{ID: 1, Name: "FBIV-NY-01", Location: "New York", Country: "USA", Load: 42, Ping: 18},
			{ID: 2, Name: "FBIV-AMS-01", Location: "Amsterdam", Country: "Netherlands", Premium: true},
		})
	})

	srv := httptest.NewServer(mux)
	defer srv.Close()

	c := api.NewClient(srv.URL)

	servers, err := c.Servers()
	require.NoError(t, err)
	require.Len(t, servers, 2)
	require.Equal(t, int64(1), servers[0].ID)
	require.Equal(t, "Amsterdam", servers[1].Location)
	require.True(t, servers[1].Premium)
}

func TestClient_Connect_SendsServerID(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/connect", func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "Bearer token-1", r.Header.Get("Authorization"))

		var req sm.ConnectRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Equal(t, int64(2), req.ServerID)

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(sm.ConnectResponse{
			Success: true,
			Message: "Connected to Amsterdam",
			Server:  sm.Server{ID: 2, Location: "Amsterdam"},
		})
	})

	srv := httptest.NewServer(mux)
	defer srv.Close()

	c := api.NewClient(srv.URL)

	resp, err := c.Connect(2, "token-1")
	require.NoError(t, err)
	require.True(t, resp.Success)
	require.Equal(t, "Connected to Amsterdam", resp.Message)
	require.Equal(t, int64(2), resp.Server.ID)
}

func TestClient_Connect_Anonymous_NoAuthorization(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/connect", func(w http.ResponseWriter, r *http.Request) {
		require.Empty(t, r.Header.Get("Authorization"))

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(sm.ConnectResponse{Success: true, Message: "Connected to Tokyo"})
	})

	srv := httptest.NewServer(mux)
	defer srv.Close()

	c := api.NewClient(srv.URL)

	resp, err := c.Connect(7, "")
	require.NoError(t, err)
	require.True(t, resp.Success)
}

func TestClient_Connect_UnknownServer_ReturnsError(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/connect", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		io.WriteString(w, `{"message":"server not found"}`)
	})

	srv := httptest.NewServer(mux)
	defer srv.Close()

	c := api.NewClient(srv.URL)

	_, err := c.Connect(999, "")
	require.Error(t, err)
	require.True(t, strings.Contains(err.Error(), "server not found"))
}

func TestClient_Disconnect_Success(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/disconnect", func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		// no request body means no Content-Type
		require.Empty(t, r.Header.Get("Content-Type"))

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(sm.DisconnectResponse{Success: true, Message: "Disconnected from VPN"})
	})

	srv := httptest.NewServer(mux)
	defer srv.Close()

	c := api.NewClient(srv.URL)

	resp, err := c.Disconnect("token-1")
	require.NoError(t, err)
	require.True(t, resp.Success)
	require.Equal(t, "Disconnected from VPN", resp.Message)
}

func TestClient_Stats_Success(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/stats", func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodGet, r.Method)

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(sm.Stats{
			TotalUsers:     2847401,
			TotalServers:   520,
			TotalCountries: 60,
			TopServers: []sm.TopServer{
				{ID: 1, Location: "New York", Ping: 18, Load: 42},
			},
		})
	})

	srv := httptest.NewServer(mux)
	defer srv.Close()

	c := api.NewClient(srv.URL)

	stats, err := c.Stats()
	require.NoError(t, err)
	require.Equal(t, int64(2847401), stats.TotalUsers)
	require.Equal(t, 520, stats.TotalServers)
	require.Len(t, stats.TopServers, 1)
}
