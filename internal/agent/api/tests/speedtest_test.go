package tests

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/fbivlabs/fbiv-vpn/internal/agent/api"
	sm "github.com/fbivlabs/fbiv-vpn/internal/shared/models"
)

func TestClient_SubmitSpeedTest_EchoesStoredRecord(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/speedtest", func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "Bearer token-1", r.Header.Get("Authorization"))

		var req sm.SpeedTestRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Equal(t, 123.4, req.DownloadSpeed)
		require.Equal(t, 45.6, req.UploadSpeed)
		require.Equal(t, 18, req.Ping)
		require.Equal(t, "Amsterdam", req.Server)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(sm.SpeedTest{
			ID:            "st-1",
			DownloadSpeed: req.DownloadSpeed,
			UploadSpeed:   req.UploadSpeed,
			Ping:          req.Ping,
			Jitter:        req.Jitter,
			Server:        req.Server,
			Timestamp:     time.Date(2026, 2, 1, 10, 0, 0, 0, time.UTC),
		})
	})

	srv := httptest.NewServer(mux)
	defer srv.Close()

	c := api.NewClient(srv.URL)

	rec, err := c.SubmitSpeedTest(sm.SpeedTestRequest{
		DownloadSpeed: 123.4,
		UploadSpeed:   45.6,
		Ping:          18,
		Jitter:        2.5,
		Server:        "Amsterdam",
	}, "token-1")
	require.NoError(t, err)
	require.Equal(t, "st-1", rec.ID)
	require.Equal(t, 123.4, rec.DownloadSpeed)
	require.False(t, rec.Timestamp.IsZero())
}

func TestClient_SpeedTestHistory_ReturnsRecords(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/speedtest/history", func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodGet, r.Method)
		require.Equal(t, "Bearer token-1", r.Header.Get("Authorization"))

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode([]sm.SpeedTest{
			{ID: "st-2", DownloadSpeed: 150.1, Server: "Tokyo"},
			{ID: "st-1", DownloadSpeed: 123.4, Server: "Amsterdam"},
		})
	})

	srv := httptest.NewServer(mux)
	defer srv.Close()

	c := api.NewClient(srv.URL)

	hist, err := c.SpeedTestHistory("token-1")
	require.NoError(t, err)
	require.Len(t, hist, 2)
	require.Equal(t, "st-2", hist[0].ID)
	require.Equal(t, "Amsterdam", hist[1].Server)
}

func TestClient_SpeedTestHistory_Empty(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/speedtest/history", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode([]sm.SpeedTest{})
	})

	srv := httptest.NewServer(mux)
	defer srv.Close()

	c := api.NewClient(srv.URL)

	hist, err := c.SpeedTestHistory("")
	require.NoError(t, err)
	require.Empty(t, hist)
}
