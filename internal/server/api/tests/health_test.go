package tests

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	sm "github.com/fbivlabs/fbiv-vpn/internal/shared/models"
)

func TestHandler_Health(t *testing.T) {
	t.Parallel()

	h, _ := NewTestHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	rec := httptest.NewRecorder()

	h.Health(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected %d, got %d", http.StatusOK, rec.Code)
	}

	var resp sm.HealthResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Status != "OK" || resp.Database != "SQLite" {
		t.Fatalf("unexpected body: %+v", resp)
	}
	if resp.Timestamp.IsZero() {
		t.Fatalf("expected a timestamp")
	}
}

func TestHandler_NotFound(t *testing.T) {
	t.Parallel()

	h, _ := NewTestHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/api/nope", nil)
	rec := httptest.NewRecorder()

	h.NotFound(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected %d, got %d", http.StatusNotFound, rec.Code)
	}

	var resp sm.ErrorResponse
	json.NewDecoder(rec.Body).Decode(&resp)
	if resp.Message != "API endpoint not found" {
		t.Fatalf("unexpected message: %q", resp.Message)
	}
}
