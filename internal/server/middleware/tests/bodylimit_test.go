package tests

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/fbivlabs/fbiv-vpn/internal/server/middleware"
)

// a body under the cap reads through untouched
func TestMaxBody_UnderLimit(t *testing.T) {
	mw := middleware.MaxBody(64)
	handler := mw(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		w.Write(b)
	}))

	req := httptest.NewRequest(http.MethodPost, "/api/speedtest", strings.NewReader("small body"))
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "small body", rec.Body.String())
}

// reading past the cap surfaces a MaxBytesError to the handler
func TestMaxBody_OverLimit(t *testing.T) {
	var readErr error
	mw := middleware.MaxBody(8)
	handler := mw(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, readErr = io.ReadAll(r.Body)
		w.WriteHeader(http.StatusBadRequest)
	}))

	req := httptest.NewRequest(http.MethodPost, "/api/speedtest", strings.NewReader(strings.Repeat("x", 100)))
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	require.Error(t, readErr)
	var maxErr *http.MaxBytesError
	require.ErrorAs(t, readErr, &maxErr)
}
