package tests

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/fbivlabs/fbiv-vpn/internal/server/crypto"
	"github.com/fbivlabs/fbiv-vpn/internal/server/middleware"
	sm "github.com/fbivlabs/fbiv-vpn/internal/shared/models"
)

const testSigningKey = "0123456789abcdef0123456789abcdef"

func testVerifier() *middleware.JWTVerifier {
	return middleware.NewJWTVerifier(testSigningKey, "fbiv-vpn", "fbiv-vpn-client")
}

func issueToken(t *testing.T, userID uuid.UUID, ttl time.Duration) string {
	t.Helper()

	token, err := crypto.NewAccessToken(userID.String(), "ana@mail.com", crypto.JWTConfig{
		Issuer:     "fbiv-vpn",
		Audience:   "fbiv-vpn-client",
		SigningKey: testSigningKey,
		AccessTTL:  ttl,
	})
	require.NoError(t, err)
	return token
}

// next handler that records the identity it saw
func identityProbe(saw *bool, id *middleware.Identity) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got, ok := middleware.IdentityFromContext(r.Context())
		*saw = ok
		if ok {
			*id = got
		}
		w.WriteHeader(http.StatusOK)
	})
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) sm.ErrorResponse {
	t.Helper()

	var body sm.ErrorResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	return body
}

// valid token passes and the identity lands in the context
func TestRequireAuth_OK(t *testing.T) {
	v := testVerifier()
	userID := uuid.New()

	var (
		saw bool
		id  middleware.Identity
	)
	h := v.RequireAuth()(identityProbe(&saw, &id))

	req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	req.Header.Set("Authorization", "Bearer "+issueToken(t, userID, time.Hour))
	rec := httptest.NewRecorder()

	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.True(t, saw)
	require.Equal(t, userID, id.UserID)
	require.Equal(t, "ana@mail.com", id.Email)
}

// no header: 401
func TestRequireAuth_MissingHeader(t *testing.T) {
	v := testVerifier()

	var saw bool
	var id middleware.Identity
	h := v.RequireAuth()(identityProbe(&saw, &id))

	req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	rec := httptest.NewRecorder()

	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.False(t, saw)
	require.Equal(t, "missing bearer token", decodeError(t, rec).Message)
}

// garbage token: 403
func TestRequireAuth_InvalidToken(t *testing.T) {
	v := testVerifier()

	var saw bool
	var id middleware.Identity
	h := v.RequireAuth()(identityProbe(&saw, &id))

	req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	req.Header.Set("Authorization", "Bearer not.a.token")
	rec := httptest.NewRecorder()

	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusForbidden, rec.Code)
	require.False(t, saw)
}

// expired token: 403
func TestRequireAuth_ExpiredToken(t *testing.T) {
	v := testVerifier()

	var saw bool
	var id middleware.Identity
	h := v.RequireAuth()(identityProbe(&saw, &id))

	req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	req.Header.Set("Authorization", "Bearer "+issueToken(t, uuid.New(), -time.Minute))
	rec := httptest.NewRecorder()

	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusForbidden, rec.Code)
	require.Equal(t, "invalid or expired token", decodeError(t, rec).Message)
}

// wrong issuer: 403
func TestRequireAuth_WrongIssuer(t *testing.T) {
	v := testVerifier()

	token, err := crypto.NewAccessToken(uuid.New().String(), "ana@mail.com", crypto.JWTConfig{
		Issuer:     "someone-else",
		Audience:   "fbiv-vpn-client",
		SigningKey: testSigningKey,
		AccessTTL:  time.Hour,
	})
	require.NoError(t, err)

	var saw bool
	var id middleware.Identity
	h := v.RequireAuth()(identityProbe(&saw, &id))

	req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()

	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusForbidden, rec.Code)
}

// no header on an optional route: anonymous pass-through
func TestOptionalAuth_Anonymous(t *testing.T) {
	v := testVerifier()

	var saw bool
	var id middleware.Identity
	h := v.OptionalAuth()(identityProbe(&saw, &id))

	req := httptest.NewRequest(http.MethodPost, "/api/connect", nil)
	rec := httptest.NewRecorder()

	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.False(t, saw)
}

// valid token on an optional route: identity attached
func TestOptionalAuth_WithToken(t *testing.T) {
	v := testVerifier()
	userID := uuid.New()

	var saw bool
	var id middleware.Identity
	h := v.OptionalAuth()(identityProbe(&saw, &id))

	req := httptest.NewRequest(http.MethodPost, "/api/connect", nil)
	req.Header.Set("Authorization", "Bearer "+issueToken(t, userID, time.Hour))
	rec := httptest.NewRecorder()

	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.True(t, saw)
	require.Equal(t, userID, id.UserID)
}

// a present but broken token is rejected, not degraded to anonymous
func TestOptionalAuth_BrokenToken(t *testing.T) {
	v := testVerifier()

	var saw bool
	var id middleware.Identity
	h := v.OptionalAuth()(identityProbe(&saw, &id))

	req := httptest.NewRequest(http.MethodPost, "/api/connect", nil)
	req.Header.Set("Authorization", "Bearer broken")
	rec := httptest.NewRecorder()

	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusForbidden, rec.Code)
	require.False(t, saw)
}

// header format edge cases
func TestExtractBearer(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Bearer abc", "abc"},
		{"bearer abc", "abc"},
		{"  Bearer   abc  ", "abc"},
		{"Basic abc", ""},
		{"Bearer", ""},
		{"", ""},
	}

	for _, tc := range cases {
		require.Equal(t, tc.want, middleware.ExtractBearer(tc.in), "header %q", tc.in)
	}
}
