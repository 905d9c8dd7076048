// Package middleware contains the server's HTTP middleware.
package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	cr "github.com/fbivlabs/fbiv-vpn/internal/server/crypto"
	serr "github.com/fbivlabs/fbiv-vpn/internal/shared/errors"
	sm "github.com/fbivlabs/fbiv-vpn/internal/shared/models"
)

// ctxKey is the private context key type. A distinct type prevents key
// collisions between packages.
type ctxKey string

// identityKey holds the authenticated caller's Identity.
const identityKey ctxKey = "identity"

// Identity is the decoded caller identity attached to the request
// context by the auth middleware. Decoded from token claims only; the
// middleware never hits the database.
type Identity struct {
	UserID uuid.UUID
	Email  string
}

// JWTVerifier encapsulates access-token verification.
//
// Used by the HTTP middleware to:
//   - check the token signature (HS256)
//   - validate issuer and audience
//   - extract the user id and email from the claims
type JWTVerifier struct {
	SigningKey string
	Issuer     string
	Audience   string
}

// NewJWTVerifier creates a JWTVerifier with the given parameters.
func NewJWTVerifier(signingKey, issuer, audience string) *JWTVerifier {
	return &JWTVerifier{SigningKey: signingKey, Issuer: issuer, Audience: audience}
}

// IdentityFromContext extracts the authenticated caller from the
// context.
//
// Returns false when the request was anonymous.
func IdentityFromContext(ctx context.Context) (Identity, bool) {
	v, ok := ctx.Value(identityKey).(Identity)
	return v, ok
}

// writeAuthError replies with the API error shape. Mirrors
// api.WriteError without importing the api package (the api package
// imports this one).
func writeAuthError(w http.ResponseWriter, status int, err error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(sm.ErrorResponse{Message: err.Error()})
}

// verify parses and validates the token string, returning the caller
// identity.
func (v *JWTVerifier) verify(tokenStr string) (Identity, error) {
	claims := &cr.AccessClaims{}

	parser := jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Name}))
	_, err := parser.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (any, error) {
		return []byte(v.SigningKey), nil
	})
	if err != nil {
		return Identity{}, serr.ErrInvalidToken
	}

	if v.Issuer != "" && claims.Issuer != v.Issuer {
		return Identity{}, serr.ErrInvalidToken
	}

	if v.Audience != "" {
		ok := false
		for _, aud := range claims.Audience {
			if aud == v.Audience {
				ok = true
				break
			}
		}
		if !ok {
			return Identity{}, serr.ErrInvalidToken
		}
	}

	userID, err := uuid.Parse(strings.TrimSpace(claims.Subject))
	if err != nil {
		return Identity{}, serr.ErrInvalidToken
	}

	return Identity{UserID: userID, Email: claims.Email}, nil
}

// RequireAuth returns middleware for token-gated routes.
//
// The middleware:
//   - expects Authorization: Bearer <token>
//   - replies 401 with the unauthenticated error when the header is
//     missing
//   - replies 403 with the invalid-token error when the token is
//     malformed, badly signed or expired
//   - on success stores the caller Identity in the request context
//
// It performs no database lookup, so a deleted account's still-valid
// token passes here until expiry; handlers that read the account will
// report not found.
func (v *JWTVerifier) RequireAuth() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tokenStr := ExtractBearer(r.Header.Get("Authorization"))
			if tokenStr == "" {
				writeAuthError(w, http.StatusUnauthorized, serr.ErrUnauthenticated)
				return
			}

			id, err := v.verify(tokenStr)
			if err != nil {
				writeAuthError(w, http.StatusForbidden, serr.ErrInvalidToken)
				return
			}

			ctx := context.WithValue(r.Context(), identityKey, id)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// OptionalAuth returns middleware for routes that work both anonymously
// and authenticated.
//
// No Authorization header means the request proceeds anonymously. A
// header that is present but does not verify is rejected with 403
// rather than silently degraded to anonymous.
func (v *JWTVerifier) OptionalAuth() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := strings.TrimSpace(r.Header.Get("Authorization"))
			if header == "" {
				next.ServeHTTP(w, r)
				return
			}

			tokenStr := ExtractBearer(header)
			if tokenStr == "" {
				writeAuthError(w, http.StatusForbidden, serr.ErrInvalidToken)
				return
			}

			id, err := v.verify(tokenStr)
			if err != nil {
				writeAuthError(w, http.StatusForbidden, serr.ErrInvalidToken)
				return
			}

			ctx := context.WithValue(r.Context(), identityKey, id)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// ExtractBearer pulls the token out of an Authorization header.
//
// Expected format:
//
//	Authorization: Bearer <token>
//
// Returns an empty string when the format is wrong.
func ExtractBearer(h string) string {
	h = strings.TrimSpace(h)
	if h == "" {
		return ""
	}
	parts := strings.SplitN(h, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
