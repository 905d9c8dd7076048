// Package crypto contains the cryptographic primitives used by the FBIV
// VPN server.
//
// The package is responsible for:
//   - creating and signing JWT access tokens;
//   - token parameters (issuer, audience, TTL);
//   - password hashing and constant-time verification.
package crypto

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// JWTConfig describes how access tokens are produced.
type JWTConfig struct {
	// Issuer is the iss claim (who issued the token).
	Issuer string
	// Audience is the aud claim (who the token is for).
	Audience string
	// SigningKey is the HS256 secret. Must be long and random.
	SigningKey string
	// AccessTTL is the token lifetime.
	AccessTTL time.Duration
}

// AccessClaims are the claims carried by an access token: the standard
// registered set plus the account email, so protected handlers can show
// the caller's identity without a database round trip.
type AccessClaims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// NewAccessToken creates and signs a JWT access token for a user.
//
// The token carries:
//   - iss (Issuer)
//   - aud (Audience)
//   - sub (userID)
//   - jti (random per-token id)
//   - iat (IssuedAt)
//   - exp (ExpiresAt)
//   - email (custom claim)
//
// iat and exp carry one-second precision, so the jti is what keeps two
// tokens issued within the same second distinct.
//
// The signing algorithm is HS256.
func NewAccessToken(userID, email string, cfg JWTConfig) (string, error) {
	now := time.Now()

	claims := AccessClaims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    cfg.Issuer,
			Audience:  []string{cfg.Audience},
			Subject:   userID,
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(cfg.AccessTTL)),
		},
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(cfg.SigningKey))
}
