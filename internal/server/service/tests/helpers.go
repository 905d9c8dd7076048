package tests

import (
	"time"

	"github.com/fbivlabs/fbiv-vpn/internal/server/config"
)

// testConfig is the shared config for the service tests: fast bcrypt,
// a fixed signing key, small history caps.
func testConfig() *config.Config {
	return &config.Config{
		Env: "dev",
		Auth: config.AuthConfig{
			Issuer:    "fbiv-vpn-test",
			Audience:  "fbiv-vpn-client",
			AccessTTL: time.Hour,
			JWT: config.JWTConfig{
				Algorithm:  "HS256",
				SigningKey: "0123456789abcdef0123456789abcdef",
			},
		},
		Password: config.PasswordConfig{
			Hasher: "bcrypt",
			Bcrypt: config.BcryptConfig{Cost: 4},
		},
		API: config.APIConfig{
			SpeedTestHistoryLimit: 10,
			SessionHistoryLimit:   10,
		},
	}
}
