package tests

import (
	"testing"
	"time"

	"go.uber.org/mock/gomock"

	"github.com/fbivlabs/fbiv-vpn/internal/server/api"
	"github.com/fbivlabs/fbiv-vpn/internal/server/config"
	"github.com/fbivlabs/fbiv-vpn/internal/server/crypto"
	"github.com/fbivlabs/fbiv-vpn/internal/server/middleware"
	"github.com/fbivlabs/fbiv-vpn/internal/server/service"
	svcmocks "github.com/fbivlabs/fbiv-vpn/internal/server/service/mocks"
	"github.com/fbivlabs/fbiv-vpn/internal/shared/logger"
)

// repos bundles the four repository mocks behind one test handler.
type repos struct {
	Users       *svcmocks.MockUsersRepo
	Servers     *svcmocks.MockServersRepo
	SpeedTests  *svcmocks.MockSpeedTestsRepo
	Connections *svcmocks.MockConnectionsRepo
}

const testSigningKey = "supersecretkeysupersecretkey123456" // >= 32

// NewTestHandler creates a Handler with mocks and config through
// dependency injection.
func NewTestHandler(t *testing.T) (*api.Handler, repos) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	r := repos{
		Users:       svcmocks.NewMockUsersRepo(ctrl),
		Servers:     svcmocks.NewMockServersRepo(ctrl),
		SpeedTests:  svcmocks.NewMockSpeedTestsRepo(ctrl),
		Connections: svcmocks.NewMockConnectionsRepo(ctrl),
	}

	cfg := &config.Config{
		Auth: config.AuthConfig{
			Issuer:    "issuer",
			Audience:  "audience",
			AccessTTL: 1 * time.Minute,
			JWT: config.JWTConfig{
				Algorithm:  "HS256",
				SigningKey: testSigningKey,
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

	svc := service.NewServices(service.Repositories{
		Users:       r.Users,
		Servers:     r.Servers,
		SpeedTests:  r.SpeedTests,
		Connections: r.Connections,
	}, cfg)

	verifier := middleware.NewJWTVerifier(cfg.Auth.JWT.SigningKey, cfg.Auth.Issuer, cfg.Auth.Audience)
	log := logger.NewHTTPLogger()

	return api.NewHandler(svc, log, verifier), r
}

// hashPassword hashes with the same scheme the test handler's auth
// service verifies with.
func hashPassword(t *testing.T, password string) string {
	t.Helper()

	hash, err := crypto.BcryptHasher{Cost: 4}.Hash(password)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	return hash
}

// testToken issues a token the test handler's verifier accepts.
func testToken(t *testing.T, userID, email string) string {
	t.Helper()

	token, err := crypto.NewAccessToken(userID, email, crypto.JWTConfig{
		Issuer:     "issuer",
		Audience:   "audience",
		SigningKey: testSigningKey,
		AccessTTL:  time.Minute,
	})
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}
	return token
}
