// Package service contains the business logic of the FBIV VPN backend.
// It sits between the HTTP handlers (api) and the storage layer
// (repository).
package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/fbivlabs/fbiv-vpn/internal/server/config"
	"github.com/fbivlabs/fbiv-vpn/internal/server/models"
)

// Repositories is the set of interfaces the service layer expects from
// the repository layer.
type Repositories struct {
	Users       UsersRepo
	Servers     ServersRepo
	SpeedTests  SpeedTestsRepo
	Connections ConnectionsRepo
}

// Services aggregates every service of the application.
type Services struct {
	Auth      *AuthService
	VPN       *VPNService
	SpeedTest *SpeedTestService
	Account   *AccountService
}

// NewServices wires all services. cfg supplies the hashing and token
// parameters plus the endpoint caps.
func NewServices(repos Repositories, cfg *config.Config) *Services {
	return &Services{
		Auth:      NewAuthService(repos.Users, cfg),
		VPN:       NewVPNService(repos.Servers, repos.Connections),
		SpeedTest: NewSpeedTestService(repos.SpeedTests, cfg),
		Account:   NewAccountService(repos.Users, repos.Connections, cfg),
	}
}

// UsersRepo is the user storage needed by auth and account.
type UsersRepo interface {
	Create(ctx context.Context, name, email, passwordHash string) (models.User, error)
	GetByEmail(ctx context.Context, email string) (models.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (models.User, error)
}

// ServersRepo reads the seeded server fleet.
type ServersRepo interface {
	List(ctx context.Context) ([]models.Server, error)
	GetByID(ctx context.Context, id int64) (models.Server, error)
}

// SpeedTestsRepo stores and lists speed-test samples.
type SpeedTestsRepo interface {
	Create(ctx context.Context, st models.SpeedTest) error
	ListRecent(ctx context.Context, userID *uuid.UUID, limit int) ([]models.SpeedTest, error)
}

// ConnectionsRepo records connect/disconnect cycles.
type ConnectionsRepo interface {
	Start(ctx context.Context, userID *uuid.UUID, serverID int64, at time.Time) (uuid.UUID, error)
	EndOpen(ctx context.Context, userID *uuid.UUID, at time.Time) error
	ListRecent(ctx context.Context, userID uuid.UUID, limit int) ([]models.ConnectionHistory, error)
	CountForUser(ctx context.Context, userID uuid.UUID, dayStart time.Time) (total, today int, err error)
}
