package service

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"github.com/fbivlabs/fbiv-vpn/internal/server/models"
	sm "github.com/fbivlabs/fbiv-vpn/internal/shared/models"
)

// Base figures for the landing-page counters. The fleet in the local
// database is a small sample of the advertised network.
const (
	statsBaseUsers     = 2847392
	statsTotalServers  = 520
	statsTotalCountry  = 60
	statsTopServersCap = 5
)

// VPNService serves the server list, the mock connect/disconnect flow
// and the global stats.
//
// The "connection" here is a recorded row, not a tunnel: connect stores
// when and where, disconnect closes it. Load and ping on outgoing
// server records are jittered per request for display.
type VPNService struct {
	servers     ServersRepo
	connections ConnectionsRepo
}

func NewVPNService(servers ServersRepo, connections ConnectionsRepo) *VPNService {
	return &VPNService{servers: servers, connections: connections}
}

// jitterServer randomizes load and ping around the stored values,
// clamped at a floor of 5 so the numbers stay plausible.
func jitterServer(s models.Server) models.Server {
	s.Load = max(5, s.Load+rand.Intn(20)-10)
	s.Ping = max(5, s.Ping+rand.Intn(10)-5)
	return s
}

// ListServers returns the fleet with per-request display jitter.
func (s *VPNService) ListServers(ctx context.Context) ([]models.Server, error) {
	servers, err := s.servers.List(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]models.Server, 0, len(servers))
	for _, srv := range servers {
		out = append(out, jitterServer(srv))
	}
	return out, nil
}

// Connect records a connection to the given server.
//
// Any previously open connection of the same caller is closed first, so
// each caller has at most one open row. Returns ErrNotFound for an
// unknown server id.
func (s *VPNService) Connect(ctx context.Context, userID *uuid.UUID, serverID int64) (models.Server, string, error) {
	server, err := s.servers.GetByID(ctx, serverID)
	if err != nil {
		return models.Server{}, "", err
	}

	now := time.Now().UTC()
	if err := s.connections.EndOpen(ctx, userID, now); err != nil {
		return models.Server{}, "", err
	}
	if _, err := s.connections.Start(ctx, userID, serverID, now); err != nil {
		return models.Server{}, "", err
	}

	return server, fmt.Sprintf("Connected to %s", server.Location), nil
}

// Disconnect closes the caller's open connection, if any. Calling it
// while already disconnected is a success.
func (s *VPNService) Disconnect(ctx context.Context, userID *uuid.UUID) error {
	return s.connections.EndOpen(ctx, userID, time.Now().UTC())
}

// Stats returns the randomized global counters plus the jittered top
// servers.
func (s *VPNService) Stats(ctx context.Context) (sm.Stats, error) {
	servers, err := s.servers.List(ctx)
	if err != nil {
		return sm.Stats{}, err
	}

	top := make([]sm.TopServer, 0, statsTopServersCap)
	for _, srv := range servers {
		if len(top) == statsTopServersCap {
			break
		}
		j := jitterServer(srv)
		top = append(top, sm.TopServer{
			ID:       j.ID,
			Location: j.Location,
			Flag:     j.Flag,
			Ping:     j.Ping,
			Load:     j.Load,
		})
	}

	return sm.Stats{
		TotalUsers:     statsBaseUsers + rand.Int63n(1000),
		TotalServers:   statsTotalServers,
		TotalCountries: statsTotalCountry,
		TopServers:     top,
	}, nil
}
