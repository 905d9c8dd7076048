package tests

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/fbivlabs/fbiv-vpn/internal/server/models"
	"github.com/fbivlabs/fbiv-vpn/internal/server/service"
	"github.com/fbivlabs/fbiv-vpn/internal/server/service/mocks"
	serr "github.com/fbivlabs/fbiv-vpn/internal/shared/errors"
)

func newVPNService(t *testing.T) (*service.VPNService, *mocks.MockServersRepo, *mocks.MockConnectionsRepo) {
	t.Helper()

	ctrl := gomock.NewController(t)
	servers := mocks.NewMockServersRepo(ctrl)
	connections := mocks.NewMockConnectionsRepo(ctrl)

	return service.NewVPNService(servers, connections), servers, connections
}

func testFleet() []models.Server {
	return []models.Server{
		{ID: 1, Name: "US East", Location: "New York", Country: "United States", Load: 45, Ping: 12},
		{ID: 2, Name: "EU West", Location: "Amsterdam", Country: "Netherlands", Load: 38, Ping: 25},
	}
}

// the listing is jittered but stays within the clamp
func TestVPNService_ListServers_Jitter(t *testing.T) {
	ctx := context.Background()
	svc, servers, _ := newVPNService(t)

	servers.EXPECT().List(ctx).Return(testFleet(), nil)

	got, err := svc.ListServers(ctx)

	require.NoError(t, err)
	require.Len(t, got, 2)
	for _, s := range got {
		require.GreaterOrEqual(t, s.Load, 5)
		require.GreaterOrEqual(t, s.Ping, 5)
	}
	// stored base values bound the jitter
	require.InDelta(t, 45, got[0].Load, 10)
	require.InDelta(t, 12, got[0].Ping, 5)
}

// connect closes any open row first, then opens a new one
func TestVPNService_Connect_OK(t *testing.T) {
	ctx := context.Background()
	svc, servers, connections := newVPNService(t)

	uid := uuid.New()
	server := models.Server{ID: 2, Name: "EU West", Location: "Amsterdam"}

	servers.EXPECT().GetByID(ctx, int64(2)).Return(server, nil)
	connections.EXPECT().EndOpen(ctx, &uid, gomock.Any()).Return(nil)
	connections.EXPECT().Start(ctx, &uid, int64(2), gomock.Any()).Return(uuid.New(), nil)

	got, msg, err := svc.Connect(ctx, &uid, 2)

	require.NoError(t, err)
	require.Equal(t, server.ID, got.ID)
	require.Equal(t, "Connected to Amsterdam", msg)
}

// unknown server id
func TestVPNService_Connect_UnknownServer(t *testing.T) {
	ctx := context.Background()
	svc, servers, _ := newVPNService(t)

	servers.EXPECT().GetByID(ctx, int64(99)).Return(models.Server{}, serr.ErrNotFound)

	_, _, err := svc.Connect(ctx, nil, 99)

	require.ErrorIs(t, err, serr.ErrNotFound)
}

// anonymous connect records a NULL-user row
func TestVPNService_Connect_Anonymous(t *testing.T) {
	ctx := context.Background()
	svc, servers, connections := newVPNService(t)

	server := models.Server{ID: 1, Location: "New York"}

	servers.EXPECT().GetByID(ctx, int64(1)).Return(server, nil)
	connections.EXPECT().EndOpen(ctx, gomock.Nil(), gomock.Any()).Return(nil)
	connections.EXPECT().Start(ctx, gomock.Nil(), int64(1), gomock.Any()).Return(uuid.New(), nil)

	_, msg, err := svc.Connect(ctx, nil, 1)

	require.NoError(t, err)
	require.Equal(t, "Connected to New York", msg)
}

// disconnect is a single EndOpen, idempotent at the storage layer
func TestVPNService_Disconnect_OK(t *testing.T) {
	ctx := context.Background()
	svc, _, connections := newVPNService(t)

	uid := uuid.New()

	connections.EXPECT().EndOpen(ctx, &uid, gomock.Any()).Return(nil)

	require.NoError(t, svc.Disconnect(ctx, &uid))
}

// counters and the top-5 cut
func TestVPNService_Stats_OK(t *testing.T) {
	ctx := context.Background()
	svc, servers, _ := newVPNService(t)

	fleet := make([]models.Server, 0, 7)
	for i := int64(1); i <= 7; i++ {
		fleet = append(fleet, models.Server{ID: i, Location: "Loc", Load: 40, Ping: 20})
	}

	servers.EXPECT().List(ctx).Return(fleet, nil)

	stats, err := svc.Stats(ctx)

	require.NoError(t, err)
	require.GreaterOrEqual(t, stats.TotalUsers, int64(2847392))
	require.Less(t, stats.TotalUsers, int64(2847392+1000))
	require.Equal(t, 520, stats.TotalServers)
	require.Equal(t, 60, stats.TotalCountries)
	require.Len(t, stats.TopServers, 5)
}
