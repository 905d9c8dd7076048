package service

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"github.com/fbivlabs/fbiv-vpn/internal/server/config"
	"github.com/fbivlabs/fbiv-vpn/internal/server/models"
	sm "github.com/fbivlabs/fbiv-vpn/internal/shared/models"
)

// plan is the per-tier subscription sheet. Tracked, never metered.
type plan struct {
	name       string
	price      float64
	maxDevices int
	features   []string
}

var plans = map[string]plan{
	models.TierFree: {
		name:       "Free",
		price:      0,
		maxDevices: 2,
		features:   []string{"2 Devices", "10 GB / month", "10 Countries"},
	},
	models.TierPro: {
		name:       "Pro",
		price:      9.99,
		maxDevices: 5,
		features:   []string{"5 Devices", "Unlimited Data", "30 Countries", "Premium Support"},
	},
	models.TierElite: {
		name:       "Elite",
		price:      19.99,
		maxDevices: 10,
		features:   []string{"10 Devices", "Unlimited Data", "60 Countries", "Premium Support", "Dedicated IP"},
	},
}

// AccountService serves the account pages: profile, usage summary,
// subscription sheet, devices and past sessions.
//
// Usage and session figures are derived from the recorded connection
// rows where possible; the rest is demo data jittered per request.
type AccountService struct {
	users       UsersRepo
	connections ConnectionsRepo

	sessionLimit int
}

func NewAccountService(users UsersRepo, connections ConnectionsRepo, cfg *config.Config) *AccountService {
	return &AccountService{
		users:        users,
		connections:  connections,
		sessionLimit: cfg.API.SessionHistoryLimit,
	}
}

// Profile returns the extended account view.
func (s *AccountService) Profile(ctx context.Context, userID uuid.UUID) (sm.Profile, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return sm.Profile{}, err
	}

	return sm.Profile{
		ID:           user.ID.String(),
		Name:         user.Name,
		Email:        user.Email,
		Subscription: user.Subscription,
		JoinDate:     user.CreatedAt.Format("2006-01-02"),
		Notifications: sm.Notifications{
			Email:     true,
			Security:  true,
			Marketing: false,
		},
	}, nil
}

// Usage summarizes the account's VPN usage. Connection counts come from
// the recorded rows; data volume is demo data with per-request jitter.
func (s *AccountService) Usage(ctx context.Context, userID uuid.UUID) (sm.Usage, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return sm.Usage{}, err
	}

	now := time.Now().UTC()
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	total, today, err := s.connections.CountForUser(ctx, userID, dayStart)
	if err != nil {
		return sm.Usage{}, err
	}

	p := plans[user.Subscription]

	dataLimit := float64(-1) // unlimited
	if user.Subscription == models.TierFree {
		dataLimit = 10 * 1024 // MB
	}

	return sm.Usage{
		DataUsed:         125.5 + rand.Float64()*50,
		DataLimit:        dataLimit,
		ConnectionsToday: today,
		TotalConnections: total,
		DevicesConnected: min(3, p.maxDevices),
		MaxDevices:       p.maxDevices,
	}, nil
}

// Subscription returns the account's plan sheet.
func (s *AccountService) Subscription(ctx context.Context, userID uuid.UUID) (sm.Subscription, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return sm.Subscription{}, err
	}

	p := plans[user.Subscription]

	return sm.Subscription{
		Plan:        p.name,
		Status:      "active",
		NextBilling: time.Now().UTC().AddDate(0, 1, 0).Format("2006-01-02"),
		Price:       p.price,
		Features:    p.features,
	}, nil
}

// Devices returns the account's registered devices. Demo data: there is
// no real device management behind it.
func (s *AccountService) Devices(ctx context.Context, userID uuid.UUID) ([]sm.Device, error) {
	if _, err := s.users.GetByID(ctx, userID); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	return []sm.Device{
		{ID: 1, Name: "Windows PC", Type: "Desktop", LastUsed: now.Format(time.RFC3339), Status: "online"},
		{ID: 2, Name: "iPhone 13", Type: "Mobile", LastUsed: now.Add(-75 * time.Minute).Format(time.RFC3339), Status: "offline"},
		{ID: 3, Name: "MacBook Pro", Type: "Laptop", LastUsed: now.Add(-16 * time.Hour).Format(time.RFC3339), Status: "offline"},
	}, nil
}

// Sessions lists the account's recent connections, newest first.
func (s *AccountService) Sessions(ctx context.Context, userID uuid.UUID) ([]sm.Session, error) {
	history, err := s.connections.ListRecent(ctx, userID, s.sessionLimit)
	if err != nil {
		return nil, err
	}

	out := make([]sm.Session, 0, len(history))
	for _, h := range history {
		end := time.Now().UTC()
		if h.EndedAt != nil {
			end = *h.EndedAt
		}

		out = append(out, sm.Session{
			ID:        h.ID.String(),
			Server:    h.ServerName,
			StartTime: h.StartedAt.Format(time.RFC3339),
			Duration:  formatDuration(end.Sub(h.StartedAt)),
			DataUsed:  fmt.Sprintf("%.1f MB", 50+rand.Float64()*950),
		})
	}
	return out, nil
}

// formatDuration renders a duration as "2h 15m" / "45m" / "30s".
func formatDuration(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	h := int(d.Hours())
	m := int(d.Minutes()) % 60
	switch {
	case h > 0:
		return fmt.Sprintf("%dh %dm", h, m)
	case m > 0:
		return fmt.Sprintf("%dm", m)
	default:
		return fmt.Sprintf("%ds", int(d.Seconds()))
	}
}
