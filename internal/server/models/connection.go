package models

import (
	"time"

	"github.com/google/uuid"
)

// Connection is one recorded connect/disconnect cycle against a VPN
// server. EndedAt is nil while the connection is considered open.
type Connection struct {
	ID        uuid.UUID
	UserID    *uuid.UUID
	ServerID  int64
	StartedAt time.Time
	EndedAt   *time.Time
}

// ConnectionHistory is a connection row joined with its server name,
// used for the account session listing.
type ConnectionHistory struct {
	ID         uuid.UUID
	ServerName string
	StartedAt  time.Time
	EndedAt    *time.Time
}
