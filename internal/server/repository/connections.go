package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"

	"github.com/fbivlabs/fbiv-vpn/internal/server/models"
	serr "github.com/fbivlabs/fbiv-vpn/internal/shared/errors"
)

// ConnectionsRepository records connect/disconnect cycles.
//
// A row with NULL ended_at is an open connection. Disconnect closes all
// open rows of the caller; closing zero rows is a success, which makes
// disconnect idempotent.
type ConnectionsRepository struct {
	db *sql.DB
}

func NewConnectionsRepository(db *sql.DB) *ConnectionsRepository {
	return &ConnectionsRepository{db: db}
}

// Start opens a connection row and returns its id.
func (r *ConnectionsRepository) Start(ctx context.Context, userID *uuid.UUID, serverID int64, at time.Time) (uuid.UUID, error) {
	row := models.Connection{
		ID:        uuid.New(),
		UserID:    userID,
		ServerID:  serverID,
		StartedAt: at,
	}

	var uid any
	if row.UserID != nil {
		uid = row.UserID.String()
	}

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO connections (id, user_id, server_id, started_at)
		 VALUES (?, ?, ?, ?)`,
		row.ID.String(), uid, row.ServerID, row.StartedAt,
	)
	if err != nil {
		return uuid.Nil, serr.ErrInternal
	}
	return row.ID, nil
}

// EndOpen closes every open connection of the caller. A nil userID
// targets anonymous connections. Zero affected rows is not an error.
func (r *ConnectionsRepository) EndOpen(ctx context.Context, userID *uuid.UUID, at time.Time) error {
	var (
		err error
	)
	if userID != nil {
		_, err = r.db.ExecContext(ctx,
			`UPDATE connections SET ended_at = ? WHERE user_id = ? AND ended_at IS NULL`,
			at, userID.String(),
		)
	} else {
		_, err = r.db.ExecContext(ctx,
			`UPDATE connections SET ended_at = ? WHERE user_id IS NULL AND ended_at IS NULL`,
			at,
		)
	}
	if err != nil {
		return serr.ErrInternal
	}
	return nil
}

// ListRecent returns the user's latest connections joined with the
// server name, newest first, capped at limit.
func (r *ConnectionsRepository) ListRecent(ctx context.Context, userID uuid.UUID, limit int) ([]models.ConnectionHistory, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT c.id, s.name, c.started_at, c.ended_at
		   FROM connections c
		   JOIN servers s ON s.id = c.server_id
		  WHERE c.user_id = ?
		  ORDER BY c.started_at DESC
		  LIMIT ?`,
		userID.String(), limit,
	)
	if err != nil {
		return nil, serr.ErrInternal
	}
	defer rows.Close()

	var out []models.ConnectionHistory
	for rows.Next() {
		var (
			h     models.ConnectionHistory
			rawID string
			ended sql.NullTime
		)
		if err := rows.Scan(&rawID, &h.ServerName, &h.StartedAt, &ended); err != nil {
			return nil, serr.ErrInternal
		}

		h.ID, err = uuid.Parse(rawID)
		if err != nil {
			return nil, serr.ErrInternal
		}
		if ended.Valid {
			t := ended.Time
			h.EndedAt = &t
		}
		out = append(out, h)
	}
	if err := rows.Err(); err != nil {
		return nil, serr.ErrInternal
	}
	return out, nil
}

// CountForUser returns the user's total connection count and the count
// since midnight UTC.
func (r *ConnectionsRepository) CountForUser(ctx context.Context, userID uuid.UUID, dayStart time.Time) (total, today int, err error) {
	err = r.db.QueryRowContext(ctx,
		`SELECT COUNT(*),
		        COALESCE(SUM(CASE WHEN started_at >= ? THEN 1 ELSE 0 END), 0)
		   FROM connections
		  WHERE user_id = ?`,
		dayStart, userID.String(),
	).Scan(&total, &today)

	if err != nil {
		return 0, 0, serr.ErrInternal
	}
	return total, today, nil
}
