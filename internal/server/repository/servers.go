// Package repository contains the data access layer.
//
// Repositories encapsulate all SQL and carry no business logic. Every
// driver error is converted to a domain error from
// internal/shared/errors before it leaves the package.
package repository

import (
	"context"
	"database/sql"

	"github.com/fbivlabs/fbiv-vpn/internal/server/models"
	serr "github.com/fbivlabs/fbiv-vpn/internal/shared/errors"
)

// ServersRepository reads the seeded VPN server fleet.
//
// The rows are written once by the migrations; nothing in the running
// server mutates them. Display jitter is applied downstream on copies.
type ServersRepository struct {
	db *sql.DB
}

func NewServersRepository(db *sql.DB) *ServersRepository {
	return &ServersRepository{db: db}
}

// List returns every server ordered by id.
func (r *ServersRepository) List(ctx context.Context) ([]models.Server, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, name, location, country, flag, ip, load, ping, premium
		   FROM servers ORDER BY id`,
	)
	if err != nil {
		return nil, serr.ErrInternal
	}
	defer rows.Close()

	var out []models.Server
	for rows.Next() {
		var s models.Server
		if err := rows.Scan(&s.ID, &s.Name, &s.Location, &s.Country, &s.Flag, &s.IP, &s.Load, &s.Ping, &s.Premium); err != nil {
			return nil, serr.ErrInternal
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, serr.ErrInternal
	}
	return out, nil
}

// GetByID returns one server or ErrNotFound.
func (r *ServersRepository) GetByID(ctx context.Context, id int64) (models.Server, error) {
	var s models.Server
	err := r.db.QueryRowContext(ctx,
		`SELECT id, name, location, country, flag, ip, load, ping, premium
		   FROM servers WHERE id = ?`,
		id,
	).Scan(&s.ID, &s.Name, &s.Location, &s.Country, &s.Flag, &s.IP, &s.Load, &s.Ping, &s.Premium)

	if err != nil {
		if err == sql.ErrNoRows {
			return models.Server{}, serr.ErrNotFound
		}
		return models.Server{}, serr.ErrInternal
	}
	return s, nil
}
