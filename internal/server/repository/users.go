package repository

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/fbivlabs/fbiv-vpn/internal/server/models"
	serr "github.com/fbivlabs/fbiv-vpn/internal/shared/errors"
)

type UsersRepository struct {
	db *sql.DB
}

func NewUsersRepository(db *sql.DB) *UsersRepository {
	return &UsersRepository{db: db}
}

// isUniqueViolation reports whether err is a SQLite UNIQUE constraint
// failure. The driver (modernc.org/sqlite) keeps its error code
// unexported, so the message text is the stable thing to match.
func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}

// Create inserts a new user with the default free subscription.
//
// The email must already be normalized (trimmed, lowercased) by the
// caller. Duplicate emails are resolved by the unique index, not by a
// prior lookup, so two concurrent registrations cannot both succeed.
func (r *UsersRepository) Create(ctx context.Context, name, email, passwordHash string) (models.User, error) {
	u := models.User{
		ID:           uuid.New(),
		Name:         name,
		Email:        email,
		PasswordHash: passwordHash,
		Subscription: models.TierFree,
		CreatedAt:    time.Now().UTC(),
	}

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO users (id, name, email, password_hash, subscription, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		u.ID.String(), u.Name, u.Email, u.PasswordHash, u.Subscription, u.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return models.User{}, serr.ErrAlreadyExists
		}
		return models.User{}, serr.ErrInternal
	}

	return u, nil
}

// GetByEmail returns the user stored under the exact (normalized) email.
func (r *UsersRepository) GetByEmail(ctx context.Context, email string) (models.User, error) {
	return r.scanOne(r.db.QueryRowContext(ctx,
		`SELECT id, name, email, password_hash, subscription, created_at
		   FROM users WHERE email = ?`,
		email,
	))
}

// GetByID returns the user with the given id.
func (r *UsersRepository) GetByID(ctx context.Context, id uuid.UUID) (models.User, error) {
	return r.scanOne(r.db.QueryRowContext(ctx,
		`SELECT id, name, email, password_hash, subscription, created_at
		   FROM users WHERE id = ?`,
		id.String(),
	))
}

func (r *UsersRepository) scanOne(row *sql.Row) (models.User, error) {
	var (
		u     models.User
		rawID string
	)
	err := row.Scan(&rawID, &u.Name, &u.Email, &u.PasswordHash, &u.Subscription, &u.CreatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return models.User{}, serr.ErrNotFound
		}
		return models.User{}, serr.ErrInternal
	}

	u.ID, err = uuid.Parse(rawID)
	if err != nil {
		return models.User{}, serr.ErrInternal
	}
	return u, nil
}
