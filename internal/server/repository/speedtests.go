package repository

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"github.com/fbivlabs/fbiv-vpn/internal/server/models"
	serr "github.com/fbivlabs/fbiv-vpn/internal/shared/errors"
)

// SpeedTestsRepository stores speed-test samples.
//
// Rows are append-only: created on submission, immutable afterwards,
// read back newest-first with a hard cap.
type SpeedTestsRepository struct {
	db *sql.DB
}

func NewSpeedTestsRepository(db *sql.DB) *SpeedTestsRepository {
	return &SpeedTestsRepository{db: db}
}

// Create inserts one sample. The caller fills ID and CreatedAt.
func (r *SpeedTestsRepository) Create(ctx context.Context, st models.SpeedTest) error {
	var userID any
	if st.UserID != nil {
		userID = st.UserID.String()
	}

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO speed_tests (id, user_id, download_mbps, upload_mbps, ping_ms, jitter_ms, server_label, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		st.ID.String(), userID, st.DownloadSpeed, st.UploadSpeed, st.Ping, st.Jitter, st.ServerLabel, st.CreatedAt,
	)
	if err != nil {
		return serr.ErrInternal
	}
	return nil
}

// ListRecent returns up to limit samples, newest first.
//
// With a non-nil userID only that user's samples are returned;
// otherwise the listing spans all submissions (the anonymous variant of
// the endpoint).
func (r *SpeedTestsRepository) ListRecent(ctx context.Context, userID *uuid.UUID, limit int) ([]models.SpeedTest, error) {
	var (
		rows *sql.Rows
		err  error
	)

	if userID != nil {
		rows, err = r.db.QueryContext(ctx,
			`SELECT id, user_id, download_mbps, upload_mbps, ping_ms, jitter_ms, server_label, created_at
			   FROM speed_tests
			  WHERE user_id = ?
			  ORDER BY created_at DESC
			  LIMIT ?`,
			userID.String(), limit,
		)
	} else {
		rows, err = r.db.QueryContext(ctx,
			`SELECT id, user_id, download_mbps, upload_mbps, ping_ms, jitter_ms, server_label, created_at
			   FROM speed_tests
			  ORDER BY created_at DESC
			  LIMIT ?`,
			limit,
		)
	}
	if err != nil {
		return nil, serr.ErrInternal
	}
	defer rows.Close()

	var out []models.SpeedTest
	for rows.Next() {
		var (
			st      models.SpeedTest
			rawID   string
			rawUser sql.NullString
		)
		if err := rows.Scan(&rawID, &rawUser, &st.DownloadSpeed, &st.UploadSpeed, &st.Ping, &st.Jitter, &st.ServerLabel, &st.CreatedAt); err != nil {
			return nil, serr.ErrInternal
		}

		st.ID, err = uuid.Parse(rawID)
		if err != nil {
			return nil, serr.ErrInternal
		}
		if rawUser.Valid {
			if uid, e := uuid.Parse(rawUser.String); e == nil {
				st.UserID = &uid
			}
		}
		out = append(out, st)
	}
	if err := rows.Err(); err != nil {
		return nil, serr.ErrInternal
	}
	return out, nil
}
