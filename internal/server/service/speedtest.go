package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/fbivlabs/fbiv-vpn/internal/server/config"
	"github.com/fbivlabs/fbiv-vpn/internal/server/models"
	serr "github.com/fbivlabs/fbiv-vpn/internal/shared/errors"
	sm "github.com/fbivlabs/fbiv-vpn/internal/shared/models"
)

// SpeedTestService stores submitted samples and serves the bounded
// history.
type SpeedTestService struct {
	speedTests SpeedTestsRepo

	historyLimit int
}

func NewSpeedTestService(speedTests SpeedTestsRepo, cfg *config.Config) *SpeedTestService {
	return &SpeedTestService{
		speedTests:   speedTests,
		historyLimit: cfg.API.SpeedTestHistoryLimit,
	}
}

// Record stores one sample and returns the created record.
//
// Samples are immutable once stored. userID is nil for anonymous
// submissions. Negative throughput or ping is rejected.
func (s *SpeedTestService) Record(ctx context.Context, userID *uuid.UUID, req sm.SpeedTestRequest) (models.SpeedTest, error) {
	if req.DownloadSpeed < 0 || req.UploadSpeed < 0 || req.Ping < 0 || req.Jitter < 0 {
		return models.SpeedTest{}, serr.ErrInvalidInput
	}
	if strings.TrimSpace(req.Server) == "" {
		return models.SpeedTest{}, serr.ErrInvalidInput
	}

	st := models.SpeedTest{
		ID:            uuid.New(),
		UserID:        userID,
		DownloadSpeed: req.DownloadSpeed,
		UploadSpeed:   req.UploadSpeed,
		Ping:          req.Ping,
		Jitter:        req.Jitter,
		ServerLabel:   strings.TrimSpace(req.Server),
		CreatedAt:     time.Now().UTC(),
	}

	if err := s.speedTests.Create(ctx, st); err != nil {
		return models.SpeedTest{}, err
	}
	return st, nil
}

// History returns the most recent samples, newest first, never more
// than the configured cap. Authenticated callers see only their own
// samples.
func (s *SpeedTestService) History(ctx context.Context, userID *uuid.UUID) ([]models.SpeedTest, error) {
	return s.speedTests.ListRecent(ctx, userID, s.historyLimit)
}
