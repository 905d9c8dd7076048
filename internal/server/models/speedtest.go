package models

import (
	"time"

	"github.com/google/uuid"
)

// SpeedTest is a stored speed-test sample. UserID is nil for anonymous
// submissions.
type SpeedTest struct {
	ID            uuid.UUID
	UserID        *uuid.UUID
	DownloadSpeed float64
	UploadSpeed   float64
	Ping          int
	Jitter        float64
	ServerLabel   string
	CreatedAt     time.Time
}
