package vpn

import (
	"context"
	"math/rand"
	"time"

	"github.com/fbivlabs/fbiv-vpn/internal/shared/models"
)

// SpeedPhase names the current stage of a running speed test.
type SpeedPhase string

const (
	PhasePing     SpeedPhase = "ping"
	PhaseDownload SpeedPhase = "download"
	PhaseUpload   SpeedPhase = "upload"
	PhaseDone     SpeedPhase = "done"
)

// per-phase durations of the simulated measurement.
const (
	pingPhase     = 800 * time.Millisecond
	downloadPhase = 2 * time.Second
	uploadPhase   = 2 * time.Second
)

// SpeedTester runs simulated speed tests. The measurement itself is
// synthetic; the numbers fall in realistic ranges for a consumer VPN
// and the result is shaped for submission to the server.
type SpeedTester struct {
	// sleep is swapped out in tests to skip phase delays.
	sleep func(ctx context.Context, d time.Duration) error

	// Progress, when set, receives the phase transitions.
	Progress func(SpeedPhase)
}

// NewSpeedTester creates a tester with real phase durations.
func NewSpeedTester() *SpeedTester {
	return &SpeedTester{sleep: sleepCtx}
}

// Run performs the three measurement phases in order: ping, download,
// upload. Cancellation through ctx aborts the test between phases and
// returns the context error.
//
// serverLabel is the display label stored with the result, e.g.
// "US East - New York"; when no server is connected the caller passes
// "Not connected".
func (t *SpeedTester) Run(ctx context.Context, serverLabel string) (models.SpeedTestRequest, error) {
	t.phase(PhasePing)
	if err := t.sleep(ctx, pingPhase); err != nil {
		return models.SpeedTestRequest{}, err
	}
	ping := 5 + rand.Intn(40)
	jitter := round1(1 + rand.Float64()*9)

	t.phase(PhaseDownload)
	if err := t.sleep(ctx, downloadPhase); err != nil {
		return models.SpeedTestRequest{}, err
	}
	download := round1(50 + rand.Float64()*150)

	t.phase(PhaseUpload)
	if err := t.sleep(ctx, uploadPhase); err != nil {
		return models.SpeedTestRequest{}, err
	}
	upload := round1(20 + rand.Float64()*80)

	t.phase(PhaseDone)
	return models.SpeedTestRequest{
		DownloadSpeed: download,
		UploadSpeed:   upload,
		Ping:          ping,
		Jitter:        jitter,
		Server:        serverLabel,
	}, nil
}

func (t *SpeedTester) phase(p SpeedPhase) {
	if t.Progress != nil {
		t.Progress(p)
	}
}

func round1(v float64) float64 {
	return float64(int(v*10+0.5)) / 10
}
