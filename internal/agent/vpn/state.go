// Package vpn drives the client-side connection lifecycle.
//
// The connection goes through four statuses: disconnected, connecting,
// connected and back to disconnected. The transition into connected
// passes through a cancellable handshake delay followed by the server
// call; cancellation or a server error returns the machine to
// disconnected. While connected a 1 Hz ticker keeps an elapsed-seconds
// counter.
package vpn

import (
	"context"
	"errors"
	"math/rand"
	"sync"
	"time"

	"github.com/fbivlabs/fbiv-vpn/internal/shared/models"
)

// Status names the current state of the connection machine.
type Status string

const (
	StatusDisconnected Status = "disconnected"
	StatusConnecting   Status = "connecting"
	StatusConnected    Status = "connected"
)

// ErrAlreadyConnecting is returned when Connect is called while a
// previous Connect is still in flight.
var ErrAlreadyConnecting = errors.New("connection attempt already in progress")

// ErrAlreadyConnected is returned when Connect is called while a
// session is already active. Disconnect first.
var ErrAlreadyConnected = errors.New("already connected")

// handshake delay bounds for the simulated tunnel setup.
const (
	handshakeMin = 1500 * time.Millisecond
	handshakeJit = 1000 * time.Millisecond
)

// Dialer is the server surface the machine needs. *api.Client
// satisfies it.
type Dialer interface {
	Connect(serverID int64, token string) (models.ConnectResponse, error)
	Disconnect(token string) (models.DisconnectResponse, error)
}

// Machine is the connection state machine. Safe for concurrent use.
type Machine struct {
	mu      sync.Mutex
	status  Status
	server  *models.Server
	started time.Time
	elapsed int64
	cancel  context.CancelFunc
	done    chan struct{}

	dial  Dialer
	token string

	// sleep is swapped out in tests to skip the handshake delay.
	sleep func(ctx context.Context, d time.Duration) error
}

// NewMachine creates a machine in the disconnected status.
func NewMachine(dial Dialer, token string) *Machine {
	return &Machine{
		status: StatusDisconnected,
		dial:   dial,
		token:  token,
		sleep:  sleepCtx,
	}
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// Status returns the current status.
func (m *Machine) Status() Status {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.status
}

// Server returns the server of the active or in-flight session, nil
// when disconnected.
func (m *Machine) Server() *models.Server {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.server
}

// Elapsed returns the seconds spent in the connected status. Zero when
// not connected.
func (m *Machine) Elapsed() int64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.elapsed
}

// Connect runs the full transition disconnected -> connecting ->
// connected against the given server.
//
// The handshake delay of 1.5-2.5 s is cancellable through ctx; on
// cancellation or a server error the machine returns to disconnected.
// A second Connect during the attempt fails with ErrAlreadyConnecting,
// during an active session with ErrAlreadyConnected.
func (m *Machine) Connect(ctx context.Context, server *models.Server) (models.ConnectResponse, error) {
	m.mu.Lock()
	switch m.status {
	case StatusConnecting:
		m.mu.Unlock()
		return models.ConnectResponse{}, ErrAlreadyConnecting
	case StatusConnected:
		m.mu.Unlock()
		return models.ConnectResponse{}, ErrAlreadyConnected
	}
	ctx, cancel := context.WithCancel(ctx)
	m.status = StatusConnecting
	m.server = server
	m.cancel = cancel
	m.mu.Unlock()

	delay := handshakeMin + time.Duration(rand.Int63n(int64(handshakeJit)))
	if err := m.sleep(ctx, delay); err != nil {
		m.reset()
		return models.ConnectResponse{}, err
	}

	resp, err := m.dial.Connect(server.ID, m.token)
	if err != nil {
		m.reset()
		return models.ConnectResponse{}, err
	}

	m.mu.Lock()
	m.status = StatusConnected
	m.started = time.Now()
	m.elapsed = 0
	m.done = make(chan struct{})
	go m.tick(m.done)
	m.mu.Unlock()

	return resp, nil
}

// Cancel aborts an in-flight connection attempt. A no-op in any other
// status.
func (m *Machine) Cancel() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.status == StatusConnecting && m.cancel != nil {
		m.cancel()
	}
}

// Disconnect ends the active session and returns the machine to
// disconnected. Idempotent: calling it while already disconnected
// succeeds without a server call.
func (m *Machine) Disconnect() (models.DisconnectResponse, error) {
	m.mu.Lock()
	if m.status != StatusConnected {
		m.mu.Unlock()
		return models.DisconnectResponse{Success: true, Message: "Disconnected from VPN"}, nil
	}
	m.mu.Unlock()

	resp, err := m.dial.Disconnect(m.token)
	if err != nil {
		return models.DisconnectResponse{}, err
	}
	m.reset()
	return resp, nil
}

// tick advances the elapsed counter once per second until the session
// ends.
func (m *Machine) tick(done chan struct{}) {
	t := time.NewTicker(time.Second)
	defer t.Stop()
	for {
		select {
		case <-done:
			return
		case <-t.C:
			m.mu.Lock()
			if m.status == StatusConnected {
				m.elapsed = int64(time.Since(m.started).Seconds())
			}
			m.mu.Unlock()
		}
	}
}

// reset returns the machine to the disconnected status, stopping the
// ticker and clearing session fields.
func (m *Machine) reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.done != nil {
		close(m.done)
		m.done = nil
	}
	if m.cancel != nil {
		m.cancel()
		m.cancel = nil
	}
	m.status = StatusDisconnected
	m.server = nil
	m.started = time.Time{}
	m.elapsed = 0
}
