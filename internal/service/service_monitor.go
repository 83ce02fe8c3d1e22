package service

import (
	"sync"
	"time"

	"github.com/kirubhel/redcross-client/internal/logger"
	"github.com/kirubhel/redcross-client/models"
)

// statusDecay is how long a finished pass keeps showing success or error
// before the status settles back to idle.
const statusDecay = 2 * time.Second

type connectivityMonitor struct {
	logger *logger.Logger

	mu       sync.Mutex
	online   bool
	status   models.SyncStatus
	onOnline func()
	decay    time.Duration
	// generation invalidates a pending decay when a newer pass starts
	generation uint64
	decayTimer *time.Timer
	closed     bool
}

// NewConnectivityMonitor returns a monitor that starts online and idle.
// The client assumes reachability at boot; the first failed probe or
// request corrects it.
func NewConnectivityMonitor(log *logger.Logger) ConnectivityMonitor {
	return &connectivityMonitor{
		logger: log,
		online: true,
		status: models.SyncIdle,
		decay:  statusDecay,
	}
}

func (m *connectivityMonitor) Online() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.online
}

func (m *connectivityMonitor) SetOnline(online bool) {
	m.mu.Lock()
	wasOnline := m.online
	m.online = online
	hook := m.onOnline
	m.mu.Unlock()

	if online == wasOnline {
		return
	}

	m.logger.Info().Str("func", "SetOnline").Bool("online", online).Msg("connectivity changed")

	if online && hook != nil {
		go hook()
	}
}

func (m *connectivityMonitor) OnOnline(fn func()) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.onOnline = fn
}

func (m *connectivityMonitor) BeginSync() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.generation++
	m.stopDecayLocked()
	m.status = models.SyncInProgress
}

func (m *connectivityMonitor) FinishSync(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err != nil {
		m.status = models.SyncError
	} else {
		m.status = models.SyncSuccess
	}

	if m.closed {
		return
	}

	gen := m.generation
	m.stopDecayLocked()
	m.decayTimer = time.AfterFunc(m.decay, func() {
		m.mu.Lock()
		defer m.mu.Unlock()
		if m.generation == gen && m.status != models.SyncInProgress {
			m.status = models.SyncIdle
		}
	})
}

func (m *connectivityMonitor) Snapshot() models.StatusSnapshot {
	m.mu.Lock()
	defer m.mu.Unlock()

	return models.StatusSnapshot{IsOnline: m.online, SyncStatus: m.status}
}

func (m *connectivityMonitor) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.closed = true
	m.stopDecayLocked()
}

func (m *connectivityMonitor) stopDecayLocked() {
	if m.decayTimer != nil {
		m.decayTimer.Stop()
		m.decayTimer = nil
	}
}
