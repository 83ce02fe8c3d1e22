package workers

import (
	"context"
	"sync"
	"time"

	"github.com/kirubhel/redcross-client/internal/logger"
)

const (
	defaultProbeInterval = 15 * time.Second
	probeTimeout         = 5 * time.Second
)

// Pinger is the slice of the server adapter the prober needs.
type Pinger interface {
	Ping(ctx context.Context) error
}

// ConnectivitySink receives the prober's observations.
type ConnectivitySink interface {
	SetOnline(online bool)
}

type connectivityProber struct {
	pinger   Pinger
	sink     ConnectivitySink
	logger   *logger.Logger
	interval time.Duration

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewConnectivityProber creates a worker that pings the server's health
// endpoint on a ticker and reports reachability to the sink. The prober is
// idle until Run is called.
func NewConnectivityProber(pinger Pinger, sink ConnectivitySink, interval time.Duration, log *logger.Logger) Worker {
	if interval <= 0 {
		interval = defaultProbeInterval
	}
	return &connectivityProber{pinger: pinger, sink: sink, logger: log, interval: interval}
}

// Run implements Worker. The first probe fires immediately so a client
// that boots offline finds out without waiting a full interval.
func (p *connectivityProber) Run(ctx context.Context) {
	p.Stop()

	p.mu.Lock()
	probeCtx, cancel := context.WithCancel(ctx)
	p.cancel = cancel
	p.wg.Add(1)
	p.mu.Unlock()

	go func() {
		defer p.wg.Done()

		p.probe(probeCtx)

		t := time.NewTicker(p.interval)
		defer t.Stop()

		for {
			select {
			case <-probeCtx.Done():
				return
			case <-t.C:
				p.probe(probeCtx)
			}
		}
	}()
}

// Stop implements Worker. Safe to call when the prober is not running.
func (p *connectivityProber) Stop() {
	p.mu.Lock()
	cancel := p.cancel
	p.cancel = nil
	p.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	p.wg.Wait()
}

func (p *connectivityProber) probe(ctx context.Context) {
	pingCtx, cancel := context.WithTimeout(ctx, probeTimeout)
	defer cancel()

	err := p.pinger.Ping(pingCtx)
	if err != nil && ctx.Err() != nil {
		// shutdown, not an observation
		return
	}
	if err != nil {
		p.logger.Debug().Err(err).Str("func", "probe").Msg("server unreachable")
	}

	p.sink.SetOnline(err == nil)
}
