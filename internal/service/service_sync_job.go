package service

import (
	"context"
	"sync"
	"time"
)

const defaultSyncInterval = 30 * time.Second

type syncJob struct {
	syncer  SyncService
	monitor ConnectivityMonitor

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewSyncJob creates a syncJob that drains the queue on a ticker. The job
// is idle until Start is called.
func NewSyncJob(syncer SyncService, monitor ConnectivityMonitor) SyncJob {
	return &syncJob{syncer: syncer, monitor: monitor}
}

// Start implements SyncJob. It stops any previously running job, then
// launches a background goroutine that syncs every interval while the
// client is online. The goroutine exits when ctx is cancelled or Stop is
// called.
func (j *syncJob) Start(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = defaultSyncInterval
	}

	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	go func() {
		defer j.wg.Done()
		t := time.NewTicker(interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				if !j.monitor.Online() {
					continue
				}
				_ = j.syncer.Sync(jobCtx)
			}
		}
	}()
}

// Stop implements SyncJob. It cancels the background goroutine's context
// and blocks until the goroutine has fully exited. Safe to call when the
// job is not running.
func (j *syncJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}
