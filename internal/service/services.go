package service

import (
	"context"

	"github.com/kirubhel/redcross-client/internal/adapter"
	"github.com/kirubhel/redcross-client/internal/logger"
	"github.com/kirubhel/redcross-client/internal/store"
)

// ClientServices bundles the wired service graph handed to the transports
// (terminal UI, local HTTP facade) and the background workers.
type ClientServices struct {
	Monitor ConnectivityMonitor
	Sync    SyncService
	Queue   QueueService
	Cache   CacheService
	Auth    AuthService
	SyncJob SyncJob
}

// NewClientServices wires the full offline core: the handler registry over
// the server adapter, the sync engine over the durable queue, and the
// monitor hook that drains the queue as soon as connectivity returns.
func NewClientServices(storages *store.ClientStorages, serverAdapter adapter.ServerAdapter, log *logger.Logger) *ClientServices {
	monitor := NewConnectivityMonitor(log)
	registry := DefaultHandlerRegistry(serverAdapter)
	syncSvc := NewSyncService(storages.PendingOperations, serverAdapter, registry, monitor, log)
	queueSvc := NewQueueService(storages.PendingOperations, syncSvc, monitor, log)
	cacheSvc := NewCacheService(storages.OfflineData, log)
	authSvc := NewAuthService(storages.Sessions, serverAdapter, log)

	monitor.OnOnline(func() {
		if err := syncSvc.Sync(context.Background()); err != nil {
			log.Error().Err(err).Str("func", "OnOnline").Msg("sync on reconnect failed")
		}
	})

	return &ClientServices{
		Monitor: monitor,
		Sync:    syncSvc,
		Queue:   queueSvc,
		Cache:   cacheSvc,
		Auth:    authSvc,
		SyncJob: NewSyncJob(syncSvc, monitor),
	}
}
