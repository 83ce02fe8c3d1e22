package client

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/kirubhel/redcross-client/internal/adapter"
	"github.com/kirubhel/redcross-client/internal/config"
	handler "github.com/kirubhel/redcross-client/internal/handler/http"
	"github.com/kirubhel/redcross-client/internal/logger"
	"github.com/kirubhel/redcross-client/internal/service"
	"github.com/kirubhel/redcross-client/internal/store"
	"github.com/kirubhel/redcross-client/internal/tui"
	"github.com/kirubhel/redcross-client/internal/workers"
)

const facadeShutdownTimeout = 3 * time.Second

type App struct {
	services *service.ClientServices
	ui       *tui.TUI
	workers  *workers.Workers
	facade   *http.Server
	cfg      config.ClientWorkers
	logger   *logger.Logger
}

func NewApp(
	services *service.ClientServices,
	ui *tui.TUI,
	serverAdapter adapter.ServerAdapter,
	cfg *config.ClientConfig,
	log *logger.Logger,
) (*App, error) {
	prober := workers.NewConnectivityProber(serverAdapter, services.Monitor, cfg.Workers.ProbeInterval, log)

	facade := &http.Server{
		Addr:    cfg.Facade.Address,
		Handler: handler.NewHandler(services, log).Init(),
	}

	return &App{
		services: services,
		ui:       ui,
		workers:  workers.NewWorkers(prober),
		facade:   facade,
		cfg:      cfg.Workers,
		logger:   log,
	}, nil
}

func (a *App) Run() error {
	ctx := context.Background()
	defer a.services.Monitor.Close()

	a.workers.Run(ctx)
	defer a.workers.Stop()

	go func() {
		if err := a.facade.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.logger.Error().Err(err).Msg("local facade stopped")
		}
	}()
	defer a.stopFacade()

	return a.run(ctx)
}

// run holds the login/main-loop cycle so logout can restart it without
// re-arming the workers and the facade.
func (a *App) run(ctx context.Context) error {
	_, err := a.services.Auth.RestoreSession(ctx)
	if err != nil {
		if !errors.Is(err, store.ErrLocalSessionNotFound) && !errors.Is(err, service.ErrTokenExpired) {
			return fmt.Errorf("restore session: %w", err)
		}

		if _, err = a.ui.LoginFlow(ctx); err != nil {
			if errors.Is(err, tui.ErrUserQuit) {
				return nil
			}
			return err
		}
	}

	// drain whatever queued up while we were logged out or offline
	if err = a.services.Sync.Sync(ctx); err != nil {
		a.logger.Warn().Err(err).Msg("initial sync pass failed")
	}

	a.services.SyncJob.Start(ctx, a.cfg.SyncInterval)
	defer a.services.SyncJob.Stop()

	logout, err := a.ui.MainLoop(ctx)
	if err != nil {
		return err
	}
	if logout {
		a.services.SyncJob.Stop()
		if err = a.services.Auth.Logout(ctx); err != nil {
			a.logger.Error().Err(err).Msg("logout failed")
		}
		return a.run(ctx)
	}

	return nil
}

func (a *App) stopFacade() {
	shutdownCtx, cancel := context.WithTimeout(context.Background(), facadeShutdownTimeout)
	defer cancel()

	if err := a.facade.Shutdown(shutdownCtx); err != nil {
		a.logger.Error().Err(err).Msg("facade shutdown failed")
	}
}
