package server

import (
	"context"

	xhttp "InsiderPull/pkg/http"
	applogger "InsiderPull/pkg/logger"
)

// App serves the published report over HTTP until its context ends.
type App struct {
	httpServer *xhttp.Server
	log        *applogger.Logger
}

// New creates a new App instance.
func New(httpServer *xhttp.Server, log *applogger.Logger) *App {
	return &App{httpServer: httpServer, log: log}
}

// Run starts the HTTP server and blocks until ctx is cancelled or the
// listener fails.
func (a *App) Run(ctx context.Context) error {
	errCh := a.httpServer.Start()

	select {
	case err := <-errCh:
		if err != nil {
			a.log.Error("http server start error", applogger.Error(err))
			return err
		}
		return nil
	case <-ctx.Done():
	}

	a.log.Info("shutdown signal received")
	// ctx is already done; give shutdown a fresh one bounded by the server's own timeout.
	if err := a.httpServer.Stop(context.Background()); err != nil {
		a.log.Error("http shutdown error", applogger.Error(err))
		return err
	}
	a.log.Info("shutdown complete")
	return nil
}
