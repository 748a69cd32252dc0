// Package server initializes and runs the registry server: it opens the
// storage backend, runs migrations, optionally seeds demo data, and serves
// the TCP endpoint until shutdown.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/dmitrijs2005/medregistry/internal/logging"
	"github.com/dmitrijs2005/medregistry/internal/server/config"
	"github.com/dmitrijs2005/medregistry/internal/server/registry"
	"github.com/dmitrijs2005/medregistry/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/medregistry/internal/server/tcp"
)

type App struct {
	config   *config.Config
	logger   logging.Logger
	manager  repomanager.Manager
	registry *registry.Service
}

func NewApp(c *config.Config) (*App, error) {

	slogger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	logger := logging.NewSlogLogger(slogger)

	mgr, err := repomanager.New(c.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	svc := registry.NewService(mgr, logger)

	return &App{config: c, logger: logger, manager: mgr, registry: svc}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	// Channel to catch OS signals.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) startTCPServer(ctx context.Context, cancelFunc context.CancelFunc) {

	handler := tcp.NewHandler(app.registry)
	s := tcp.NewServer(app.config.EndpointAddr, handler, app.logger, app.config.MaxRequestBytes)

	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

func (app *App) Run(ctx context.Context) {

	ctx, cancelFunc := context.WithCancel(ctx)

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	if app.config.SeedDemoData {
		if err := app.registry.Seed(ctx); err != nil {
			app.logger.Error(ctx, "demo data seeding failed", "error", err.Error())
		}
	}

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.startTCPServer(ctx, cancelFunc)
	}()

	wg.Wait()

	if err := app.manager.Close(); err != nil {
		app.logger.Error(ctx, "db close error", "error", err.Error())
	}
}
