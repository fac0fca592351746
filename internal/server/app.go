// Package server initializes and runs the warehouse API server.
// It wires the credential store, token codec, services and the HTTP
// boundary, and handles graceful shutdown on OS signals.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/akarpenko/warehouse-api/internal/logging"
	"github.com/akarpenko/warehouse-api/internal/server/auth"
	"github.com/akarpenko/warehouse-api/internal/server/config"
	"github.com/akarpenko/warehouse-api/internal/server/httpapi"
	"github.com/akarpenko/warehouse-api/internal/server/repositories/repomanager"
	"github.com/akarpenko/warehouse-api/internal/server/services"
)

type App struct {
	config  *config.Config
	logger  logging.Logger
	repos   repomanager.RepositoryManager
	handler *httpapi.Handler
}

// NewApp builds the full object graph. An empty DatabaseDSN selects the
// in-memory stores with development fixtures; anything else is a pgx DSN.
func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {
	logger := logging.NewSlogLogger(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	var (
		repos repomanager.RepositoryManager
		err   error
	)
	if cfg.DatabaseDSN == "" {
		logger.Info(ctx, "no database DSN configured, using in-memory stores")
		repos, err = repomanager.NewMemory(ctx, cfg.BcryptCost)
	} else {
		repos, err = repomanager.NewPostgres(ctx, cfg.DatabaseDSN)
	}
	if err != nil {
		return nil, fmt.Errorf("store init error: %w", err)
	}

	codec := auth.NewCodec([]byte(cfg.SigningKey), cfg.Issuer, cfg.Audience, cfg.TokenValidity)

	authSvc := services.NewAuthService(repos.Users(), codec, logger)
	inventorySvc := services.NewInventoryService(repos.Items(), repos.Users(), logger)

	handler := httpapi.NewHandler(authSvc, inventorySvc, codec, httpapi.NewMetrics(), logger)

	return &App{config: cfg, logger: logger, repos: repos, handler: handler}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) startHTTPServer(ctx context.Context, cancelFunc context.CancelFunc) {
	s := httpapi.NewServer(app.config.HTTPAddr, app.handler.Router(), app.logger)

	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

func (app *App) Run(ctx context.Context) {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.startHTTPServer(ctx, cancelFunc)
	}()

	wg.Wait()

	if err := app.repos.Close(); err != nil {
		app.logger.Error(ctx, "store close error", "error", err)
	}
}
