package app

import (
	"context"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/numbox/random-number-service/internal/config"
	"github.com/numbox/random-number-service/internal/httpapi"
	"github.com/numbox/random-number-service/internal/httpapi/handlers"
	httpmiddleware "github.com/numbox/random-number-service/internal/httpapi/middleware"
	"github.com/numbox/random-number-service/internal/metrics"
	"github.com/numbox/random-number-service/internal/random"
)

// App wires core dependencies and exposes server lifecycle controls.
type App struct {
	cfg        *config.Config
	logger     *zap.Logger
	httpServer *http.Server
}

// New constructs the application.
func New(cfg *config.Config, logger *zap.Logger) *App {
	m := metrics.New()
	generator := random.New()

	randomHandler := handlers.NewRandomHandler(generator, m.NumbersGenerated, logger)

	router := httpapi.NewRouter(httpapi.RouterDeps{
		RootHandler:    handlers.Root,
		HealthHandler:  handlers.Health,
		RandomHandler:  randomHandler.Get,
		MetricsHandler: m.Handler(),
		RequestLogger:  httpmiddleware.RequestLogger(logger, m),
	})

	server := &http.Server{
		Addr:              cfg.HTTP.Addr(),
		Handler:           router,
		ReadTimeout:       cfg.HTTP.ReadTimeout,
		ReadHeaderTimeout: cfg.HTTP.ReadHeaderTimeout,
		WriteTimeout:      cfg.HTTP.WriteTimeout,
		IdleTimeout:       cfg.HTTP.IdleTimeout,
	}

	return &App{
		cfg:        cfg,
		logger:     logger,
		httpServer: server,
	}
}

// Run starts the HTTP server and blocks until it stops.
func (a *App) Run() error {
	a.logger.Info("starting HTTP server",
		zap.String("addr", a.httpServer.Addr),
		zap.String("service", config.ServiceName),
	)
	if err := a.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown gracefully stops the HTTP server.
func (a *App) Shutdown(ctx context.Context) error {
	return a.httpServer.Shutdown(ctx)
}
