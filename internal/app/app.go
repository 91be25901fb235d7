// Package app wires configuration, logging, metrics, the dashboard service
// and the HTTP router into a runnable application.
package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"golang.org/x/sync/errgroup"

	"fundcli/internal/config"
	"fundcli/internal/infrastructure"
	custommiddleware "fundcli/internal/middleware"
	"fundcli/internal/services"
	handlers "fundcli/internal/transport/http"
)

// Version identifies the build in health responses and startup logs.
const Version = "1.0.0"

// Application is the main application container.
type Application struct {
	Config    *config.Config
	Logger    *slog.Logger
	Metrics   *infrastructure.Metrics
	Dashboard *services.DashboardService
	Router    *chi.Mux
	Server    *http.Server
}

// NewApplication loads configuration, initializes the logger and metrics,
// loads and memoizes the cleaned dataset, and assembles the router. A raw
// input that fails the schema check aborts startup: the server never runs
// without a dataset.
func NewApplication(ctx context.Context) (*Application, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	logger, err := infrastructure.InitializeLogger(cfg.Logging)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	logger.Info("application starting",
		slog.String("version", Version),
		slog.Int("port", cfg.Server.Port),
		slog.String("raw_file", cfg.Paths.RawFile))

	if err := cfg.EnsureDirectories(); err != nil {
		return nil, fmt.Errorf("failed to ensure directories: %w", err)
	}

	metrics := infrastructure.NewMetrics()
	dashboard := services.NewDashboardService(logger, metrics)

	if _, err := dashboard.LoadFromFile(ctx, cfg.Paths.RawFile); err != nil {
		return nil, fmt.Errorf("failed to load raw dataset: %w", err)
	}

	app := &Application{
		Config:    cfg,
		Logger:    logger,
		Metrics:   metrics,
		Dashboard: dashboard,
	}
	app.Router = app.buildRouter()
	app.Server = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      app.Router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}
	return app, nil
}

func (app *Application) buildRouter() *chi.Mux {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(custommiddleware.RequestLogger(app.Logger))
	r.Use(custommiddleware.RequestMetrics(app.Metrics))
	r.Use(chimiddleware.Recoverer)
	if app.Config.RateLimit.Enabled {
		r.Use(custommiddleware.RateLimit(app.Config.RateLimit.RPS, app.Config.RateLimit.Burst))
	}

	dashboardHandler := handlers.NewDashboardHandler(app.Dashboard, app.Logger)
	healthHandler := handlers.NewHealthHandler(Version)

	r.Route("/api", func(r chi.Router) {
		r.Mount("/", dashboardHandler.Routes())
		r.Get("/health", healthHandler.GetHealth)
	})
	r.Method(http.MethodGet, "/metrics", app.Metrics.Handler())

	return r
}

// Run starts the HTTP server and blocks until the context is cancelled or
// the server fails, then shuts down gracefully within the configured
// timeout.
func (app *Application) Run(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		app.Logger.Info("http server listening", slog.String("addr", app.Server.Addr))
		if err := app.Server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return fmt.Errorf("http server failed: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		app.Logger.Info("shutting down http server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), app.Config.Server.ShutdownTimeout)
		defer cancel()
		if err := app.Server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
		return nil
	})

	err := g.Wait()
	if closeErr := infrastructure.CloseLogger(); closeErr != nil && err == nil {
		err = closeErr
	}
	return err
}
