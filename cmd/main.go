package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/okian/scouthub/internal/adapters/http/api"
	"github.com/okian/scouthub/internal/adapters/http/site"
	"github.com/okian/scouthub/internal/adapters/http/swagger"
	"github.com/okian/scouthub/internal/adapters/repository"
	app "github.com/okian/scouthub/internal/app"
	"github.com/okian/scouthub/internal/config"
	"github.com/okian/scouthub/pkg/logger"
	"github.com/okian/scouthub/pkg/metrics"

	"github.com/prometheus/client_golang/prometheus/collectors"
)

// HTTP server timeout constants.
const (
	readTimeout       = 10 * time.Second
	writeTimeout      = 10 * time.Second
	idleTimeout       = 60 * time.Second
	readHeaderTimeout = 5 * time.Second
	shutdownTimeout   = 30 * time.Second
)

func main() {
	if err := logger.Init(); err != nil {
		// Use stderr for initialization errors since logger isn't available yet
		os.Stderr.WriteString("failed to initialize logging: " + err.Error() + "\n")
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	// Root context with cancel on SIGINT/SIGTERM.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Load configuration (defaults -> optional file -> env)
	cfg, err := config.Load(ctx)
	if err != nil {
		os.Stderr.WriteString("failed to load config: " + err.Error() + "\n")
		os.Exit(1)
	}

	configureMetrics(cfg)

	if err := run(ctx, cfg, logger.Get()); err != nil {
		logger.Get().Error(ctx, "server exited", logger.Error(err))
		os.Exit(1)
	}
}

// run starts the service and serves HTTP until ctx is cancelled.
func run(ctx context.Context, cfg *config.Config, log logger.Logger) error {
	// Apply configured log level (fallback to info on invalid input)
	if err := logger.SetLevelString(cfg.LogLevel); err != nil {
		log.Warn(ctx, "invalid log_level; falling back to info", logger.String("log_level", cfg.LogLevel), logger.Error(err))
		_ = logger.SetLevelString("info")
	}

	svc := newService(cfg, log)
	if err := svc.Start(ctx); err != nil {
		return err
	}
	defer svc.Stop()

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           newHandler(ctx, svc),
		ReadTimeout:       readTimeout,
		WriteTimeout:      writeTimeout,
		IdleTimeout:       idleTimeout,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info(ctx, "starting HTTP server", logger.String("addr", cfg.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return err
		}
	case <-ctx.Done():
	}
	log.Info(ctx, "shutting down server...")

	// Graceful shutdown with timeout
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error(ctx, "server shutdown failed", logger.Error(err))
		return err
	}

	log.Info(ctx, "server stopped")
	return nil
}

// configureMetrics rebuilds the global metrics registry under the configured
// namespace, subsystem and constant labels.
func configureMetrics(cfg *config.Config) {
	metrics.Configure(
		metrics.WithNamespace(cfg.MetricsNamespace),
		metrics.WithSubsystem(cfg.MetricsSubsystem),
		metrics.WithConstLabels(cfg.MetricsLabels),
	)
	// Build info is the only runtime collector on the custom registry.
	_ = metrics.GetRegistry().Register(collectors.NewBuildInfoCollector())
}

// newService builds the store and service from configuration.
func newService(cfg *config.Config, log logger.Logger) *app.Service {
	var source repository.Source = repository.NewEmbeddedSource()
	if cfg.DataPath != "" {
		source = repository.NewFileSource(cfg.DataPath)
	}
	store := repository.NewMemoryStore(source, repository.WithLogger(log.Named("repository")))

	return app.New(
		app.WithStore(store),
		app.WithLogger(log.Named("service")),
		app.WithSearchLimit(cfg.SearchLimit),
		app.WithLeaderboardLimits(cfg.LeaderboardLimit, cfg.MaxLeaderboardLimit),
		app.WithFeaturedCount(cfg.FeaturedCount),
	)
}

// newHandler registers every route and wraps the mux with request ids.
func newHandler(ctx context.Context, svc *app.Service) http.Handler {
	mux := http.NewServeMux()

	// Landing page at /, API docs at /api-docs and /openapi.yaml.
	site.Register(ctx, mux)
	swagger.Register(ctx, mux)

	api.NewServer(svc).Register(ctx, mux)

	return api.RequestIDMiddleware(mux)
}
