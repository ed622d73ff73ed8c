package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"sanctions-watch/internal/config"
	hhttp "sanctions-watch/internal/handler/http"
	hdocument "sanctions-watch/internal/handler/http/document"
	hentity "sanctions-watch/internal/handler/http/entity"
	"sanctions-watch/internal/handler/http/requestid"
	"sanctions-watch/internal/observability/logging"
	"sanctions-watch/internal/observability/tracing"
	"sanctions-watch/internal/pkg/country"
	"sanctions-watch/internal/usecase/dataset"
	"sanctions-watch/internal/usecase/docproxy"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	logger := logging.NewLogger()
	slog.SetDefault(logger)

	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load configuration", slog.Any("error", err))
		os.Exit(1)
	}

	country.SetAliases(cfg.CountryAliases)

	loader := &dataset.Loader{
		Path: cfg.DatasetPath,
		Normalizer: &dataset.Normalizer{
			SensitivePrefixes: cfg.SensitivePrefixes,
		},
		Logger:       logger,
		DisableCache: cfg.DisableCache,
	}
	svc := &dataset.Service{Loader: loader}

	refresher := startRefresher(logger, cfg, loader)
	if refresher != nil {
		defer refresher.Stop()
	}

	handler := setupHandler(logger, cfg, svc)
	runServer(logger, cfg, handler)
}

// startRefresher starts the cron cache warmer when a schedule is configured.
func startRefresher(logger *slog.Logger, cfg *config.Config, loader *dataset.Loader) *dataset.Refresher {
	if cfg.RefreshSchedule == "" || cfg.DisableCache {
		return nil
	}
	refresher, err := dataset.StartRefresher(loader, cfg.RefreshSchedule, logger)
	if err != nil {
		logger.Error("invalid refresh schedule",
			slog.String("schedule", cfg.RefreshSchedule),
			slog.Any("error", err))
		os.Exit(1)
	}
	logger.Info("dataset refresher started", slog.String("schedule", cfg.RefreshSchedule))
	return refresher
}

// setupHandler registers all routes and wraps them in the middleware chain.
func setupHandler(logger *slog.Logger, cfg *config.Config, svc *dataset.Service) http.Handler {
	fetcher := docproxy.NewFetcher(cfg.ProxyTimeout)

	mux := http.NewServeMux()
	hentity.Register(mux, svc, cfg.BaseURL, logger)
	mux.Handle("GET /proxy/document/{reference}", hdocument.ProxyHandler{
		Svc:     svc,
		Fetcher: fetcher,
		Logger:  logger,
	})

	mux.Handle("/health", &hhttp.HealthHandler{DatasetPath: cfg.DatasetPath, Version: getVersion()})
	mux.Handle("/ready", &hhttp.ReadyHandler{DatasetPath: cfg.DatasetPath})
	mux.Handle("/live", &hhttp.LiveHandler{})
	mux.Handle("/metrics", hhttp.MetricsHandler())

	// Middleware chain, innermost first: metrics → body limit → logging →
	// recover → tracing → request ID → CORS.
	var handler http.Handler = mux
	handler = hhttp.MetricsMiddleware(handler)
	handler = hhttp.LimitRequestBody(1 << 20)(handler)
	handler = hhttp.Logging(logger)(handler)
	handler = hhttp.Recover(logger)(handler)
	handler = tracing.Middleware(handler)
	handler = requestid.Middleware(handler)
	handler = hhttp.CORS(cfg.AllowedOrigins)(handler)

	return handler
}

// getVersion returns the application version from environment or default.
func getVersion() string {
	version := os.Getenv("VERSION")
	if version == "" {
		version = "dev"
	}
	return version
}

// runServer starts the HTTP server and handles graceful shutdown.
func runServer(logger *slog.Logger, cfg *config.Config, handler http.Handler) {
	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second, // Prevent Slowloris attacks
	}

	go func() {
		logger.Info("server starting",
			slog.String("addr", cfg.Addr),
			slog.String("dataset", cfg.DatasetPath),
			slog.String("version", getVersion()))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server failed", slog.Any("error", err))
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown failed", slog.Any("error", err))
	}
	logger.Info("server stopped")
}
