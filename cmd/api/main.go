// Package main is the entry point for the Trip Logbook API server.
// Its sole responsibility is wiring dependencies together and starting the server.
// No business logic belongs here.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/pkordes/trip-logbook/backend/internal/config"
	"github.com/pkordes/trip-logbook/backend/internal/geocode"
	"github.com/pkordes/trip-logbook/backend/internal/handler"
	"github.com/pkordes/trip-logbook/backend/internal/middleware"
	"github.com/pkordes/trip-logbook/backend/internal/repo"
	"github.com/pkordes/trip-logbook/backend/internal/service"
	"github.com/pkordes/trip-logbook/backend/internal/upstream"
	"github.com/pkordes/trip-logbook/backend/internal/weather"
	"github.com/pkordes/trip-logbook/backend/migrations"
	"github.com/pkordes/trip-logbook/backend/spec"
)

func main() {
	// --- Config -----------------------------------------------------------
	cfg, err := config.Load()
	if err != nil {
		// Use plain stderr before the logger is configured.
		slog.Error("configuration error", "error", err)
		os.Exit(1)
	}

	// --- Logger -----------------------------------------------------------
	// JSON handler writes machine-readable output suitable for log aggregators.
	var logLevel slog.Level
	if err := logLevel.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		logLevel = slog.LevelInfo
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	// --- Trip store -------------------------------------------------------
	store, closeStore, err := newDocumentStore(context.Background(), cfg)
	if err != nil {
		slog.Error("failed to set up trip store", "backend", cfg.StoreBackend, "error", err)
		os.Exit(1)
	}
	defer closeStore()
	slog.Info("trip store ready", "backend", cfg.StoreBackend)

	// --- Services ---------------------------------------------------------
	tripRepo := repo.NewTripRepo(store)
	geocoder := geocode.New(upstream.New("geocoder", cfg.UpstreamTimeout), cfg.GeocoderURL, cfg.GeocoderUserAgent)
	forecaster := weather.New(upstream.New("weather", cfg.UpstreamTimeout), cfg.WeatherURL)

	srv := handler.NewServer(
		service.NewTripService(tripRepo),
		service.NewLocationService(geocoder, forecaster),
		service.NewPreferenceService(cfg.PreferencesPath),
		service.NewExportService(tripRepo),
	)

	// --- Router -----------------------------------------------------------
	// Middleware is applied in order: RequestID → RealIP → Logger → Recoverer
	// → Metrics → CORS → MaxBodySize → lookup rate limit.
	// RealIP must run before the rate limiter so it keys on the client address.
	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.NewSlogLogger(logger))
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.NewMetricsRecorder())
	r.Use(middleware.NewCORSHandler(cfg.CORSOrigins))
	r.Use(middleware.NewMaxBodySizeHandler(cfg.MaxBodyBytes))
	r.Use(middleware.NewLookupRateLimiter(cfg.LookupRateLimit, "/locations", "/weather"))

	r.Handle("/metrics", promhttp.Handler())
	r.Get("/openapi.yaml", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/yaml")
		_, _ = w.Write(spec.OpenAPI)
	})
	handler.NewHTTPHandler(srv, r)

	// --- HTTP Server ------------------------------------------------------
	// Explicit timeouts prevent slowloris and resource exhaustion attacks.
	// WriteTimeout leaves room for one upstream call at its own timeout.
	httpSrv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: cfg.UpstreamTimeout + 5*time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown: wait for OS signal, then give in-flight requests
	// up to 15 seconds to complete before forcefully closing.
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		slog.Info("server starting", "addr", httpSrv.Addr)
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	<-stop
	slog.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := httpSrv.Shutdown(ctx); err != nil {
		slog.Error("shutdown error", "error", err)
		os.Exit(1)
	}
	slog.Info("server stopped")
}

// maxDocumentBytes bounds the trip document read from the remote store.
const maxDocumentBytes = 64 << 20

// newDocumentStore builds the DocumentStore selected by cfg.StoreBackend.
// The returned func releases whatever the store holds open.
func newDocumentStore(ctx context.Context, cfg config.Config) (repo.DocumentStore, func(), error) {
	if cfg.StoreBackend != config.BackendPostgres {
		if cfg.TripsAPIURL == "" || cfg.TripsAPIKey == "" {
			slog.Warn("TRIPS_API_URL or TRIPS_API_KEY not set; trip operations will fail until configured")
		}
		client := upstream.New("document-store", cfg.UpstreamTimeout, upstream.WithMaxBodyBytes(maxDocumentBytes))
		return repo.NewHTTPDocumentStore(client, cfg.TripsAPIURL, cfg.TripsAPIKey, cfg.TripsAPIKeyHeader), func() {}, nil
	}

	// pgxpool.New does not open connections immediately; the first query does.
	pool, err := pgxpool.New(ctx, cfg.DatabaseURL)
	if err != nil {
		return nil, nil, fmt.Errorf("create database pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, nil, fmt.Errorf("connect to database: %w", err)
	}

	// goose needs database/sql; borrow a handle backed by the same pool.
	db := stdlib.OpenDBFromPool(pool)
	n, err := migrations.Up(ctx, db)
	_ = db.Close()
	if err != nil {
		pool.Close()
		return nil, nil, err
	}
	slog.Info("database migrations applied", "count", n)

	return repo.NewPostgresDocumentStore(pool), pool.Close, nil
}
