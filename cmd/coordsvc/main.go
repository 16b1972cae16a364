package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	httpadapter "github.com/couchcryptid/cave-coords-service/internal/adapter/http"
	kafkaadapter "github.com/couchcryptid/cave-coords-service/internal/adapter/kafka"
	"github.com/couchcryptid/cave-coords-service/internal/adapter/mapbox"
	"github.com/couchcryptid/cave-coords-service/internal/config"
	"github.com/couchcryptid/cave-coords-service/internal/domain"
	"github.com/couchcryptid/cave-coords-service/internal/observability"
	"github.com/couchcryptid/cave-coords-service/internal/pipeline"
	sharedobs "github.com/couchcryptid/storm-data-shared/observability"
)

// apiOnly is the readiness check when the pipeline is disabled: the coordinate
// API has no dependencies, so the service is ready as soon as it listens.
type apiOnly struct{}

func (apiOnly) CheckReadiness(context.Context) error { return nil }

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := observability.NewLogger(cfg)
	metrics := observability.NewMetrics()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var ready sharedobs.ReadinessChecker = apiOnly{}
	var closers []func() error

	if cfg.PipelineEnabled {
		p, closeFn := startPipeline(ctx, cfg, metrics, logger)
		ready = p
		closers = append(closers, closeFn)
	} else {
		logger.Info("entrance pipeline disabled")
	}

	srv := httpadapter.NewServer(cfg.HTTPAddr, ready, metrics, logger)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server error", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("http server shutdown error", "error", err)
	}
	for _, closeFn := range closers {
		if err := closeFn(); err != nil {
			logger.Error("pipeline close error", "error", err)
		}
	}

	logger.Info("shutdown complete")
}

// startPipeline wires the Kafka reader, transformer, and writer and runs the
// pipeline in the background. The returned func closes both Kafka clients.
func startPipeline(ctx context.Context, cfg *config.Config, metrics *observability.Metrics, logger *slog.Logger) (*pipeline.Pipeline, func() error) {
	// Feature-flagged via MAPBOX_ENABLED / MAPBOX_TOKEN.
	var geocoder domain.Geocoder
	if cfg.MapboxEnabled {
		client := mapbox.NewClient(cfg.MapboxToken, cfg.MapboxTimeout, metrics, logger)
		geocoder = mapbox.NewCachedGeocoder(client, cfg.MapboxCacheSize, metrics)
		metrics.GeocodeEnabled.Set(1)
		logger.Info("mapbox geocoding enabled", "cache_size", cfg.MapboxCacheSize, "timeout", cfg.MapboxTimeout)
	} else {
		logger.Info("mapbox geocoding disabled")
	}

	reader := kafkaadapter.NewReader(cfg, logger)
	writer := kafkaadapter.NewWriter(cfg, logger)
	transformer := pipeline.NewTransformer(geocoder, metrics, logger)

	p := pipeline.New(reader, transformer, writer, logger, metrics, cfg.BatchSize)
	go func() {
		if err := p.Run(ctx); err != nil {
			logger.Error("pipeline error", "error", err)
		}
	}()

	return p, func() error {
		return errors.Join(reader.Close(), writer.Close())
	}
}
