package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/openfinedu/carfin/internal/application/usecase"
	"github.com/openfinedu/carfin/internal/domain/port"
	"github.com/openfinedu/carfin/internal/domain/scenario"
	"github.com/openfinedu/carfin/internal/domain/service"
	"github.com/openfinedu/carfin/internal/infrastructure/config"
	"github.com/openfinedu/carfin/internal/infrastructure/kafka"
	"github.com/openfinedu/carfin/internal/infrastructure/memory"
	redisinfra "github.com/openfinedu/carfin/internal/infrastructure/redis"
	"github.com/openfinedu/carfin/internal/observability"
	"github.com/openfinedu/carfin/internal/presentation/rest"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	// Load configuration.
	cfg := config.Load()

	// Initialize structured logger.
	logger := observability.InitLogger(observability.LogConfig{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
	})

	logger.Info("starting carfin", "http_port", cfg.HTTPPort)

	// Core domain: the calculation engine and the built-in scenario library.
	engine := service.NewEngine()
	graph := scenario.DefaultGraph()

	// Quote cache: Redis when configured, in-process otherwise.
	var quoteCache port.QuoteCache
	if cfg.Redis.Addr != "" {
		redisCache := redisinfra.NewQuoteCache(cfg.Redis.Addr)
		defer func() { _ = redisCache.Close() }()
		quoteCache = redisCache
		logger.Info("quote cache: redis", "addr", cfg.Redis.Addr)
	} else {
		quoteCache = memory.NewQuoteCache()
		logger.Info("quote cache: in-process")
	}

	// Event publisher: Kafka when configured, noop otherwise.
	var publisher port.EventPublisher
	if len(cfg.Kafka.Brokers) > 0 {
		kafkaPublisher := kafka.NewEventPublisher(cfg.Kafka.Brokers, cfg.Kafka.Topic, logger)
		defer func() { _ = kafkaPublisher.Close() }()
		publisher = kafkaPublisher
		logger.Info("event publisher: kafka", "topic", cfg.Kafka.Topic)
	} else {
		publisher = kafka.NewNoopPublisher()
	}

	simRepo := memory.NewSimulationRepository()

	// Wire use cases.
	calculateUC := usecase.NewCalculateQuoteUseCase(engine, quoteCache, publisher, logger)
	startUC := usecase.NewStartSimulationUseCase(engine, graph, simRepo, publisher)
	applyUC := usecase.NewApplyChoiceUseCase(simRepo, publisher)
	restartUC := usecase.NewRestartSimulationUseCase(simRepo)
	getUC := usecase.NewGetSimulationUseCase(simRepo)

	// Metrics.
	metrics, metricsHandler := observability.NewMetrics()

	// HTTP server.
	mux := http.NewServeMux()

	handler := rest.NewHandler(calculateUC, startUC, applyUC, restartUC, getUC, graph, metrics, logger)
	rateLimiter := rest.NewRateLimiter(60, time.Minute)
	defer rateLimiter.Stop()

	apiMux := http.NewServeMux()
	handler.RegisterRoutes(apiMux)
	mux.Handle("/v1/", rest.RateLimitMiddleware(rateLimiter, apiMux))

	healthHandler := rest.NewHealthHandler(logger)
	healthHandler.RegisterRoutes(mux)
	mux.Handle("GET /metrics", metricsHandler)

	httpServer := &http.Server{
		Addr:              cfg.HTTPAddr(),
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("HTTP server starting", "port", cfg.HTTPPort)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	// Wait for shutdown signal.
	select {
	case <-ctx.Done():
		logger.Info("shutdown signal received")
	case err := <-errCh:
		logger.Error("server error", "error", err)
		os.Exit(1)
	}

	// Graceful shutdown.
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("HTTP server shutdown error", "error", err)
	}

	logger.Info("carfin stopped")
}
