package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"tracking_service/internal/config"
	"tracking_service/internal/data"
	"tracking_service/internal/db"
	"tracking_service/internal/events"
	"tracking_service/internal/handler"
	"tracking_service/internal/logging"
	"tracking_service/internal/service"
)

type eventSender interface {
	service.EventPublisher
	Close() error
}

func main() {
	ctx := context.Background()
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	cfg, err := config.New()
	if err != nil {
		panic(fmt.Sprintf("cannot create config: %v", err))
	}

	zapLogger, err := logging.NewZap(cfg.LogLevel)
	if err != nil {
		panic(err)
	}
	defer func() { _ = zapLogger.Sync() }()

	logger := logging.New(zapLogger)

	pool, err := db.New(ctx, cfg)
	if err != nil {
		logger.Fatal(ctx, "cannot create db", zap.Error(err))
	}
	defer pool.Close()

	var sender eventSender = events.NopSender{}
	if len(cfg.KafkaBrokers) > 0 {
		sender = events.NewEventSender(cfg.KafkaBrokers, cfg.KafkaEventsTopic)
		logger.Info(ctx, "Publishing events to kafka",
			zap.Strings("brokers", cfg.KafkaBrokers),
			zap.String("topic", cfg.KafkaEventsTopic),
		)
	} else {
		logger.Warn(ctx, "KAFKA_BROKERS is empty, events are dropped")
	}
	defer func() {
		if err := sender.Close(); err != nil {
			logger.Error(ctx, "Failed to close event sender", zap.Error(err))
		}
	}()

	store := data.NewStore(pool)
	trackingService := service.NewTrackingService(store, sender)

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.HTTPPort),
		Handler: handler.NewRouter(logger, trackingService, store),
	}

	logger.Info(ctx, "Starting HTTP server...", zap.Int("port", cfg.HTTPPort))
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal(ctx, "cannot start http server", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logger.Info(ctx, "Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error(ctx, "server forced to shutdown", zap.Error(err))
	}
	logger.Info(ctx, "Server stopped")
}
