package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"venuehub/internal/notifications/repository"
	"venuehub/internal/notifications/service"
	"venuehub/pkg/config"
	"venuehub/pkg/contracts"
	"venuehub/pkg/kafka"
	kafka_config "venuehub/pkg/kafka/config"
	kafka_middleware "venuehub/pkg/kafka/middleware"
)

const (
	ServiceName = "notifier"

	metricsInterval = time.Minute
)

func main() {
	cfg := config.Load(ServiceName)
	cfg.SetMongo()
	defer cfg.GracefulShutdown()

	if !cfg.EventsEnabled {
		cfg.Log.Fatal("Notifier requires events to be enabled")
	}

	kafkaCfg, err := kafka_config.Load(ServiceName)
	if err != nil {
		cfg.Log.Fatal("Failed to load kafka config", "error", err)
	}
	kafkaCfg.LogConfiguration(cfg.Log)

	notifications := service.NewNotificationService(repository.NewMongoNotificationRepository(cfg), cfg)

	consumer, err := kafka.NewConsumer(kafkaCfg, cfg.EventsTopic, cfg.NotifierGroupID, cfg.EventsDLQTopic, notifications.Handle, cfg.Log)
	if err != nil {
		cfg.Log.Fatal("Failed to create kafka consumer", "error", err)
	}

	metrics := kafka_middleware.NewMetrics()
	if kafkaCfg.EnableMiddleware {
		consumer.Use(kafka_middleware.LoggingConsumerMiddleware(cfg.Log))
		consumer.Use(metrics.ConsumerMiddleware())
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg.Log.Info("Starting Notifier", "topic", cfg.EventsTopic, "group_id", cfg.NotifierGroupID)
	run(ctx, cfg, consumer, metrics)
	cfg.Log.Info("Notifier stopped", metrics.Snapshot().LogAttrs()...)
}

func run(ctx context.Context, cfg *config.Config, worker contracts.Worker, metrics *kafka_middleware.Metrics) {
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		ticker := time.NewTicker(metricsInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				cfg.Log.Info("Consumer metrics", metrics.Snapshot().LogAttrs()...)
			}
		}
	}()

	if err := worker.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
		cfg.Log.Error("Consumer stopped with error", "error", err)
	}

	if err := worker.Close(); err != nil {
		cfg.Log.Error("Failed to close consumer", "error", err)
	}
	wg.Wait()
}
