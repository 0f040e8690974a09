package events

import (
	"fmt"

	"venuehub/pkg/config"
	"venuehub/pkg/kafka"
	kafka_config "venuehub/pkg/kafka/config"
	kafka_middleware "venuehub/pkg/kafka/middleware"
)

// Connect returns the publisher a service emits through. With events
// disabled it returns Noop and never dials a broker.
func Connect(cfg *config.Config, source string, metrics *kafka_middleware.Metrics) (Publisher, error) {
	if !cfg.EventsEnabled {
		cfg.Log.Warn("Events disabled, domain events will be dropped", "source", source)
		return Noop{}, nil
	}

	kafkaCfg, err := kafka_config.Load(source)
	if err != nil {
		return nil, fmt.Errorf("failed to load kafka config: %w", err)
	}
	kafkaCfg.LogConfiguration(cfg.Log)

	producer, err := kafka.NewProducer(kafkaCfg, cfg.EventsTopic, cfg.EventsDLQTopic, cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("failed to create kafka producer: %w", err)
	}
	if kafkaCfg.EnableMiddleware {
		producer.Use(kafka_middleware.LoggingProducerMiddleware(cfg.Log))
		if metrics != nil {
			producer.Use(metrics.ProducerMiddleware())
		}
	}

	cfg.Log.Info("Event publisher connected", "topic", cfg.EventsTopic, "source", source)
	return NewKafkaPublisher(producer, source), nil
}
