package events

import (
	"context"
	"fmt"

	"venuehub/pkg/kafka"
	"venuehub/pkg/middleware"
)

type producer interface {
	Publish(ctx context.Context, msg kafka.Message) error
	Close() error
}

// KafkaPublisher writes events to the shared domain events topic.
type KafkaPublisher struct {
	producer producer
	source   string
}

func NewKafkaPublisher(p *kafka.Producer, source string) *KafkaPublisher {
	return &KafkaPublisher{producer: p, source: source}
}

func (k *KafkaPublisher) Publish(ctx context.Context, e Event) error {
	key := e.UserID
	if key == "" {
		key = "anonymous"
	}

	msg, err := kafka.NewMessage().
		WithKey(key).
		WithEventID(e.ID).
		WithEventType(e.Type).
		WithSource(k.source).
		WithSchemaVersion(SchemaVersion).
		WithCorrelationID(middleware.RequestID(ctx)).
		WithValue(e.Payload).
		Build()
	if err != nil {
		return fmt.Errorf("failed to build %s message: %w", e.Type, err)
	}

	return k.producer.Publish(ctx, msg)
}

// Ping checks that the bus is reachable.
func (k *KafkaPublisher) Ping(ctx context.Context) error {
	if p, ok := k.producer.(Pinger); ok {
		return p.Ping(ctx)
	}
	return nil
}

func (k *KafkaPublisher) Close() error {
	return k.producer.Close()
}
