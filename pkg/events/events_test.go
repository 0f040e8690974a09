package events

import (
	"context"
	"errors"
	"testing"

	"venuehub/pkg/kafka"
	"venuehub/pkg/logger"
	"venuehub/pkg/middleware"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type producerFunc func(ctx context.Context, msg kafka.Message) error

func (f producerFunc) Publish(ctx context.Context, msg kafka.Message) error { return f(ctx, msg) }

func (f producerFunc) Close() error { return nil }

func TestKafkaPublisher_Publish(t *testing.T) {
	var got kafka.Message
	pub := &KafkaPublisher{
		source: "bookings",
		producer: producerFunc(func(_ context.Context, msg kafka.Message) error {
			got = msg
			return nil
		}),
	}

	ctx := context.WithValue(context.Background(), middleware.RequestIDKey, "req-7")
	err := pub.Publish(ctx, Event{
		ID:      "booking.confirmed:b1",
		Type:    TypeBookingConfirmed,
		UserID:  "user-1",
		Payload: BookingConfirmed{BookingID: "b1", Reference: "ABCD12345", VenueName: "The Grand Palace"},
	})
	require.NoError(t, err)

	assert.Equal(t, "user-1", got.Key)
	assert.Equal(t, "booking.confirmed:b1", got.GetEventID())
	assert.Equal(t, TypeBookingConfirmed, got.GetEventType())
	assert.Equal(t, "req-7", got.GetCorrelationID())
	assert.Equal(t, "bookings", got.Headers[kafka.HeaderSource])
	assert.Equal(t, SchemaVersion, got.Headers[kafka.HeaderSchemaVersion])

	var payload BookingConfirmed
	require.NoError(t, got.DecodeValue(&payload))
	assert.Equal(t, "ABCD12345", payload.Reference)
}

func TestKafkaPublisher_AnonymousKey(t *testing.T) {
	var got kafka.Message
	pub := &KafkaPublisher{producer: producerFunc(func(_ context.Context, msg kafka.Message) error {
		got = msg
		return nil
	})}

	require.NoError(t, pub.Publish(context.Background(), Event{Type: TypeInquirySubmitted, Payload: InquirySubmitted{Email: "a@b.co"}}))
	assert.Equal(t, "anonymous", got.Key)
	assert.NotEmpty(t, got.GetEventID(), "events without an id get a random one")
}

type pingingProducer struct {
	producerFunc
	err error
}

func (p pingingProducer) Ping(context.Context) error { return p.err }

func TestKafkaPublisher_Ping(t *testing.T) {
	down := errors.New("kafka brokers unreachable")

	pub := &KafkaPublisher{producer: pingingProducer{err: down}}
	assert.ErrorIs(t, pub.Ping(context.Background()), down)

	pub = &KafkaPublisher{producer: producerFunc(nil)}
	assert.NoError(t, pub.Ping(context.Background()), "producers without Ping are assumed reachable")

	var _ Pinger = pub
}

func TestEmit_SwallowsFailures(t *testing.T) {
	rec := &Recorder{Err: errors.New("broker down")}
	assert.NotPanics(t, func() {
		Emit(context.Background(), rec, logger.Discard(), Event{Type: TypeReviewCreated})
	})
	assert.Empty(t, rec.Events())

	Emit(context.Background(), nil, logger.Discard(), Event{Type: TypeReviewCreated})
}

func TestEmit_DetachesFromCancelledRequest(t *testing.T) {
	var ctxErr error
	pub := &KafkaPublisher{producer: producerFunc(func(ctx context.Context, _ kafka.Message) error {
		ctxErr = ctx.Err()
		return nil
	})}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	Emit(ctx, pub, logger.Discard(), Event{Type: TypeWishlistAdded, UserID: "u", Payload: WishlistChanged{UserID: "u", VenueID: "v"}})
	assert.NoError(t, ctxErr)
}

func TestRecorder(t *testing.T) {
	rec := &Recorder{}
	_ = rec.Publish(context.Background(), Event{Type: TypeWishlistAdded})
	_ = rec.Publish(context.Background(), Event{Type: TypeWishlistRemoved})
	assert.Equal(t, []string{TypeWishlistAdded, TypeWishlistRemoved}, rec.Types())
}
