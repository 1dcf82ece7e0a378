package notification

//go:generate go run go.uber.org/mock/mockgen -source=./notification.go -destination=./mocks/notification_mock.go -package=mocks

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sharedhouse/config"
	"sharedhouse/infras/kafka"
	"sharedhouse/shared/timezone"
	"time"

	goRedis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

// Event is a booking lifecycle broadcast.
type Event struct {
	Name          string          `json:"event"         example:"newBooking"`
	SharedSpaceID string          `json:"sharedSpaceId"`
	Payload       json.RawMessage `json:"payload"       swaggertype:"object"`
	OccurredAt    time.Time       `json:"occurredAt"`
}

func NewEvent(name, sharedSpaceID string, payload any) (Event, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return Event{}, fmt.Errorf("failed to encode %s payload: %w", name, err)
	}

	return Event{
		Name:          name,
		SharedSpaceID: sharedSpaceID,
		Payload:       raw,
		OccurredAt:    timezone.Now(),
	}, nil
}

// Sink delivers events on a best effort basis.
type Sink interface {
	Emit(ctx context.Context, event Event) error
}

// Stream feeds events to long lived listeners. The channel closes when ctx
// is done or the subscription drops.
type Stream interface {
	Subscribe(ctx context.Context) (<-chan Event, error)
}

// Multi fans an event out to every sink and joins their errors.
type Multi []Sink

func (m Multi) Emit(ctx context.Context, event Event) error {
	var errs []error

	for _, sink := range m {
		if err := sink.Emit(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}

// NewSink always publishes to redis and, when enabled, to the kafka booking topic.
func NewSink(cfg *config.Config, client *goRedis.Client, producer kafka.Producer) Sink {
	sinks := Multi{NewRedisSink(client, cfg.Notification.Channel)}

	if cfg.Kafka.Enable {
		sinks = append(sinks, NewKafkaSink(producer, cfg.Kafka.BookingTopic))
	}

	log.Info().Int("sinks", len(sinks)).Msg("Booking notification sinks initialized")

	return sinks
}
