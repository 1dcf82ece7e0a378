package notification

import (
	"context"
	"encoding/json"
	"fmt"
	"sharedhouse/config"

	goRedis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const streamBuffer = 16

type publisher interface {
	Publish(ctx context.Context, channel string, message any) *goRedis.IntCmd
}

type redisSink struct {
	client  publisher
	channel string
}

func NewRedisSink(client *goRedis.Client, channel string) Sink {
	return &redisSink{
		client:  client,
		channel: channel,
	}
}

func (s *redisSink) Emit(ctx context.Context, event Event) error {
	raw, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", event.Name, err)
	}

	if err := s.client.Publish(ctx, s.channel, raw).Err(); err != nil {
		return fmt.Errorf("failed to publish %s to redis: %w", event.Name, err)
	}

	return nil
}

type redisStream struct {
	client  *goRedis.Client
	channel string
}

func NewStream(cfg *config.Config, client *goRedis.Client) Stream {
	return &redisStream{
		client:  client,
		channel: cfg.Notification.Channel,
	}
}

func (s *redisStream) Subscribe(ctx context.Context) (<-chan Event, error) {
	pubsub := s.client.Subscribe(ctx, s.channel)

	if _, err := pubsub.Receive(ctx); err != nil {
		_ = pubsub.Close()

		return nil, fmt.Errorf("failed to subscribe to %s: %w", s.channel, err)
	}

	out := make(chan Event, streamBuffer)

	go func() {
		defer pubsub.Close()

		forward(ctx, pubsub.Channel(), out)
	}()

	return out, nil
}

// forward decodes pub/sub messages into out until ctx ends or in closes.
// Undecodable messages are skipped. out is closed on return.
func forward(ctx context.Context, in <-chan *goRedis.Message, out chan<- Event) {
	defer close(out)

	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-in:
			if !ok {
				return
			}

			var event Event
			if err := json.Unmarshal([]byte(msg.Payload), &event); err != nil {
				log.Warn().Err(err).Str("channel", msg.Channel).Msg("skipping malformed booking event")

				continue
			}

			select {
			case out <- event:
			case <-ctx.Done():
				return
			}
		}
	}
}
