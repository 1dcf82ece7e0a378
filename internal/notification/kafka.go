package notification

import (
	"context"
	"fmt"
	"sharedhouse/infras/kafka"
)

const headerEvent = "event"

type kafkaSink struct {
	producer kafka.Producer
	topic    string
}

func NewKafkaSink(producer kafka.Producer, topic string) Sink {
	return &kafkaSink{
		producer: producer,
		topic:    topic,
	}
}

// Emit keys messages by shared space so that one space's events stay ordered.
func (s *kafkaSink) Emit(ctx context.Context, event Event) error {
	err := s.producer.SendMessages(ctx, s.topic, kafka.Message{
		Key:     event.SharedSpaceID,
		Value:   event,
		Headers: map[string]string{headerEvent: event.Name},
	})
	if err != nil {
		return fmt.Errorf("failed to publish %s to kafka: %w", event.Name, err)
	}

	return nil
}
