package notification

import (
	"context"
	"encoding/json"
	"errors"
	"sharedhouse/infras/kafka"
	kafkaMocks "sharedhouse/infras/kafka/mocks"
	"sharedhouse/shared/constant"
	"sharedhouse/shared/timezone"
	"testing"
	"time"

	goRedis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type stubSink struct {
	events []Event
	err    error
}

func (s *stubSink) Emit(_ context.Context, event Event) error {
	s.events = append(s.events, event)

	return s.err
}

type fakePublisher struct {
	channel string
	message any
	err     error
}

func (p *fakePublisher) Publish(_ context.Context, channel string, message any) *goRedis.IntCmd {
	p.channel = channel
	p.message = message

	return goRedis.NewIntResult(1, p.err)
}

func fixedEvent(t *testing.T) Event {
	t.Helper()

	restore := timezone.SetClock(func() time.Time {
		return time.Date(2030, 5, 10, 1, 0, 0, 0, time.UTC)
	})
	defer restore()

	event, err := NewEvent(constant.EventNewBooking, "space-1", map[string]string{"id": "b1"})
	require.NoError(t, err)

	return event
}

func TestNewEvent(t *testing.T) {
	event := fixedEvent(t)

	assert.Equal(t, constant.EventNewBooking, event.Name)
	assert.Equal(t, "space-1", event.SharedSpaceID)
	assert.JSONEq(t, `{"id":"b1"}`, string(event.Payload))
	assert.Equal(t, time.Date(2030, 5, 10, 1, 0, 0, 0, time.UTC), event.OccurredAt)

	_, err := NewEvent(constant.EventNewBooking, "space-1", make(chan int))
	assert.Error(t, err)
}

func TestMulti_Emit(t *testing.T) {
	event := fixedEvent(t)

	t.Run("every sink receives the event", func(t *testing.T) {
		first, second := &stubSink{}, &stubSink{}

		require.NoError(t, Multi{first, second}.Emit(context.Background(), event))
		assert.Len(t, first.events, 1)
		assert.Len(t, second.events, 1)
	})

	t.Run("a failing sink does not stop the others", func(t *testing.T) {
		failing := &stubSink{err: errors.New("broker down")}
		healthy := &stubSink{}

		err := Multi{failing, healthy}.Emit(context.Background(), event)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "broker down")
		assert.Len(t, healthy.events, 1)
	})
}

func TestKafkaSink_Emit(t *testing.T) {
	event := fixedEvent(t)
	ctrl := gomock.NewController(t)
	producer := kafkaMocks.NewMockProducer(ctrl)

	producer.EXPECT().
		SendMessages(gomock.Any(), "booking-events", kafka.Message{
			Key:     "space-1",
			Value:   event,
			Headers: map[string]string{"event": constant.EventNewBooking},
		}).
		Return(nil)

	require.NoError(t, NewKafkaSink(producer, "booking-events").Emit(context.Background(), event))

	producer.EXPECT().SendMessages(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("timeout"))

	assert.Error(t, NewKafkaSink(producer, "booking-events").Emit(context.Background(), event))
}

func TestRedisSink_Emit(t *testing.T) {
	event := fixedEvent(t)

	t.Run("publishes the encoded event", func(t *testing.T) {
		pub := &fakePublisher{}
		sink := &redisSink{client: pub, channel: "booking-events"}

		require.NoError(t, sink.Emit(context.Background(), event))
		assert.Equal(t, "booking-events", pub.channel)

		var decoded Event
		require.NoError(t, json.Unmarshal(pub.message.([]byte), &decoded))
		assert.Equal(t, event.Name, decoded.Name)
		assert.Equal(t, event.SharedSpaceID, decoded.SharedSpaceID)
	})

	t.Run("publish failure", func(t *testing.T) {
		sink := &redisSink{client: &fakePublisher{err: errors.New("closed")}, channel: "booking-events"}

		assert.Error(t, sink.Emit(context.Background(), event))
	})
}

func TestForward(t *testing.T) {
	event := fixedEvent(t)
	raw, err := json.Marshal(event)
	require.NoError(t, err)

	t.Run("decodes and skips malformed messages", func(t *testing.T) {
		in := make(chan *goRedis.Message, 2)
		out := make(chan Event, 2)

		in <- &goRedis.Message{Channel: "booking-events", Payload: "{not json"}
		in <- &goRedis.Message{Channel: "booking-events", Payload: string(raw)}
		close(in)

		forward(context.Background(), in, out)

		got, ok := <-out
		require.True(t, ok)
		assert.Equal(t, constant.EventNewBooking, got.Name)

		_, ok = <-out
		assert.False(t, ok)
	})

	t.Run("stops when the context ends", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		in := make(chan *goRedis.Message)
		out := make(chan Event)
		done := make(chan struct{})

		go func() {
			forward(ctx, in, out)
			close(done)
		}()

		cancel()

		select {
		case <-done:
		case <-time.After(time.Second):
			t.Fatal("forward did not stop")
		}
	})
}
