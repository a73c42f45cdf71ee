package messaging_test

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/google/uuid"
	"github.com/ostrab/linkgate/internal/messaging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type consumeTestEvent struct {
	Code string `json:"code"`
}

type mockSubscriber struct {
	channels     map[string]chan *message.Message
	subscribeErr error
	mu           sync.Mutex
	closed       bool
}

func newMockSubscriber(topics ...string) *mockSubscriber {
	channels := make(map[string]chan *message.Message, len(topics))
	for _, topic := range topics {
		channels[topic] = make(chan *message.Message, 10)
	}

	return &mockSubscriber{channels: channels}
}

func (m *mockSubscriber) Subscribe(_ context.Context, topic string) (<-chan *message.Message, error) {
	if m.subscribeErr != nil {
		return nil, m.subscribeErr
	}

	ch, ok := m.channels[topic]
	if !ok {
		return nil, errors.New("unknown topic")
	}

	return ch, nil
}

func (m *mockSubscriber) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.closed {
		m.closed = true

		for _, ch := range m.channels {
			close(ch)
		}
	}

	return nil
}

func TestConsumer(t *testing.T) {
	t.Run("processes event and acks", func(t *testing.T) {
		sub := newMockSubscriber("clicks")

		var (
			mu     sync.Mutex
			events []*consumeTestEvent
		)

		consumer := messaging.NewConsumer(sub, "clicks",
			func(_ context.Context, event *consumeTestEvent) error {
				mu.Lock()
				defer mu.Unlock()
				events = append(events, event)

				return nil
			}, zap.NewNop())

		require.NoError(t, consumer.Start(context.Background()))

		payload, _ := json.Marshal(&consumeTestEvent{Code: "abc123"})
		msg := message.NewMessage(uuid.NewString(), payload)
		sub.channels["clicks"] <- msg

		select {
		case <-msg.Acked():
		case <-msg.Nacked():
			t.Fatal("message was nacked")
		case <-time.After(time.Second):
			t.Fatal("timeout waiting for ack")
		}

		mu.Lock()
		defer mu.Unlock()

		require.Len(t, events, 1)
		assert.Equal(t, "abc123", events[0].Code)

		_ = consumer.Shutdown()
	})

	t.Run("nacks on unmarshal error", func(t *testing.T) {
		sub := newMockSubscriber("clicks")
		consumer := messaging.NewConsumer(sub, "clicks",
			func(_ context.Context, _ *consumeTestEvent) error { return nil },
			zap.NewNop())

		require.NoError(t, consumer.Start(context.Background()))

		msg := message.NewMessage(uuid.NewString(), []byte("not json"))
		sub.channels["clicks"] <- msg

		select {
		case <-msg.Nacked():
		case <-msg.Acked():
			t.Fatal("message should have been nacked")
		case <-time.After(time.Second):
			t.Fatal("timeout waiting for nack")
		}

		_ = consumer.Shutdown()
	})

	t.Run("nacks on handler error", func(t *testing.T) {
		sub := newMockSubscriber("clicks")
		consumer := messaging.NewConsumer(sub, "clicks",
			func(_ context.Context, _ *consumeTestEvent) error { return errors.New("handler error") },
			zap.NewNop())

		require.NoError(t, consumer.Start(context.Background()))

		payload, _ := json.Marshal(&consumeTestEvent{Code: "abc123"})
		msg := message.NewMessage(uuid.NewString(), payload)
		sub.channels["clicks"] <- msg

		select {
		case <-msg.Nacked():
		case <-msg.Acked():
			t.Fatal("message should have been nacked")
		case <-time.After(time.Second):
			t.Fatal("timeout waiting for nack")
		}

		_ = consumer.Shutdown()
	})

	t.Run("returns error when subscribe fails", func(t *testing.T) {
		sub := newMockSubscriber("clicks")
		sub.subscribeErr = errors.New("subscribe error")

		consumer := messaging.NewConsumer(sub, "clicks",
			func(_ context.Context, _ *consumeTestEvent) error { return nil },
			zap.NewNop())

		assert.Error(t, consumer.Start(context.Background()))
	})

	t.Run("exposes topic", func(t *testing.T) {
		consumer := messaging.NewConsumer(newMockSubscriber("clicks"), "clicks",
			func(_ context.Context, _ *consumeTestEvent) error { return nil },
			zap.NewNop())

		assert.Equal(t, "clicks", consumer.Topic())
	})
}
