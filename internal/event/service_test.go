package event_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fasia-660710731/CatfoodStore-FinalProject/internal/event"
	"github.com/fasia-660710731/CatfoodStore-FinalProject/internal/storage/mq"
)

type fakeConsumer struct {
	handlers map[string]mq.HandlerFunc
	running  bool
	stopped  bool
}

func (c *fakeConsumer) RegisterHandler(topic string, handler mq.HandlerFunc) error {
	if c.handlers == nil {
		c.handlers = map[string]mq.HandlerFunc{}
	}
	c.handlers[topic] = handler
	return nil
}

func (c *fakeConsumer) Run(context.Context) (mq.CleanupFunc, error) {
	c.running = true
	return func() { c.stopped = true }, nil
}

func TestService(t *testing.T) {
	var buf bytes.Buffer
	consumer := &fakeConsumer{}
	svc := event.New(slog.New(slog.NewJSONHandler(&buf, nil)), consumer)

	cleanup, err := svc.Run(context.Background())
	require.NoError(t, err)
	assert.True(t, consumer.running)

	for _, topic := range event.ProductTopics {
		assert.Contains(t, consumer.handlers, topic)
	}

	t.Run("Should log decoded event", func(t *testing.T) {
		handler := consumer.handlers[event.TopicProductCreated]
		err := handler(context.Background(), event.TopicProductCreated,
			[]byte(`{"type":"product.created","product":{"id":7,"name":"Kibble","price":"9.99","created_at":"2026-01-01T00:00:00Z"}}`))
		require.NoError(t, err)
		assert.Contains(t, buf.String(), `"product_id":7`)
		assert.Contains(t, buf.String(), `"service":"event"`)
	})

	t.Run("Should reject malformed payload", func(t *testing.T) {
		handler := consumer.handlers[event.TopicProductDeleted]
		err := handler(context.Background(), event.TopicProductDeleted, []byte(`not json`))
		assert.ErrorContains(t, err, "unmarshal product.deleted event")
	})

	cleanup()
	assert.True(t, consumer.stopped)
}
