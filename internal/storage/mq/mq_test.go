package mq

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/twmb/franz-go/pkg/kgo"

	"github.com/fasia-660710731/CatfoodStore-FinalProject/pkg/correlationid"
	"github.com/fasia-660710731/CatfoodStore-FinalProject/pkg/ptr"
)

func TestBuildProduceRecord(t *testing.T) {
	rec := buildProduceRecord(ProduceMsg{
		Topic:        "product.created",
		Headers:      map[string]string{correlationid.Header: "corr-1"},
		Payload:      []byte(`{"id":1}`),
		PartitionKey: ptr.New("1"),
	})

	assert.Equal(t, "product.created", rec.Topic)
	assert.Equal(t, []byte(`{"id":1}`), rec.Value)
	assert.Equal(t, []byte("1"), rec.Key)
	assert.Equal(t, map[string]string{correlationid.Header: "corr-1"}, recordHeaders(rec))

	noKey := buildProduceRecord(ProduceMsg{Topic: "product.deleted"})
	assert.Nil(t, noKey.Key)
	assert.Empty(t, noKey.Headers)
}

func TestNopProducer(t *testing.T) {
	assert.NoError(t, NopProducer{}.Produce(context.Background(), ProduceMsg{Topic: "x"}))
}

func TestHandleRecord(t *testing.T) {
	var buf bytes.Buffer
	c := &KafkaConsumer{
		handlers: map[string]HandlerFunc{},
		log:      slog.New(slog.NewTextHandler(&buf, nil)),
	}

	var gotCorrelationID string
	c.handlers["product.created"] = func(ctx context.Context, topic string, payload []byte) error {
		gotCorrelationID, _ = correlationid.FromContext(ctx)
		return nil
	}
	c.handlers["product.failed"] = func(context.Context, string, []byte) error {
		return errors.New("boom")
	}
	c.handlers["product.panic"] = func(context.Context, string, []byte) error {
		panic("kaboom")
	}

	t.Run("Should pass header context to handler", func(t *testing.T) {
		c.handleRecord(context.Background(), &kgo.Record{
			Topic:   "product.created",
			Headers: []kgo.RecordHeader{{Key: correlationid.Header, Value: []byte("corr-9")}},
		})
		assert.Equal(t, "corr-9", gotCorrelationID)
	})

	t.Run("Should log handler errors", func(t *testing.T) {
		buf.Reset()
		c.handleRecord(context.Background(), &kgo.Record{Topic: "product.failed"})
		assert.Contains(t, buf.String(), "error handling message")
	})

	t.Run("Should recover handler panics", func(t *testing.T) {
		buf.Reset()
		require.NotPanics(t, func() {
			c.handleRecord(context.Background(), &kgo.Record{Topic: "product.panic"})
		})
		assert.Contains(t, buf.String(), "panic in message handler")
	})

	t.Run("Should warn on unknown topic", func(t *testing.T) {
		buf.Reset()
		c.handleRecord(context.Background(), &kgo.Record{Topic: "unknown"})
		assert.Contains(t, buf.String(), "no handler registered for topic")
	})
}
