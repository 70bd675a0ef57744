package producer

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/Seirafashion/sui-backend/internal/service"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeWriter struct {
	msgs     []kafka.Message
	err      error
	closed   bool
	deadline bool
}

func (w *fakeWriter) WriteMessages(ctx context.Context, msgs ...kafka.Message) error {
	_, w.deadline = ctx.Deadline()
	if w.err != nil {
		return w.err
	}
	w.msgs = append(w.msgs, msgs...)
	return nil
}

func (w *fakeWriter) Close() error {
	w.closed = true
	return nil
}

func TestPublishOrderCreated(t *testing.T) {
	w := &fakeWriter{}
	p := &OrderEventProducer{writer: w}

	created := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	err := p.PublishOrderCreated(context.Background(), service.OrderCreatedEvent{
		OrderID:       42,
		CustomerEmail: "ada@example.com",
		Status:        "processing",
		Items:         []service.OrderItemEvent{{ProductID: 1, Quantity: 2, UnitPrice: 29.99}},
		Total:         59.98,
		CreatedAt:     created,
	})
	require.NoError(t, err)
	require.Len(t, w.msgs, 1)
	assert.True(t, w.deadline)

	msg := w.msgs[0]
	assert.Equal(t, "42", string(msg.Key))
	require.Len(t, msg.Headers, 1)
	assert.Equal(t, "event_type", msg.Headers[0].Key)
	assert.Equal(t, "order.created", string(msg.Headers[0].Value))

	var body map[string]any
	require.NoError(t, json.Unmarshal(msg.Value, &body))
	assert.EqualValues(t, 42, body["order_id"])
	assert.Equal(t, "ada@example.com", body["customer_email"])
	assert.EqualValues(t, 59.98, body["total"])
	assert.Equal(t, "2026-03-01T12:00:00Z", body["created_at"])
}

func TestPublishOrderCreated_WriterError(t *testing.T) {
	w := &fakeWriter{err: errors.New("no brokers")}
	p := &OrderEventProducer{writer: w}

	err := p.PublishOrderCreated(context.Background(), service.OrderCreatedEvent{OrderID: 1})
	assert.EqualError(t, err, "no brokers")
}

func TestClose(t *testing.T) {
	w := &fakeWriter{}
	p := &OrderEventProducer{writer: w}
	require.NoError(t, p.Close())
	assert.True(t, w.closed)
}
