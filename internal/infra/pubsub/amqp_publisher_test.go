package pubsub

import (
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"audiotour/internal/domain/entity"

	"github.com/pkg/errors"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type published struct {
	exchange string
	key      string
	msg      amqp.Publishing
}

type fakeChannel struct {
	messages []published
	err      error
	closed   bool
}

func (f *fakeChannel) PublishWithContext(_ context.Context, exchange, key string, _, _ bool, msg amqp.Publishing) error {
	if f.err != nil {
		return f.err
	}
	f.messages = append(f.messages, published{exchange: exchange, key: key, msg: msg})

	return nil
}

func (f *fakeChannel) Close() error {
	f.closed = true

	return nil
}

func TestAMQPPublisher_PublishesToTopicExchange(t *testing.T) {
	channel := &fakeChannel{}
	publisher := newAMQPPublisher(channel, "tour.progress", slog.New(slog.DiscardHandler))

	require.NoError(t, publisher.PublishProgressEvent(context.Background(), progressEvent()))
	require.Len(t, channel.messages, 1)

	got := channel.messages[0]
	assert.Equal(t, "tour.progress", got.exchange)
	assert.Equal(t, "tour.stop_visited", got.key)
	assert.Equal(t, amqp.Persistent, got.msg.DeliveryMode)
	assert.Equal(t, "application/json", got.msg.ContentType)
	assert.NotEmpty(t, got.msg.MessageId)
	assert.Equal(t, "history-1", got.msg.Headers["history_id"])
	assert.Equal(t, "req-1", got.msg.Headers["request_id"])

	var body map[string]any
	require.NoError(t, json.Unmarshal(got.msg.Body, &body))
	assert.Equal(t, "device-1", body["device_id"])
}

func TestAMQPPublisher_WrapsPublishError(t *testing.T) {
	channel := &fakeChannel{err: errors.New("channel closed")}
	publisher := newAMQPPublisher(channel, "tour.progress", slog.New(slog.DiscardHandler))

	err := publisher.PublishProgressEvent(context.Background(), progressEvent())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "channel closed")
}

func TestAMQPPublisher_CloseClosesChannel(t *testing.T) {
	channel := &fakeChannel{}
	publisher := newAMQPPublisher(channel, "tour.progress", slog.New(slog.DiscardHandler))

	require.NoError(t, publisher.Close())
	assert.True(t, channel.closed)
}

func TestRoutingKey(t *testing.T) {
	event := progressEvent()
	event.Event.Type = entity.EventRouteCompleted

	assert.Equal(t, "tour."+string(entity.EventRouteCompleted), routingKey(event))
}
