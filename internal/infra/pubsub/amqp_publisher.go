package pubsub

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"audiotour/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	amqp "github.com/rabbitmq/amqp091-go"
)

const amqpExchangeKind = "topic"

// amqpChannel is the part of *amqp.Channel the publisher uses.
type amqpChannel interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	Close() error
}

// amqpPublisher implements EventPublisher on a RabbitMQ topic exchange.
// Routing keys are "tour.<event_type>" so consumers can bind per event kind.
type amqpPublisher struct {
	conn     *amqp.Connection
	exchange string
	logger   *slog.Logger

	// amqp channels must not be shared between concurrent publishers.
	mu      sync.Mutex
	channel amqpChannel
}

// NewAMQPPublisher dials the broker and declares a durable topic exchange.
func NewAMQPPublisher(url, exchange string, logger *slog.Logger) (service.EventPublisher, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, errors.Wrap(err, "failed to connect to RabbitMQ")
	}

	channel, err := conn.Channel()
	if err != nil {
		_ = conn.Close()

		return nil, errors.Wrap(err, "failed to open RabbitMQ channel")
	}

	if err := channel.ExchangeDeclare(
		exchange,
		amqpExchangeKind,
		true,  // durable
		false, // auto-deleted
		false, // internal
		false, // no-wait
		nil,
	); err != nil {
		_ = conn.Close()

		return nil, errors.Wrapf(err, "failed to declare exchange %s", exchange)
	}

	logger.Info("RabbitMQ publisher initialized", slog.String("exchange", exchange))

	publisher := newAMQPPublisher(channel, exchange, logger)
	publisher.conn = conn

	return publisher, nil
}

func newAMQPPublisher(channel amqpChannel, exchange string, logger *slog.Logger) *amqpPublisher {
	return &amqpPublisher{
		channel:  channel,
		exchange: exchange,
		logger:   logger,
	}
}

// PublishProgressEvent publishes the event as a persistent JSON message
func (p *amqpPublisher) PublishProgressEvent(ctx context.Context, event *service.ProgressEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return errors.WithStack(err)
	}

	headers := amqp.Table{}
	for key, value := range eventAttributes(event) {
		headers[key] = value
	}

	msg := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		MessageId:    uuid.NewString(),
		Timestamp:    time.Now().UTC(),
		Headers:      headers,
		Body:         data,
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if err := p.channel.PublishWithContext(ctx, p.exchange, routingKey(event), false, false, msg); err != nil {
		return errors.Wrap(err, "failed to publish to RabbitMQ")
	}

	p.logger.Debug("[AMQP] Event published",
		slog.String("event_type", string(event.Event.Type)),
		slog.String("message_id", msg.MessageId),
	)

	return nil
}

// Close closes the channel and the connection
func (p *amqpPublisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	var err error
	if p.channel != nil {
		err = p.channel.Close()
	}
	if p.conn != nil {
		if connErr := p.conn.Close(); err == nil {
			err = connErr
		}
	}

	return errors.WithStack(err)
}

func routingKey(event *service.ProgressEvent) string {
	return "tour." + string(event.Event.Type)
}
