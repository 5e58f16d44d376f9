package events

import (
	"context"
	"fmt"
	"time"

	"github.com/chris/regnet/pkg/ledger"
	amqp "github.com/rabbitmq/amqp091-go"
)

// AMQPChannel is the subset of *amqp.Channel used by AMQPPublisher.
type AMQPChannel interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
}

// AMQPPublisher publishes every event to a durable RabbitMQ queue through
// the default exchange.
type AMQPPublisher struct {
	Channel AMQPChannel
	Queue   string
	Now     func() time.Time

	conn *amqp.Connection
	ch   *amqp.Channel
}

var _ ledger.EventSink = (*AMQPPublisher)(nil)

// DialAMQP connects to the broker at url and declares queue.
func DialAMQP(url, queue string) (*AMQPPublisher, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("failed to dial rabbitmq: %w", err)
	}
	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("failed to open rabbitmq channel: %w", err)
	}
	if _, err := ch.QueueDeclare(queue, true, false, false, false, nil); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, fmt.Errorf("failed to declare queue %s: %w", queue, err)
	}

	return &AMQPPublisher{
		Channel: ch,
		Queue:   queue,
		conn:    conn,
		ch:      ch,
	}, nil
}

// Publish sends the event as a persistent JSON message.
func (p *AMQPPublisher) Publish(ctx context.Context, event ledger.Event) error {
	now := time.Now
	if p.Now != nil {
		now = p.Now
	}

	msg := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Type:         event.Name,
		MessageId:    eventID(event.Payload),
		Timestamp:    now().UTC(),
		Body:         event.Payload,
	}
	if err := p.Channel.PublishWithContext(ctx, "", p.Queue, false, false, msg); err != nil {
		return fmt.Errorf("failed to publish %s event to rabbitmq: %w", event.Name, err)
	}
	return nil
}

// Close releases the channel and connection opened by DialAMQP.
func (p *AMQPPublisher) Close() error {
	if p.ch != nil {
		_ = p.ch.Close()
	}
	if p.conn != nil {
		return p.conn.Close()
	}
	return nil
}
