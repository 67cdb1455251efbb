package events

import (
	"context"
	"fmt"
	"log"
	"sync"

	amqp "github.com/rabbitmq/amqp091-go"
)

type Publisher interface {
	Publish(ctx context.Context, event Event) error
	// Close closes the publisher and releases resources
	Close() error
}

// NewPublisher connects to RabbitMQ, or returns a publisher that only logs
// when no URI is configured.
func NewPublisher(rabbitURI, exchange string, logger *log.Logger) (Publisher, error) {
	if rabbitURI == "" {
		logger.Println("Warning: RabbitMQ URI is empty, event publishing is disabled")
		return &LogPublisher{logger: logger}, nil
	}
	return NewRabbitPublisher(rabbitURI, exchange, logger)
}

// RabbitPublisher publishes JSON events to a topic exchange, routed by event type.
type RabbitPublisher struct {
	mu       sync.Mutex
	conn     *amqp.Connection
	channel  *amqp.Channel
	exchange string
	logger   *log.Logger
}

func NewRabbitPublisher(rabbitURI, exchange string, logger *log.Logger) (*RabbitPublisher, error) {
	conn, err := amqp.Dial(rabbitURI)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}
	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to open a channel: %w", err)
	}
	err = ch.ExchangeDeclare(
		exchange,
		"topic",
		true,  // durable
		false, // auto-deleted
		false, // internal
		false, // no-wait
		nil,
	)
	if err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("failed to declare exchange %s: %w", exchange, err)
	}
	return &RabbitPublisher{conn: conn, channel: ch, exchange: exchange, logger: logger}, nil
}

func (p *RabbitPublisher) Publish(ctx context.Context, event Event) error {
	body, err := event.ToJSON()
	if err != nil {
		return err
	}

	// amqp channels are not safe for concurrent publishing
	p.mu.Lock()
	defer p.mu.Unlock()

	err = p.channel.PublishWithContext(ctx,
		p.exchange,
		string(event.Type),
		false,
		false,
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			MessageId:    event.ID,
			Timestamp:    event.Timestamp,
			Body:         body,
		},
	)
	if err != nil {
		return fmt.Errorf("failed to publish %s: %w", event.Type, err)
	}
	p.logger.Printf("Published %s event %s", event.Type, event.ID)
	return nil
}

func (p *RabbitPublisher) Close() error {
	if p.channel != nil {
		_ = p.channel.Close()
	}
	if p.conn != nil {
		return p.conn.Close()
	}
	return nil
}

// LogPublisher stands in for the broker when it is not configured.
type LogPublisher struct {
	logger *log.Logger
}

func (p *LogPublisher) Publish(_ context.Context, event Event) error {
	p.logger.Printf("Event publishing is disabled, skipping %s event %s", event.Type, event.ID)
	return nil
}

func (p *LogPublisher) Close() error {
	return nil
}
