// Package broker publishes status-changed events to RabbitMQ.
package broker

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"stay-ledger/internal/pkg/config"
	"stay-ledger/internal/usecase/shared"

	amqp "github.com/rabbitmq/amqp091-go"
)

// Channel is the part of *amqp.Channel used for publishing.
type Channel interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
}

type AMQPPublisher struct {
	mu       sync.Mutex
	ch       Channel
	exchange string
	logger   *slog.Logger
}

func NewAMQPPublisher(ch Channel, exchange string, logger *slog.Logger) *AMQPPublisher {
	return &AMQPPublisher{ch: ch, exchange: exchange, logger: logger}
}

// Publish sends ev as persistent JSON with routing key status.changed.<domain>.
func (p *AMQPPublisher) Publish(ctx context.Context, ev shared.StatusChanged) error {
	body, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("failed to marshal status event: %w", err)
	}

	msg := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		MessageId:    ev.ID.String(),
		Timestamp:    time.Now().UTC(),
		Type:         "status.changed",
		Body:         body,
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if err := p.ch.PublishWithContext(ctx, p.exchange, ev.RoutingKey(), false, false, msg); err != nil {
		return fmt.Errorf("failed to publish status event: %w", err)
	}

	p.logger.Debug("status event published",
		slog.String("exchange", p.exchange),
		slog.String("routing_key", ev.RoutingKey()),
		slog.String("entity_id", ev.EntityID.String()))
	return nil
}

// LogPublisher stands in when no broker is configured.
type LogPublisher struct {
	logger *slog.Logger
}

func NewLogPublisher(logger *slog.Logger) *LogPublisher {
	return &LogPublisher{logger: logger}
}

func (p *LogPublisher) Publish(_ context.Context, ev shared.StatusChanged) error {
	p.logger.Info("status changed",
		slog.String("domain", ev.Domain.String()),
		slog.String("entity_id", ev.EntityID.String()),
		slog.String("from", ev.From.String()),
		slog.String("to", ev.To.String()))
	return nil
}

// Dial opens a connection and channel and declares the durable topic exchange.
func Dial(cfg config.BrokerConfig) (*amqp.Channel, func(), error) {
	conn, err := amqp.Dial(cfg.URL)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to dial broker: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, nil, fmt.Errorf("failed to open broker channel: %w", err)
	}

	if err := ch.ExchangeDeclare(
		cfg.Exchange,
		amqp.ExchangeTopic,
		true,  // durable
		false, // autoDelete
		false, // internal
		false, // noWait
		nil,
	); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, nil, fmt.Errorf("failed to declare exchange %q: %w", cfg.Exchange, err)
	}

	cleanup := func() {
		_ = ch.Close()
		_ = conn.Close()
		slog.Info("broker connection closed")
	}
	return ch, cleanup, nil
}
