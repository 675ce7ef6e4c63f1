// Package rabbitmq publishes order lifecycle events to a RabbitMQ topic
// exchange. Events are informational: the coordinator commits first and
// publishes after, so a broker outage never fails a request.
package rabbitmq

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"warehouse/internal/core/ports"

	amqp "github.com/rabbitmq/amqp091-go"
)

const (
	// OrderEventsExchange is the topic exchange order events are published to.
	OrderEventsExchange = "warehouse.orders"

	// OrderEventsRoutingKey routes order lifecycle events.
	OrderEventsRoutingKey = "order.lifecycle"
)

// OrderEventPublisher implements ports.OrderEventPublisher on top of a
// RabbitMQ channel.
type OrderEventPublisher struct {
	conn    *amqp.Connection
	channel *amqp.Channel
	log     *slog.Logger
}

// NewOrderEventPublisher dials the broker and declares the order events
// exchange. Connection attempts are retried with backoff so the service
// survives the broker coming up slightly later than the app.
func NewOrderEventPublisher(url string, log *slog.Logger) (*OrderEventPublisher, error) {
	var conn *amqp.Connection
	var err error

	for i := range 5 {
		conn, err = amqp.Dial(url)
		if err == nil {
			break
		}
		retryTime := time.Duration(i*i)*time.Second + time.Second
		log.Warn("rabbitmq connection failed, retrying",
			slog.Duration("retry_in", retryTime),
			slog.Any("error", err))
		time.Sleep(retryTime)
	}
	if err != nil {
		return nil, fmt.Errorf("connect to rabbitmq: %w", err)
	}

	channel, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("open rabbitmq channel: %w", err)
	}

	err = channel.ExchangeDeclare(
		OrderEventsExchange,
		"topic",
		true,  // durable
		false, // auto-deleted
		false, // internal
		false, // no-wait
		nil,
	)
	if err != nil {
		_ = channel.Close()
		_ = conn.Close()
		return nil, fmt.Errorf("declare exchange %s: %w", OrderEventsExchange, err)
	}

	return &OrderEventPublisher{
		conn:    conn,
		channel: channel,
		log:     log,
	}, nil
}

// Publish sends the event as a persistent JSON message. Failures are logged
// and returned; callers treat them as best effort.
func (p *OrderEventPublisher) Publish(ctx context.Context, event ports.OrderEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal order event: %w", err)
	}

	err = p.channel.PublishWithContext(
		ctx,
		OrderEventsExchange,
		OrderEventsRoutingKey,
		false, // mandatory
		false, // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			Timestamp:    time.Now(),
			Body:         body,
		},
	)
	if err != nil {
		p.log.Error("order event publish failed",
			slog.String("order_id", event.OrderID),
			slog.String("status", event.Status),
			slog.Any("error", err))
		return fmt.Errorf("publish order event: %w", err)
	}

	return nil
}

// Close closes the channel and connection.
func (p *OrderEventPublisher) Close() error {
	if p.channel != nil {
		if err := p.channel.Close(); err != nil {
			return err
		}
	}
	if p.conn != nil {
		return p.conn.Close()
	}
	return nil
}

// NoopOrderEventPublisher discards events. Used when no broker is configured.
type NoopOrderEventPublisher struct{}

// NewNoopOrderEventPublisher creates a publisher that drops every event.
func NewNoopOrderEventPublisher() NoopOrderEventPublisher {
	return NoopOrderEventPublisher{}
}

// Publish discards the event.
func (NoopOrderEventPublisher) Publish(_ context.Context, _ ports.OrderEvent) error {
	return nil
}
