package queue

import (
	"context"
	"fmt"
	"sync"

	"github.com/bytedance/sonic"
	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

// Routing keys of the events this service emits.
const (
	RoutingSnapshotCreated = "snapshot.created"
	RoutingProjectAlert    = "project.alert"
)

type Publisher interface {
	Publish(ctx context.Context, routingKey string, payload any) error
}

type amqpPublisher struct {
	mu       sync.Mutex
	ch       *amqp.Channel
	exchange string
	log      *zap.Logger
}

// NewPublisher opens a channel on conn and declares a durable topic exchange.
func NewPublisher(conn *amqp.Connection, exchange string, log *zap.Logger) (Publisher, error) {
	ch, err := conn.Channel()
	if err != nil {
		return nil, fmt.Errorf("open channel: %w", err)
	}
	if err := ch.ExchangeDeclare(exchange, amqp.ExchangeTopic, true, false, false, false, nil); err != nil {
		_ = ch.Close()
		return nil, fmt.Errorf("declare exchange %s: %w", exchange, err)
	}
	return &amqpPublisher{ch: ch, exchange: exchange, log: log}, nil
}

func (p *amqpPublisher) Publish(ctx context.Context, routingKey string, payload any) error {
	body, err := sonic.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal %s: %w", routingKey, err)
	}

	// amqp channels are not safe for concurrent publishing
	p.mu.Lock()
	defer p.mu.Unlock()
	err = p.ch.PublishWithContext(ctx, p.exchange, routingKey, false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Body:         body,
	})
	if err != nil {
		return fmt.Errorf("publish %s: %w", routingKey, err)
	}
	p.log.Sugar().Debugw("event published", "routing_key", routingKey, "bytes", len(body))
	return nil
}

type nopPublisher struct{ log *zap.Logger }

// NewNopPublisher drops every event. It stands in when no broker is configured.
func NewNopPublisher(log *zap.Logger) Publisher {
	return &nopPublisher{log: log}
}

func (p *nopPublisher) Publish(_ context.Context, routingKey string, _ any) error {
	p.log.Sugar().Debugw("event dropped, no broker", "routing_key", routingKey)
	return nil
}
