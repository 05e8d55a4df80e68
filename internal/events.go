package internal

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/streadway/amqp"
	"go.uber.org/zap"

	"github.com/DrGermanius/advfood/internal/model"
)

// IEventPublisher announces shipping changes to other services.
type IEventPublisher interface {
	Publish(context.Context, model.ShippingEvent) error
	Close() error
}

// NewEventPublisher connects to the broker, or returns a no-op publisher when no broker is configured.
func NewEventPublisher(cfg EventsConfig, logger *zap.SugaredLogger) (IEventPublisher, error) {
	if cfg.AMQPURL == "" {
		logger.Info("events broker is not configured, shipping events are not published")
		return NopPublisher{}, nil
	}

	p, err := NewAMQPPublisher(cfg, logger)
	if err != nil {
		return nil, err
	}
	return p, nil
}

type AMQPPublisher struct {
	conn    *amqp.Connection
	channel *amqp.Channel
	queue   amqp.Queue
	logger  *zap.SugaredLogger

	// amqp channels are not safe for concurrent publishing
	mu sync.Mutex
}

func NewAMQPPublisher(cfg EventsConfig, logger *zap.SugaredLogger) (*AMQPPublisher, error) {
	conn, err := amqp.Dial(cfg.AMQPURL)
	if err != nil {
		return nil, fmt.Errorf("connect to rabbitmq: %w", err)
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}

	queue, err := channel.QueueDeclare(cfg.Queue, true, false, false, false, nil)
	if err != nil {
		channel.Close()
		conn.Close()
		return nil, fmt.Errorf("declare queue %s: %w", cfg.Queue, err)
	}

	logger.Infow("rabbitmq connected", "queue", queue.Name)

	return &AMQPPublisher{conn: conn, channel: channel, queue: queue, logger: logger}, nil
}

func (p *AMQPPublisher) Publish(ctx context.Context, e model.ShippingEvent) error {
	body, err := json.Marshal(e)
	if err != nil {
		return err
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	return p.channel.Publish("", p.queue.Name, false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Type:         e.Type,
		Timestamp:    e.OccurredAt,
		Body:         body,
	})
}

func (p *AMQPPublisher) Close() error {
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

type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, model.ShippingEvent) error { return nil }

func (NopPublisher) Close() error { return nil }
