package queue

import (
	"context"
	"encoding/json"
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/pallabiBWM/lakesideindianrestaurant-new/internal/usecase"
)

const (
	exchangeName = "order.events"

	placedRoutingKey = "order.placed"
	placedQueueName  = "order.placed.q"

	statusRoutingKey = "order.status_changed"
	statusQueueName  = "order.status_changed.q"
)

// RabbitProducer implements usecase.OrderEvents.
type RabbitProducer struct {
	ch *amqp.Channel
}

// NewRabbitProducer sets up the exchange, queues, and bindings once at startup.
func NewRabbitProducer(ch *amqp.Channel) (*RabbitProducer, error) {
	if err := ch.ExchangeDeclare(
		exchangeName,
		"topic",
		true,  // durable
		false, // auto-delete
		false, // internal
		false, // no-wait
		nil,
	); err != nil {
		return nil, fmt.Errorf("declare exchange: %w", err)
	}

	bindings := []struct{ queue, key string }{
		{placedQueueName, placedRoutingKey},
		{statusQueueName, statusRoutingKey},
	}
	for _, b := range bindings {
		q, err := ch.QueueDeclare(
			b.queue,
			true,  // durable
			false, // auto-delete
			false, // exclusive
			false, // no-wait
			nil,
		)
		if err != nil {
			return nil, fmt.Errorf("declare queue %s: %w", b.queue, err)
		}
		if err := ch.QueueBind(q.Name, b.key, exchangeName, false, nil); err != nil {
			return nil, fmt.Errorf("bind queue %s: %w", b.queue, err)
		}
	}

	if err := ch.Confirm(false); err != nil {
		return nil, fmt.Errorf("enable confirm mode: %w", err)
	}

	return &RabbitProducer{ch: ch}, nil
}

// PublishPlaced sends an "order.placed" event to the exchange.
func (p *RabbitProducer) PublishPlaced(ctx context.Context, msg usecase.OrderPlacedMsg) error {
	return p.publish(ctx, placedRoutingKey, msg)
}

// PublishStatusChanged sends an "order.status_changed" event to the exchange.
func (p *RabbitProducer) PublishStatusChanged(ctx context.Context, msg usecase.OrderStatusChangedMsg) error {
	return p.publish(ctx, statusRoutingKey, msg)
}

func (p *RabbitProducer) publish(ctx context.Context, routingKey string, msg any) error {
	body, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("marshal message: %w", err)
	}

	pub := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent, // survive broker restarts
		Body:         body,
	}

	if err := p.ch.PublishWithContext(
		ctx,
		exchangeName,
		routingKey,
		false, // mandatory
		false, // immediate
		pub,
	); err != nil {
		return fmt.Errorf("publish %s: %w", routingKey, err)
	}

	return nil
}

var _ usecase.OrderEvents = (*RabbitProducer)(nil)
