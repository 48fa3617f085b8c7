// Package amqp publica alertas de stock en RabbitMQ.
package amqp

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/rabbitmq/amqp091-go"

	"github.com/mluiza/controle-materiais/internal/application/inventory"
	"github.com/mluiza/controle-materiais/pkg/logger"
)

var (
	_ inventory.AlertPublisher = (*Publisher)(nil)
	_ inventory.AlertPublisher = NoopPublisher{}
)

// Publisher exchange directo + cola durable; la routing key es el nombre de la cola.
type Publisher struct {
	mu       sync.Mutex
	conn     *amqp091.Connection
	channel  *amqp091.Channel
	exchange string
	queue    string
	log      *logger.Logger
}

// NewPublisher conecta y declara exchange, cola y binding.
func NewPublisher(url, exchange, queue string, log *logger.Logger) (*Publisher, error) {
	conn, err := amqp091.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("dial AMQP: %w", err)
	}
	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}
	p := &Publisher{conn: conn, channel: channel, exchange: exchange, queue: queue, log: log.Component("amqp")}
	if err := p.setup(); err != nil {
		p.Close()
		return nil, fmt.Errorf("setup exchange and queue: %w", err)
	}
	return p, nil
}

func (p *Publisher) setup() error {
	if err := p.channel.ExchangeDeclare(p.exchange, "direct", true, false, false, false, nil); err != nil {
		return fmt.Errorf("declare exchange: %w", err)
	}
	if _, err := p.channel.QueueDeclare(p.queue, true, false, false, false, nil); err != nil {
		return fmt.Errorf("declare queue: %w", err)
	}
	if err := p.channel.QueueBind(p.queue, p.queue, p.exchange, false, nil); err != nil {
		return fmt.Errorf("bind queue: %w", err)
	}
	return nil
}

// PublishStockAlert publica el evento como JSON persistente.
func (p *Publisher) PublishStockAlert(ctx context.Context, event inventory.StockAlertEvent) error {
	msg, err := newPublishing(event)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	p.mu.Lock()
	defer p.mu.Unlock()
	if err := p.channel.PublishWithContext(ctx, p.exchange, p.queue, false, false, msg); err != nil {
		return fmt.Errorf("publish message: %w", err)
	}
	p.log.Info().Str("code", event.Code).Str("event_id", event.ID).Msg("alerta de stock publicada")
	return nil
}

// Close cierra canal y conexión.
func (p *Publisher) Close() error {
	if p.channel != nil {
		p.channel.Close()
	}
	if p.conn != nil {
		return p.conn.Close()
	}
	return nil
}

func newPublishing(event inventory.StockAlertEvent) (amqp091.Publishing, error) {
	body, err := json.Marshal(event)
	if err != nil {
		return amqp091.Publishing{}, fmt.Errorf("marshal event: %w", err)
	}
	return amqp091.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp091.Persistent,
		MessageId:    event.ID,
		Timestamp:    event.OccurredAt,
		Type:         "stock.alert",
		Body:         body,
	}, nil
}

// NoopPublisher se usa cuando AMQP_URL está vacío.
type NoopPublisher struct{}

func (NoopPublisher) PublishStockAlert(context.Context, inventory.StockAlertEvent) error { return nil }
