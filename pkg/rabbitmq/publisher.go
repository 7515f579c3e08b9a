package rabbitmq

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/rs/zerolog/log"
)

const publishTimeout = 5 * time.Second

type Publisher struct {
	conn    *amqp.Connection
	channel *amqp.Channel
}

func NewPublisher(url string) (*Publisher, error) {
	conn, ch, err := dial(url)
	if err != nil {
		return nil, err
	}
	return &Publisher{conn: conn, channel: ch}, nil
}

// Publish sends payload as a persistent JSON message on the directory
// exchange.
func (p *Publisher) Publish(ctx context.Context, routingKey string, payload any) error {
	msg, err := newMessage(payload)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()

	if err := p.channel.PublishWithContext(ctx, ExchangeName, routingKey, false, false, msg); err != nil {
		return fmt.Errorf("publish message: %w", err)
	}

	log.Debug().Str("exchange", ExchangeName).Str("routing_key", routingKey).Msg("published activity")
	return nil
}

func (p *Publisher) Close() {
	closeAll(p.conn, p.channel)
}

func newMessage(payload any) (amqp.Publishing, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return amqp.Publishing{}, fmt.Errorf("marshal payload: %w", err)
	}
	return amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now(),
		Body:         body,
	}, nil
}
