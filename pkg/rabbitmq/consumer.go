package rabbitmq

import (
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/rs/zerolog/log"
)

type Consumer struct {
	conn    *amqp.Connection
	channel *amqp.Channel
}

// NewConsumer declares the durable activity queue and binds it to every
// listing routing key.
func NewConsumer(url string) (*Consumer, error) {
	conn, ch, err := dial(url)
	if err != nil {
		return nil, err
	}

	q, err := ch.QueueDeclare(QueueName, true, false, false, false, nil)
	if err != nil {
		closeAll(conn, ch)
		return nil, fmt.Errorf("rabbitmq queue declare: %w", err)
	}

	for _, key := range ActivityBindings {
		if err := ch.QueueBind(q.Name, key, ExchangeName, false, nil); err != nil {
			closeAll(conn, ch)
			return nil, fmt.Errorf("rabbitmq queue bind %s: %w", key, err)
		}
	}

	if err := ch.Qos(16, 0, false); err != nil {
		closeAll(conn, ch)
		return nil, fmt.Errorf("rabbitmq qos: %w", err)
	}

	return &Consumer{conn: conn, channel: ch}, nil
}

func (c *Consumer) Consume() (<-chan amqp.Delivery, error) {
	msgs, err := c.channel.Consume(
		QueueName,
		"",    // consumer tag
		false, // manual ack after the activity is stored
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		return nil, fmt.Errorf("rabbitmq consume: %w", err)
	}

	log.Info().Str("queue", QueueName).Msg("consuming activity")
	return msgs, nil
}

// NotifyClose reports the connection shutting down.
func (c *Consumer) NotifyClose() <-chan *amqp.Error {
	return c.conn.NotifyClose(make(chan *amqp.Error, 1))
}

func (c *Consumer) Close() {
	closeAll(c.conn, c.channel)
}
