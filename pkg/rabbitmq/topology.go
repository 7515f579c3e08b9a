package rabbitmq

import (
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"
)

const (
	ExchangeName = "directory"
	ExchangeKind = "topic"
	QueueName    = "directory-service.activity"
)

// ActivityBindings are the routing keys the activity queue receives.
var ActivityBindings = []string{"venue.*", "artist.*", "show.*"}

func dial(url string) (*amqp.Connection, *amqp.Channel, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, nil, fmt.Errorf("rabbitmq dial: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, nil, fmt.Errorf("rabbitmq channel: %w", err)
	}

	if err := ch.ExchangeDeclare(ExchangeName, ExchangeKind, true, false, false, false, nil); err != nil {
		ch.Close()
		conn.Close()
		return nil, nil, fmt.Errorf("rabbitmq exchange declare: %w", err)
	}

	return conn, ch, nil
}

func closeAll(conn *amqp.Connection, ch *amqp.Channel) {
	if ch != nil {
		ch.Close()
	}
	if conn != nil {
		conn.Close()
	}
}
