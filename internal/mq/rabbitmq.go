package mq

import (
	"ClipHub/config"
	"context"
	"encoding/json"
	"sync"

	amqp "github.com/rabbitmq/amqp091-go"
)

const (
	ExchangeCleanup = "media.cleanup.exchange"
	QueueCleanup    = "media.cleanup.queue"
	RoutingCleanup  = "media.cleanup"
)

// CleanupMessage asks the worker to remove one media object.
type CleanupMessage struct {
	Locator string `json:"locator"`
}

type Client struct {
	Conn      *amqp.Connection
	Channel   *amqp.Channel
	publishMu sync.Mutex
}

var publisherMu sync.Mutex
var publisher *Client

func Dial() (*Client, error) {
	conn, err := amqp.Dial(config.AppConfig.RabbitMQURL)
	if err != nil {
		return nil, err
	}
	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, err
	}
	return &Client{Conn: conn, Channel: ch}, nil
}

func GetPublisher() (*Client, error) {
	publisherMu.Lock()
	defer publisherMu.Unlock()
	if publisher != nil {
		if !publisher.Conn.IsClosed() && !publisher.Channel.IsClosed() {
			return publisher, nil
		}
		publisher.Close()
		publisher = nil
	}
	client, err := Dial()
	if err != nil {
		return nil, err
	}
	if err := client.DeclareTopology(); err != nil {
		client.Close()
		return nil, err
	}
	publisher = client
	return publisher, nil
}

func (c *Client) Close() {
	if c == nil {
		return
	}
	if c.Channel != nil {
		_ = c.Channel.Close()
	}
	if c.Conn != nil {
		_ = c.Conn.Close()
	}
}

func (c *Client) DeclareTopology() error {
	if err := c.Channel.ExchangeDeclare(
		ExchangeCleanup,
		"direct",
		true,
		false,
		false,
		false,
		nil,
	); err != nil {
		return err
	}
	if _, err := c.Channel.QueueDeclare(
		QueueCleanup,
		true,
		false,
		false,
		false,
		nil,
	); err != nil {
		return err
	}
	return c.Channel.QueueBind(QueueCleanup, RoutingCleanup, ExchangeCleanup, false, nil)
}

// PublishCleanup enqueues a media object for removal by the worker.
func PublishCleanup(ctx context.Context, locator string) error {
	client, err := GetPublisher()
	if err != nil {
		return err
	}
	body, err := json.Marshal(CleanupMessage{Locator: locator})
	if err != nil {
		return err
	}
	client.publishMu.Lock()
	defer client.publishMu.Unlock()
	return client.Channel.PublishWithContext(ctx, ExchangeCleanup, RoutingCleanup, false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Body:         body,
	})
}
