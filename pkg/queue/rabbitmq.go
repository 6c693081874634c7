package queue

import (
	"encoding/json"
	"fmt"
	"time"

	"mob-social/pkg/config"
	"mob-social/pkg/logger"

	amqp "github.com/rabbitmq/amqp091-go"
)

const (
	SocialEventsExchange = "social_events"
	NotificationQueue    = "social_notification_queue"

	maxPriority = 10
)

const (
	TaskFriendRequest   = "friend_request"
	TaskFriendConfirmed = "friend_confirmed"
	TaskNewFollower     = "new_follower"
)

// RoutingKeys are bound to the notification queue.
var RoutingKeys = []string{TaskFriendRequest, TaskFriendConfirmed, TaskNewFollower}

// Task is a social event awaiting conversion into a user notification.
type Task struct {
	Type        string `json:"type"`
	UserID      string `json:"user_id"`
	InitiatorID string `json:"initiator_id"`
	EntityName  string `json:"entity_name,omitempty"`
	EntityID    string `json:"entity_id,omitempty"`
	Priority    int    `json:"priority,omitempty"`
}

type Client struct {
	conn    *amqp.Connection
	channel *amqp.Channel
	logger  *logger.Logger
}

func NewRabbitMQClient(cfg *config.Config, log *logger.Logger) (*Client, error) {
	url := fmt.Sprintf("amqp://%s:%s@%s:%s/",
		cfg.RabbitMQUser,
		cfg.RabbitMQPassword,
		cfg.RabbitMQHost,
		cfg.RabbitMQPort,
	)

	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to open channel: %w", err)
	}

	err = channel.ExchangeDeclare(
		SocialEventsExchange, // name
		"direct",             // type
		true,                 // durable
		false,                // auto-deleted
		false,                // internal
		false,                // no-wait
		nil,                  // arguments
	)
	if err != nil {
		channel.Close()
		conn.Close()
		return nil, fmt.Errorf("failed to declare exchange: %w", err)
	}

	_, err = channel.QueueDeclare(
		NotificationQueue, // name
		true,              // durable
		false,             // delete when unused
		false,             // exclusive
		false,             // no-wait
		amqp.Table{
			"x-max-priority": maxPriority,
		},
	)
	if err != nil {
		channel.Close()
		conn.Close()
		return nil, fmt.Errorf("failed to declare queue: %w", err)
	}

	for _, key := range RoutingKeys {
		if err := channel.QueueBind(NotificationQueue, key, SocialEventsExchange, false, nil); err != nil {
			channel.Close()
			conn.Close()
			return nil, fmt.Errorf("failed to bind queue to %s: %w", key, err)
		}
	}

	log.Info("Connected to RabbitMQ at %s:%s", cfg.RabbitMQHost, cfg.RabbitMQPort)

	return &Client{
		conn:    conn,
		channel: channel,
		logger:  log,
	}, nil
}

func (c *Client) Close() error {
	if c.channel != nil {
		c.channel.Close()
	}
	if c.conn != nil {
		return c.conn.Close()
	}
	return nil
}

func clampPriority(p int) uint8 {
	if p <= 0 {
		return 1
	}
	if p > maxPriority {
		return maxPriority
	}
	return uint8(p)
}

// PublishTask routes the task by its type.
func (c *Client) PublishTask(task Task) error {
	body, err := json.Marshal(task)
	if err != nil {
		return fmt.Errorf("failed to marshal task: %w", err)
	}

	err = c.channel.Publish(
		SocialEventsExchange, // exchange
		task.Type,            // routing key
		false,                // mandatory
		false,                // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			Body:         body,
			Priority:     clampPriority(task.Priority),
			DeliveryMode: amqp.Persistent,
			Timestamp:    time.Now(),
		},
	)
	if err != nil {
		c.logger.Error("[RABBITMQ] Failed to publish to exchange=%s, routing_key=%s: %v", SocialEventsExchange, task.Type, err)
		return fmt.Errorf("failed to publish message: %w", err)
	}

	c.logger.Info("[RABBITMQ] Published task to exchange=%s, routing_key=%s: %s", SocialEventsExchange, task.Type, string(body))
	return nil
}

// ConsumeTasks delivers queued tasks to handler on a background goroutine.
// Malformed messages are dropped, handler failures are requeued.
func (c *Client) ConsumeTasks(handler func(task Task) error) error {
	msgs, err := c.channel.Consume(
		NotificationQueue, // queue
		"",                // consumer
		false,             // auto-ack
		false,             // exclusive
		false,             // no-local
		false,             // no-wait
		nil,               // args
	)
	if err != nil {
		return fmt.Errorf("failed to register consumer: %w", err)
	}

	c.logger.Info("[RABBITMQ] Started consuming from queue: %s", NotificationQueue)

	go func() {
		for msg := range msgs {
			var task Task
			if err := json.Unmarshal(msg.Body, &task); err != nil {
				c.logger.Error("[RABBITMQ] Failed to unmarshal task: %v, body=%s", err, string(msg.Body))
				msg.Nack(false, false)
				continue
			}

			if err := handler(task); err != nil {
				c.logger.Error("[RABBITMQ] Handler failed for task %+v: %v", task, err)
				msg.Nack(false, !msg.Redelivered)
				continue
			}

			msg.Ack(false)
		}
		c.logger.Warn("[RABBITMQ] Delivery channel closed for queue %s", NotificationQueue)
	}()

	return nil
}

func (c *Client) GetQueueLength() (int, error) {
	queue, err := c.channel.QueueInspect(NotificationQueue)
	if err != nil {
		return 0, err
	}
	return queue.Messages, nil
}
