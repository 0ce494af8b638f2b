package ingest

import (
	"context"
	"encoding/json"
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"

	"github.com/akangshyya/image-descriptor/internal/models"
	"github.com/akangshyya/image-descriptor/internal/narrate"
	"github.com/akangshyya/image-descriptor/internal/validate"
)

// Consumer delivers analysis results from the message broker to the narration
// controller, as an alternative to the HTTP ingest endpoint.
type Consumer struct {
	conn    *amqp.Connection
	channel *amqp.Channel
	queue   string
	logger  *zap.SugaredLogger
}

// NewConsumer connects to the broker and declares the analysis queue.
func NewConsumer(amqpURL, queueName string, logger *zap.SugaredLogger) (*Consumer, error) {
	conn, err := amqp.Dial(amqpURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to broker: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("failed to open channel: %w", err)
	}

	if _, err := ch.QueueDeclare(queueName, true, false, false, false, nil); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, fmt.Errorf("failed to declare queue: %w", err)
	}

	if err := ch.Qos(1, 0, false); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, fmt.Errorf("failed to set QoS: %w", err)
	}

	return &Consumer{conn: conn, channel: ch, queue: queueName, logger: logger}, nil
}

// Run consumes deliveries until ctx is cancelled or the channel closes.
// Malformed and invalid messages are rejected without requeue.
func (c *Consumer) Run(ctx context.Context, controller *narrate.Controller, langs []models.Language) error {
	deliveries, err := c.channel.Consume(c.queue, "", false, false, false, false, nil)
	if err != nil {
		return fmt.Errorf("failed to start consuming: %w", err)
	}

	c.logger.Infow("consuming analysis results", "queue", c.queue)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case d, ok := <-deliveries:
			if !ok {
				return nil
			}

			var result models.AnalysisResult
			if err := json.Unmarshal(d.Body, &result); err != nil {
				c.logger.Warnw("discarding malformed analysis message", "error", err)
				_ = d.Nack(false, false)
				continue
			}
			if err := validate.ValidateAnalysis(&result, langs); err != nil {
				c.logger.Warnw("discarding invalid analysis message", "id", result.ID, "error", err)
				_ = d.Nack(false, false)
				continue
			}

			controller.SetAnalysis(&result)
			_ = d.Ack(false)
		}
	}
}

// Close releases the channel and connection.
func (c *Consumer) Close() {
	if c.channel != nil {
		_ = c.channel.Close()
	}
	if c.conn != nil {
		_ = c.conn.Close()
	}
}
