package mq

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"github.com/segmentio/kafka-go"
)

// Message represents a Kafka message delivered to consumers.
type Message struct {
	Key     []byte
	Value   []byte
	Headers map[string]string
	Time    time.Time
}

// Handler processes messages from a consumer.
type Handler func(context.Context, Message) error

// ConsumerConfig defines how to consume messages from Kafka.
type ConsumerConfig struct {
	Brokers []string
	Topic   string
	GroupID string
}

// Validate ensures the consumer configuration is usable.
func (cfg ConsumerConfig) Validate() error {
	if len(cfg.Brokers) == 0 {
		return errors.New("mq: at least one broker must be configured")
	}
	if strings.TrimSpace(cfg.Topic) == "" {
		return errors.New("mq: topic must be provided")
	}
	if strings.TrimSpace(cfg.GroupID) == "" {
		return errors.New("mq: group id must be provided")
	}
	return nil
}

// Consumer wraps a Kafka reader and invokes a handler for each message.
type Consumer struct {
	reader  *kafka.Reader
	handler Handler
}

// NewConsumer constructs a Kafka consumer and prepares it for message processing.
func NewConsumer(cfg ConsumerConfig, handler Handler) (*Consumer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers:  cfg.Brokers,
		Topic:    strings.TrimSpace(cfg.Topic),
		GroupID:  strings.TrimSpace(cfg.GroupID),
		MinBytes: 1e3,
		MaxBytes: 10e6,
	})

	log.Printf("mq: initialized consumer topic=%s group=%s", cfg.Topic, cfg.GroupID)
	return &Consumer{reader: reader, handler: handler}, nil
}

// Run starts consuming messages until the context is cancelled or an unrecoverable error occurs.
func (c *Consumer) Run(ctx context.Context) error {
	if c == nil || c.reader == nil {
		return nil
	}

	for {
		msg, err := c.reader.ReadMessage(ctx)
		if err != nil {
			if errors.Is(err, context.Canceled) {
				return ctx.Err()
			}
			return err
		}

		payload := Message{
			Key:     msg.Key,
			Value:   msg.Value,
			Headers: make(map[string]string, len(msg.Headers)),
			Time:    msg.Time,
		}
		for _, header := range msg.Headers {
			payload.Headers[header.Key] = string(header.Value)
		}

		if c.handler != nil {
			if err := c.handler(ctx, payload); err != nil {
				log.Printf("mq: handler error for topic %s: %v", msg.Topic, err)
			}
		}
	}
}

// Close shuts down the reader.
func (c *Consumer) Close() error {
	if c == nil || c.reader == nil {
		return nil
	}
	return c.reader.Close()
}
