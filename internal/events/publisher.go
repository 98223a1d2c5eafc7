// Package events publishes confirmed orders to kafka for downstream
// consumers (kitchen display, reporting). Publishing is best-effort:
// the order has already reached the order log by the time an event is
// emitted.
package events

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/segmentio/kafka-go"

	"github.com/converse98/pizzeria-pos/internal/domain"
)

const topic = "order-registered"

type Publisher struct {
	writer *kafka.Writer
}

func NewPublisher(brokers ...string) *Publisher {
	w := &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  topic,
		Balancer:               &kafka.LeastBytes{},
		AllowAutoTopicCreation: true,
	}
	return &Publisher{writer: w}
}

// OrderRegistered emits one event per successfully submitted order,
// keyed by user so a consumer sees each user's orders in order.
func (p *Publisher) OrderRegistered(ctx context.Context, o *domain.Order) error {
	payload, err := json.Marshal(o)
	if err != nil {
		return fmt.Errorf("failed to marshal order event: %w", err)
	}

	msg := kafka.Message{
		Key:   []byte(o.UserID),
		Value: payload,
		Headers: []kafka.Header{
			{Key: "event_type", Value: []byte("order_registered")},
		},
	}

	return p.writer.WriteMessages(ctx, msg)
}

func (p *Publisher) Close() error {
	return p.writer.Close()
}
