package producer

import (
	"context"

	kafkago "github.com/segmentio/kafka-go"

	"github.com/jerrsapps1/SafetySync-V2-sub000/internal/messaging/kafka"
)

// publish keys the message by aggregate id so all events for one training
// record land on the same partition, and forwards the originating request id
// as a header for cross-service tracing.
func (r *Relay) publish(ctx context.Context, event kafka.OutboxEvent) error {
	headers := []kafkago.Header{
		{Key: "event_type", Value: []byte(event.EventType)},
		{Key: "aggregate_type", Value: []byte(event.AggregateType)},
	}
	if event.RequestID != "" {
		headers = append(headers, kafkago.Header{Key: "request_id", Value: []byte(event.RequestID)})
	}

	return r.writer.WriteMessages(ctx, kafkago.Message{
		Topic:   event.Topic,
		Key:     []byte(event.AggregateID),
		Value:   event.Payload,
		Headers: headers,
	})
}
