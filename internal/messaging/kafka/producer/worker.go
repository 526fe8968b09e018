package producer

import (
	"context"
	"time"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/jerrsapps1/SafetySync-V2-sub000/internal/messaging/kafka"
)

const (
	defaultPollInterval = 3 * time.Second
	defaultBatchSize    = 50
)

// messageWriter is the slice of kafkago.Writer the relay needs.
type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafkago.Message) error
}

// Relay drains the outbox table into Kafka. Events that fail to publish are
// marked failed and picked up again once their backoff window passes.
type Relay struct {
	repo      kafka.OutboxRepository
	writer    messageWriter
	logger    *zap.Logger
	interval  time.Duration
	batchSize int
}

func NewRelay(
	repo kafka.OutboxRepository,
	writer messageWriter,
	logger *zap.Logger,
	pollInterval time.Duration,
) *Relay {
	if pollInterval <= 0 {
		pollInterval = defaultPollInterval
	}
	return &Relay{
		repo:      repo,
		writer:    writer,
		logger:    logger.Named("kafka.producer.relay"),
		interval:  pollInterval,
		batchSize: defaultBatchSize,
	}
}

// Run blocks until ctx is cancelled. The backlog is drained once on startup
// so events that queued up while the relay was down don't wait for the first
// tick.
func (r *Relay) Run(ctx context.Context) {
	r.logger.Info("outbox relay started", zap.Duration("poll_interval", r.interval))

	if err := r.drain(ctx); err != nil {
		r.logger.Error("drain outbox failed", zap.Error(err))
	}

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			r.logger.Info("outbox relay stopped")
			return
		case <-ticker.C:
			if err := r.drain(ctx); err != nil {
				r.logger.Error("drain outbox failed", zap.Error(err))
			}
		}
	}
}

func (r *Relay) drain(ctx context.Context) error {
	events, err := r.repo.ListPending(ctx, r.batchSize)
	if err != nil {
		return err
	}
	if len(events) == 0 {
		return nil
	}

	r.logger.Info("relaying pending outbox events", zap.Int("count", len(events)))

	for _, event := range events {
		if err := r.publish(ctx, event); err != nil {
			r.logger.Error("publish outbox event failed",
				zap.String("outbox_id", event.ID),
				zap.String("request_id", event.RequestID),
				zap.String("topic", event.Topic),
				zap.Error(err),
			)
			_ = r.repo.MarkFailed(ctx, event.ID, err.Error())
			continue
		}

		if err := r.repo.MarkSent(ctx, event.ID); err != nil {
			r.logger.Error("mark outbox sent failed",
				zap.String("outbox_id", event.ID),
				zap.Error(err),
			)
			continue
		}

		r.logger.Info("outbox event sent",
			zap.String("outbox_id", event.ID),
			zap.String("request_id", event.RequestID),
			zap.String("event_type", event.EventType),
			zap.String("topic", event.Topic),
		)
	}

	return nil
}
