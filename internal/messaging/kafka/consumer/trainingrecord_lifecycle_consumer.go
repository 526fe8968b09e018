package consumer

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/jerrsapps1/SafetySync-V2-sub000/internal/certificate"
	"github.com/jerrsapps1/SafetySync-V2-sub000/internal/events"
)

func ConsumeTrainingRecordLifecycle(
	ctx context.Context,
	reader *kafkago.Reader,
	certificateService certificate.Service,
	logger *zap.Logger,
) {
	log := logger.Named("kafka.consumer.trainingrecord_lifecycle")
	log.Info("training record lifecycle consumer started")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("training record lifecycle consumer stopped")
				return
			}
			log.Error("fetch training record lifecycle message failed", zap.Error(err))
			continue
		}

		var event events.TrainingRecordCreatedEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			log.Error("decode training_record_created event failed", zap.Error(err))
			_ = reader.CommitMessages(ctx, msg)
			continue
		}

		_, err = certificateService.GenerateForRecord(ctx, event.CompanyID, event.RecordID)
		if err != nil {
			if isDuplicateCertificate(err) {
				log.Warn("certificate already exists for event, skipping",
					zap.String("record_id", event.RecordID),
					zap.String("company_id", event.CompanyID),
				)
				_ = reader.CommitMessages(ctx, msg)
				continue
			}

			log.Error("generate certificate failed",
				zap.String("record_id", event.RecordID),
				zap.String("company_id", event.CompanyID),
				zap.Error(err),
			)
			continue
		}

		if err := reader.CommitMessages(ctx, msg); err != nil {
			log.Error("commit training record lifecycle message failed", zap.Error(err))
			continue
		}

		log.Info("certificate generated from training_record_created event",
			zap.String("record_id", event.RecordID),
			zap.String("company_id", event.CompanyID),
		)
	}
}

func isDuplicateCertificate(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505" && pgErr.ConstraintName == "uq_certificate_record"
	}
	return false
}
