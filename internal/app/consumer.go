package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/jerrsapps1/SafetySync-V2-sub000/internal/certificate"
	"github.com/jerrsapps1/SafetySync-V2-sub000/internal/config"
	"github.com/jerrsapps1/SafetySync-V2-sub000/internal/events"
	"github.com/jerrsapps1/SafetySync-V2-sub000/internal/messaging/kafka/consumer"
	"github.com/jerrsapps1/SafetySync-V2-sub000/internal/shared/connection"
	"github.com/jerrsapps1/SafetySync-V2-sub000/internal/shared/counter"
)

// RunConsumer generates completion certificates from training record events.
func RunConsumer(cfg *config.Config) error {
	logger := zap.L().Named("app.consumer")

	gormDB, err := connection.ConnectGORMWithRetry(
		cfg.DB.Host,
		cfg.DB.User,
		cfg.DB.Password,
		cfg.DB.Name,
		cfg.DB.Port,
		cfg.DB.SSLMode,
		5,
	)
	if err != nil {
		return err
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		return err
	}
	defer sqlDB.Close()

	if cfg.KafkaBroker == "" {
		return fmt.Errorf("KAFKA_BROKER is required")
	}

	certificateRepo := certificate.NewRepository(gormDB)
	counterRepo := counter.NewRepository(gormDB)
	certificateService := certificate.NewService(certificateRepo, counterRepo)

	reader := kafkago.NewReader(kafkago.ReaderConfig{
		Brokers:        []string{cfg.KafkaBroker},
		Topic:          events.TrainingRecordCreatedTopic,
		GroupID:        "safetysync-certificates",
		CommitInterval: 0,
		StartOffset:    kafkago.FirstOffset,
	})
	defer reader.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go consumer.ConsumeTrainingRecordLifecycle(ctx, reader, certificateService, logger)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("consumer shutting down")
	cancel()

	return nil
}
