package kafka_test

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jerrsapps1/SafetySync-V2-sub000/internal/messaging/kafka"
)

func TestOutboxRepository_Create_WithTx(t *testing.T) {
	db, dbMock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := kafka.NewOutboxRepository(db)

	dbMock.ExpectBegin()
	dbMock.ExpectExec("INSERT INTO outbox_events").
		WithArgs("evt-1", "req-abc", "training_record", "rec-1",
			"training_record_created", "training-record-created", []byte(`{}`), kafka.OutboxStatusPending).
		WillReturnResult(sqlmock.NewResult(0, 1))
	dbMock.ExpectRollback()

	ctx := context.Background()
	tx, err := db.BeginTx(ctx, nil)
	require.NoError(t, err)

	err = repo.WithTx(tx).Create(ctx, kafka.OutboxEvent{
		ID:            "evt-1",
		RequestID:     "req-abc",
		AggregateType: "training_record",
		AggregateID:   "rec-1",
		EventType:     "training_record_created",
		Topic:         "training-record-created",
		Payload:       []byte(`{}`),
		Status:        kafka.OutboxStatusPending,
	})
	require.NoError(t, err)

	// The insert shares the caller's transaction, so rolling back discards it.
	require.NoError(t, tx.Rollback())
	assert.NoError(t, dbMock.ExpectationsWereMet())
}

func TestOutboxRepository_Create_RejectsInvalidEvent(t *testing.T) {
	db, dbMock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := kafka.NewOutboxRepository(db)

	err = repo.Create(context.Background(), kafka.OutboxEvent{
		ID:     "evt-1",
		Topic:  "training-record-created",
		Status: kafka.OutboxStatusPending,
	})
	assert.EqualError(t, err, "outbox payload is required")
	assert.NoError(t, dbMock.ExpectationsWereMet())
}

func TestOutboxRepository_ListPending_CarriesRequestID(t *testing.T) {
	db, dbMock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := kafka.NewOutboxRepository(db)

	now := time.Now()
	rows := sqlmock.NewRows([]string{
		"id", "request_id", "aggregate_type", "aggregate_id",
		"event_type", "topic", "payload", "status", "retry_count", "next_retry_at",
	}).AddRow(
		"evt-1", "req-abc", "training_record", "rec-1",
		"training_record_created", "training-record-created", []byte(`{}`),
		kafka.OutboxStatusPending, 0, now,
	)

	dbMock.ExpectQuery("FROM outbox_events").
		WithArgs(kafka.OutboxStatusPending, kafka.OutboxStatusFailed, 10).
		WillReturnRows(rows)

	events, err := repo.ListPending(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, "req-abc", events[0].RequestID)
	assert.Equal(t, "training-record-created", events[0].Topic)
}

func TestOutboxRepository_MarkFailed_SchedulesBackoff(t *testing.T) {
	db, dbMock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := kafka.NewOutboxRepository(db)

	dbMock.ExpectExec("UPDATE outbox_events").
		WithArgs("evt-1", kafka.OutboxStatusFailed, "broker unavailable", 10, 15.0).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err = repo.MarkFailed(context.Background(), "evt-1", "broker unavailable")
	require.NoError(t, err)
	assert.NoError(t, dbMock.ExpectationsWereMet())
}
