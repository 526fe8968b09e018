package trainingrecord

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/jerrsapps1/SafetySync-V2-sub000/internal/events"
	"github.com/jerrsapps1/SafetySync-V2-sub000/internal/messaging/kafka"
	"github.com/jerrsapps1/SafetySync-V2-sub000/internal/shared/contextutil"
	trainingrecorderrors "github.com/jerrsapps1/SafetySync-V2-sub000/internal/trainingrecord/errors"
)

const dateLayout = "2006-01-02"

//go:generate mockgen -source=trainingrecord_service.go -destination=mock/trainingrecord_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, companyID string, req CreateTrainingRecordRequest) (TrainingRecordResponse, error)
	GetAll(ctx context.Context, companyID string, employeeID string) ([]TrainingRecordResponse, error)
	GetByID(ctx context.Context, companyID, id string) (TrainingRecordResponse, error)
	Update(ctx context.Context, companyID, id string, req UpdateTrainingRecordRequest) (TrainingRecordResponse, error)
	Delete(ctx context.Context, companyID, id string) error
}

type service struct {
	db     *sql.DB
	repo   Repository
	outbox kafka.OutboxRepository
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("trainingrecord.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("trainingrecord.service")
	}
	return &service{repo: repo, logger: l}
}

func NewServiceWithOutbox(
	db *sql.DB,
	repo Repository,
	outboxRepo kafka.OutboxRepository,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("trainingrecord.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("trainingrecord.service")
	}
	return &service{
		db:     db,
		repo:   repo,
		outbox: outboxRepo,
		logger: l,
	}
}

func (s *service) Create(
	ctx context.Context,
	companyID string,
	req CreateTrainingRecordRequest,
) (TrainingRecordResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("create training record requested",
		zap.String("request_id", rid),
		zap.String("company_id", companyID),
		zap.String("employee_id", req.EmployeeID),
		zap.String("training_type", req.TrainingType),
	)

	exists, err := s.repo.EmployeeExistsInCompany(ctx, companyID, req.EmployeeID)
	if err != nil {
		s.logger.Error("create training record employee lookup failed",
			zap.String("request_id", rid),
			zap.Error(err),
		)
		return TrainingRecordResponse{}, err
	}
	if !exists {
		s.logger.Warn("create training record employee not found in company",
			zap.String("company_id", companyID),
			zap.String("employee_id", req.EmployeeID),
		)
		return TrainingRecordResponse{}, trainingrecorderrors.ErrEmployeeNotFound
	}

	completedAt, expiresAt, err := parseDates(req.CompletedAt, req.ExpiresAt)
	if err != nil {
		return TrainingRecordResponse{}, err
	}

	rec := &TrainingRecord{
		ID:           uuid.New(),
		CompanyID:    uuid.MustParse(companyID),
		EmployeeID:   uuid.MustParse(req.EmployeeID),
		TrainingType: req.TrainingType,
		StandardRef:  req.StandardRef,
		Provider:     req.Provider,
		CompletedAt:  completedAt,
		ExpiresAt:    expiresAt,
		Status:       StatusCurrent,
	}

	var tx *sql.Tx
	qtx := s.repo
	if s.outbox != nil && s.db != nil {
		tx, err = s.db.BeginTx(ctx, nil)
		if err != nil {
			s.logger.Error("create training record begin tx failed", zap.String("request_id", rid), zap.Error(err))
			return TrainingRecordResponse{}, err
		}
		defer tx.Rollback()
		qtx = s.repo.WithTx(tx)
	}

	if err := qtx.Create(ctx, rec); err != nil {
		s.logger.Error("create training record persist failed", zap.Error(err))
		return TrainingRecordResponse{}, err
	}

	if tx != nil {
		event := events.TrainingRecordCreatedEvent{
			EventType:    "training_record_created",
			RequestID:    rid,
			RecordID:     rec.ID.String(),
			EmployeeID:   rec.EmployeeID.String(),
			CompanyID:    companyID,
			TrainingType: rec.TrainingType,
			OccurredAt:   time.Now().UTC(),
		}
		payload, err := json.Marshal(event)
		if err != nil {
			s.logger.Error("marshal event failed", zap.String("request_id", rid), zap.Error(err))
			return TrainingRecordResponse{}, err
		}

		outboxRepo := s.outbox.WithTx(tx)
		if err := outboxRepo.Create(ctx, kafka.OutboxEvent{
			ID:            uuid.NewString(),
			RequestID:     rid,
			AggregateType: "training_record",
			AggregateID:   rec.ID.String(),
			EventType:     event.EventType,
			Topic:         events.TrainingRecordCreatedTopic,
			Payload:       payload,
			Status:        kafka.OutboxStatusPending,
		}); err != nil {
			s.logger.Error("create training record outbox persist failed",
				zap.String("record_id", rec.ID.String()),
				zap.Error(err),
			)
			return TrainingRecordResponse{}, err
		}

		if err := tx.Commit(); err != nil {
			s.logger.Error("commit failed", zap.String("request_id", rid), zap.Error(err))
			return TrainingRecordResponse{}, err
		}

		s.logger.Info("create training record outbox queued",
			zap.String("record_id", rec.ID.String()),
		)
	}

	s.logger.Info("create training record success",
		zap.String("request_id", rid),
		zap.String("record_id", rec.ID.String()),
	)

	return mapToResponse(*rec), nil
}

func (s *service) GetAll(
	ctx context.Context,
	companyID string,
	employeeID string,
) ([]TrainingRecordResponse, error) {
	var (
		recs []RecordWithEmployee
		err  error
	)

	if employeeID != "" {
		recs, err = s.repo.FindAllByEmployee(ctx, companyID, employeeID)
	} else {
		recs, err = s.repo.FindAllByCompany(ctx, companyID)
	}
	if err != nil {
		return nil, err
	}

	result := make([]TrainingRecordResponse, 0, len(recs))
	for _, r := range recs {
		resp := mapToResponse(r.TrainingRecord)
		resp.EmployeeName = r.EmployeeName
		result = append(result, resp)
	}
	return result, nil
}

func (s *service) GetByID(ctx context.Context, companyID, id string) (TrainingRecordResponse, error) {
	rec, err := s.repo.FindByIDAndCompany(ctx, companyID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return TrainingRecordResponse{}, trainingrecorderrors.ErrRecordNotFound
		}
		return TrainingRecordResponse{}, err
	}

	return mapToResponse(*rec), nil
}

func (s *service) Update(
	ctx context.Context,
	companyID, id string,
	req UpdateTrainingRecordRequest,
) (TrainingRecordResponse, error) {
	rec, err := s.repo.FindByIDAndCompany(ctx, companyID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return TrainingRecordResponse{}, trainingrecorderrors.ErrRecordNotFound
		}
		return TrainingRecordResponse{}, err
	}

	completedAt, expiresAt, err := parseDates(req.CompletedAt, req.ExpiresAt)
	if err != nil {
		return TrainingRecordResponse{}, err
	}

	rec.TrainingType = req.TrainingType
	rec.StandardRef = req.StandardRef
	rec.Provider = req.Provider
	rec.CompletedAt = completedAt
	rec.ExpiresAt = expiresAt
	if req.Status != "" {
		rec.Status = req.Status
	}

	if err := s.repo.Update(ctx, rec); err != nil {
		s.logger.Error("update training record failed", zap.String("record_id", id), zap.Error(err))
		return TrainingRecordResponse{}, err
	}

	return mapToResponse(*rec), nil
}

func (s *service) Delete(ctx context.Context, companyID, id string) error {
	rows, err := s.repo.Delete(ctx, companyID, id)
	if err != nil {
		s.logger.Error("delete training record failed", zap.String("record_id", id), zap.Error(err))
		return err
	}
	if rows == 0 {
		return trainingrecorderrors.ErrRecordNotFound
	}

	return nil
}

func parseDates(completed, expires string) (time.Time, *time.Time, error) {
	completedAt, err := time.Parse(dateLayout, completed)
	if err != nil {
		return time.Time{}, nil, trainingrecorderrors.ErrInvalidCompletedAt
	}

	if expires == "" {
		return completedAt, nil, nil
	}

	expiresAt, err := time.Parse(dateLayout, expires)
	if err != nil {
		return time.Time{}, nil, trainingrecorderrors.ErrInvalidExpiresAt
	}
	if !expiresAt.After(completedAt) {
		return time.Time{}, nil, trainingrecorderrors.ErrExpiresBeforeCompleted
	}

	return completedAt, &expiresAt, nil
}

func mapToResponse(r TrainingRecord) TrainingRecordResponse {
	resp := TrainingRecordResponse{
		ID:           r.ID.String(),
		CompanyID:    r.CompanyID.String(),
		EmployeeID:   r.EmployeeID.String(),
		TrainingType: r.TrainingType,
		StandardRef:  r.StandardRef,
		Provider:     r.Provider,
		CompletedAt:  r.CompletedAt.Format(dateLayout),
		Status:       r.Status,
	}
	if r.ExpiresAt != nil {
		resp.ExpiresAt = r.ExpiresAt.Format(dateLayout)
	}
	return resp
}
