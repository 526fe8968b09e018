package certificate

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	certificateerrors "github.com/jerrsapps1/SafetySync-V2-sub000/internal/certificate/errors"
	"github.com/jerrsapps1/SafetySync-V2-sub000/internal/shared/counter"
)

//go:generate mockgen -source=certificate_service.go -destination=mock/certificate_service_mock.go -package=mock
type Service interface {
	GenerateForRecord(ctx context.Context, companyID, recordID string) (*Certificate, error)
	GetByRecord(ctx context.Context, companyID, recordID string) (*Certificate, error)
}

type service struct {
	repo    Repository
	counter counter.Repository
	logger  *zap.Logger
}

func NewService(repo Repository, counterRepo counter.Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("certificate.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("certificate.service")
	}
	return &service{repo: repo, counter: counterRepo, logger: l}
}

// GenerateForRecord builds and stores the certificate for a training record.
// A record that already has a certificate keeps it; regeneration is a no-op
// so redelivered events stay harmless.
func (s *service) GenerateForRecord(ctx context.Context, companyID, recordID string) (*Certificate, error) {
	existing, err := s.repo.FindByRecordAndCompany(ctx, companyID, recordID)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	details, err := s.repo.GetRecordDetails(ctx, companyID, recordID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, certificateerrors.ErrRecordNotFound
		}
		return nil, err
	}

	nextVal, err := s.counter.GetNextValue(ctx, companyID, "certificate_number")
	if err != nil {
		s.logger.Error("generate certificate number failed", zap.Error(err))
		return nil, err
	}
	number := fmt.Sprintf("CERT-%06d", nextVal)

	issuedAt := time.Now().UTC()
	doc := certificateDocument{
		Title:  "Certificate of Completion",
		Number: number,
		Details: []string{
			fmt.Sprintf("Awarded to: %s", details.EmployeeName),
			fmt.Sprintf("Training: %s", details.TrainingType),
		},
	}
	if details.StandardRef != "" {
		doc.Details = append(doc.Details, fmt.Sprintf("Standard: %s", details.StandardRef))
	}
	if details.Provider != "" {
		doc.Details = append(doc.Details, fmt.Sprintf("Provider: %s", details.Provider))
	}
	doc.Details = append(doc.Details,
		fmt.Sprintf("Completed: %s", details.CompletedAt.Format("2006-01-02")),
		fmt.Sprintf("Issued: %s", issuedAt.Format("2006-01-02")),
	)

	pdf, err := renderCertificatePDF(doc)
	if err != nil {
		s.logger.Error("build certificate pdf failed", zap.Error(err))
		return nil, err
	}

	cert := &Certificate{
		ID:                uuid.New(),
		CompanyID:         uuid.MustParse(companyID),
		TrainingRecordID:  uuid.MustParse(recordID),
		CertificateNumber: number,
		EmployeeName:      details.EmployeeName,
		TrainingType:      details.TrainingType,
		StandardRef:       details.StandardRef,
		CompletedAt:       details.CompletedAt,
		IssuedAt:          issuedAt,
		PDF:               pdf,
	}

	if err := s.repo.Create(ctx, cert); err != nil {
		s.logger.Error("persist certificate failed",
			zap.String("record_id", recordID),
			zap.Error(err),
		)
		return nil, err
	}

	s.logger.Info("certificate generated",
		zap.String("record_id", recordID),
		zap.String("certificate_number", number),
	)

	return cert, nil
}

func (s *service) GetByRecord(ctx context.Context, companyID, recordID string) (*Certificate, error) {
	cert, err := s.repo.FindByRecordAndCompany(ctx, companyID, recordID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, certificateerrors.ErrCertificateNotFound
		}
		return nil, err
	}
	return cert, nil
}
