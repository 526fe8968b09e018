package certificate

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/jerrsapps1/SafetySync-V2-sub000/internal/tenant"
)

// RecordDetails is the slice of a training record a certificate is built from.
type RecordDetails struct {
	EmployeeName string
	TrainingType string
	StandardRef  string
	Provider     string
	CompletedAt  time.Time
}

//go:generate mockgen -source=certificate_repo.go -destination=mock/certificate_repo_mock.go -package=mock
type Repository interface {
	Create(ctx context.Context, cert *Certificate) error
	FindByRecordAndCompany(ctx context.Context, companyID, recordID string) (*Certificate, error)
	GetRecordDetails(ctx context.Context, companyID, recordID string) (*RecordDetails, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, cert *Certificate) error {
	return r.db.WithContext(ctx).Create(cert).Error
}

func (r *repository) FindByRecordAndCompany(ctx context.Context, companyID, recordID string) (*Certificate, error) {
	var cert Certificate
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		First(&cert, "training_record_id = ?", recordID).Error
	return &cert, err
}

func (r *repository) GetRecordDetails(ctx context.Context, companyID, recordID string) (*RecordDetails, error) {
	var details RecordDetails
	err := r.db.WithContext(ctx).
		Table("training_records").
		Select("employees.full_name AS employee_name, training_records.training_type, training_records.standard_ref, training_records.provider, training_records.completed_at").
		Joins("JOIN employees ON employees.id = training_records.employee_id").
		Where("training_records.id = ?", recordID).
		Where("training_records.company_id = ?", companyID).
		Where("training_records.deleted_at IS NULL").
		Scan(&details).Error
	if err != nil {
		return nil, err
	}
	if details.EmployeeName == "" && details.TrainingType == "" {
		return nil, gorm.ErrRecordNotFound
	}
	return &details, nil
}
