package trainingrecord

import (
	"context"
	"database/sql"

	"gorm.io/gorm"

	"github.com/jerrsapps1/SafetySync-V2-sub000/internal/tenant"
)

//go:generate mockgen -source=trainingrecord_repo.go -destination=mock/trainingrecord_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, rec *TrainingRecord) error
	FindAllByCompany(ctx context.Context, companyID string) ([]RecordWithEmployee, error)
	FindAllByEmployee(ctx context.Context, companyID, employeeID string) ([]RecordWithEmployee, error)
	FindByIDAndCompany(ctx context.Context, companyID string, id string) (*TrainingRecord, error)
	EmployeeExistsInCompany(ctx context.Context, companyID, employeeID string) (bool, error)
	Update(ctx context.Context, rec *TrainingRecord) error
	Delete(ctx context.Context, companyID string, id string) (int64, error)
}

type repository struct {
	db *gorm.DB
	tx *sql.Tx
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

// WithTx binds write operations to the given transaction so the record row
// and its outbox event commit or roll back together.
func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{db: r.db, tx: tx}
}

func (r *repository) Create(ctx context.Context, rec *TrainingRecord) error {
	if r.tx == nil {
		return r.db.WithContext(ctx).Create(rec).Error
	}

	query := `
        INSERT INTO training_records (
            id, company_id, employee_id, training_type, standard_ref, provider,
            completed_at, expires_at, status, created_at, updated_at
        ) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NOW(), NOW())
    `
	_, err := r.tx.ExecContext(
		ctx, query,
		rec.ID, rec.CompanyID, rec.EmployeeID, rec.TrainingType,
		rec.StandardRef, rec.Provider, rec.CompletedAt, rec.ExpiresAt, rec.Status,
	)
	return err
}

func (r *repository) FindAllByCompany(ctx context.Context, companyID string) ([]RecordWithEmployee, error) {
	var recs []RecordWithEmployee
	err := r.db.WithContext(ctx).
		Table("training_records").
		Select("training_records.*, employees.full_name AS employee_name").
		Joins("JOIN employees ON employees.id = training_records.employee_id").
		Where("training_records.company_id = ?", companyID).
		Where("training_records.deleted_at IS NULL").
		Order("training_records.completed_at DESC").
		Scan(&recs).Error
	return recs, err
}

func (r *repository) FindAllByEmployee(ctx context.Context, companyID, employeeID string) ([]RecordWithEmployee, error) {
	var recs []RecordWithEmployee
	err := r.db.WithContext(ctx).
		Table("training_records").
		Select("training_records.*, employees.full_name AS employee_name").
		Joins("JOIN employees ON employees.id = training_records.employee_id").
		Where("training_records.company_id = ?", companyID).
		Where("training_records.employee_id = ?", employeeID).
		Where("training_records.deleted_at IS NULL").
		Order("training_records.completed_at DESC").
		Scan(&recs).Error
	return recs, err
}

func (r *repository) FindByIDAndCompany(ctx context.Context, companyID string, id string) (*TrainingRecord, error) {
	var rec TrainingRecord
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		First(&rec, "id = ?", id).Error
	return &rec, err
}

// EmployeeExistsInCompany confirms the employee row belongs to the caller's
// tenant before any write references it. Caller-supplied employee ids are
// never trusted on their own.
func (r *repository) EmployeeExistsInCompany(ctx context.Context, companyID, employeeID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Table("employees").
		Where("id = ?", employeeID).
		Where("company_id = ?", companyID).
		Where("deleted_at IS NULL").
		Count(&count).Error
	return count > 0, err
}

func (r *repository) Update(ctx context.Context, rec *TrainingRecord) error {
	return r.db.WithContext(ctx).Save(rec).Error
}

func (r *repository) Delete(ctx context.Context, companyID string, id string) (int64, error) {
	res := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		Delete(&TrainingRecord{}, "id = ?", id)
	return res.RowsAffected, res.Error
}
