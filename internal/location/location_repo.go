package location

import (
	"context"

	"gorm.io/gorm"

	"github.com/jerrsapps1/SafetySync-V2-sub000/internal/tenant"
)

//go:generate mockgen -source=location_repo.go -destination=mock/location_repo_mock.go -package=mock
type Repository interface {
	Create(ctx context.Context, loc *Location) error
	FindAllByCompany(ctx context.Context, companyID string) ([]Location, error)
	FindByIDAndCompany(ctx context.Context, companyID, id string) (*Location, error)
	CountEmployees(ctx context.Context, companyID, id string) (int64, error)
	Update(ctx context.Context, loc *Location) error
	Delete(ctx context.Context, companyID, id string) (int64, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, loc *Location) error {
	return r.db.WithContext(ctx).Create(loc).Error
}

func (r *repository) FindAllByCompany(ctx context.Context, companyID string) ([]Location, error) {
	var locs []Location
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		Order("name ASC").
		Find(&locs).Error
	return locs, err
}

func (r *repository) FindByIDAndCompany(ctx context.Context, companyID, id string) (*Location, error) {
	var loc Location
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		First(&loc, "id = ?", id).Error
	return &loc, err
}

func (r *repository) CountEmployees(ctx context.Context, companyID, id string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Table("employees").
		Where("location_id = ?", id).
		Where("company_id = ?", companyID).
		Where("deleted_at IS NULL").
		Count(&count).Error
	return count, err
}

func (r *repository) Update(ctx context.Context, loc *Location) error {
	return r.db.WithContext(ctx).Save(loc).Error
}

func (r *repository) Delete(ctx context.Context, companyID, id string) (int64, error) {
	res := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		Delete(&Location{}, "id = ?", id)
	return res.RowsAffected, res.Error
}
