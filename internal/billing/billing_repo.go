package billing

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/jerrsapps1/SafetySync-V2-sub000/internal/tenant"
)

//go:generate mockgen -source=billing_repo.go -destination=mock/billing_repo_mock.go -package=mock
type Store interface {
	ReplaceOverride(ctx context.Context, o *Override) error
	GetOverride(ctx context.Context, companyID string) (*Override, error)
	DeleteOverride(ctx context.Context, companyID string) (int64, error)
	AddNote(ctx context.Context, n *Note) error
	ListNotes(ctx context.Context, companyID string) ([]Note, error)
}

type store struct {
	db *gorm.DB
}

func NewStore(db *gorm.DB) Store {
	return &store{db: db}
}

// ReplaceOverride upserts the per-company singleton row.
func (s *store) ReplaceOverride(ctx context.Context, o *Override) error {
	return s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "company_id"}},
			UpdateAll: true,
		}).
		Create(o).Error
}

func (s *store) GetOverride(ctx context.Context, companyID string) (*Override, error) {
	var o Override
	err := s.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		First(&o).Error
	return &o, err
}

func (s *store) DeleteOverride(ctx context.Context, companyID string) (int64, error) {
	res := s.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		Delete(&Override{})
	return res.RowsAffected, res.Error
}

func (s *store) AddNote(ctx context.Context, n *Note) error {
	return s.db.WithContext(ctx).Create(n).Error
}

func (s *store) ListNotes(ctx context.Context, companyID string) ([]Note, error) {
	var notes []Note
	err := s.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		Order("created_at ASC").
		Find(&notes).Error
	return notes, err
}
