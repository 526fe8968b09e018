package company

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	companyerrors "github.com/jerrsapps1/SafetySync-V2-sub000/internal/company/errors"
	"github.com/jerrsapps1/SafetySync-V2-sub000/internal/shared/response"
)

const TrialPeriod = 14 * 24 * time.Hour

//go:generate mockgen -source=company_service.go -destination=mock/company_service_mock.go -package=mock
type Service interface {
	CreateForSignup(ctx context.Context, name, country, state, phone string) (*Company, error)
	GetByID(ctx context.Context, id string) (*CompanyResponse, error)
	Update(ctx context.Context, id string, req UpdateCompanyRequest) (*CompanyResponse, error)
	CompleteOnboarding(ctx context.Context, id string) (*CompanyResponse, error)
	ListAll(ctx context.Context, page, pageSize int) ([]CompanyResponse, response.PaginationMeta, error)
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("company.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("company.service")
	}
	return &service{repo: repo, logger: l}
}

// CreateForSignup provisions a tenant on the trial plan. The trial clock
// starts immediately.
func (s *service) CreateForSignup(ctx context.Context, name, country, state, phone string) (*Company, error) {
	trialEnd := time.Now().UTC().Add(TrialPeriod)

	comp := &Company{
		ID:            uuid.New(),
		Name:          name,
		Plan:          PlanTrial,
		BillingStatus: BillingStatusTrial,
		TrialEndsAt:   &trialEnd,
		Country:       country,
		State:         state,
		Phone:         phone,
	}

	if err := s.repo.Create(ctx, comp); err != nil {
		s.logger.Error("create company failed", zap.String("name", name), zap.Error(err))
		return nil, err
	}

	s.logger.Info("company created",
		zap.String("company_id", comp.ID.String()),
		zap.String("name", name),
	)

	return comp, nil
}

func (s *service) GetByID(ctx context.Context, id string) (*CompanyResponse, error) {
	comp, err := s.getCompany(ctx, id)
	if err != nil {
		return nil, err
	}

	return mapToResponse(comp), nil
}

func (s *service) Update(ctx context.Context, id string, req UpdateCompanyRequest) (*CompanyResponse, error) {
	comp, err := s.getCompany(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != "" {
		comp.Name = req.Name
	}
	if req.Country != "" {
		comp.Country = req.Country
	}
	if req.State != "" {
		comp.State = req.State
	}
	if req.Phone != "" {
		comp.Phone = req.Phone
	}

	if err := s.repo.Update(ctx, comp); err != nil {
		s.logger.Error("update company failed", zap.String("company_id", id), zap.Error(err))
		return nil, err
	}

	return mapToResponse(comp), nil
}

func (s *service) CompleteOnboarding(ctx context.Context, id string) (*CompanyResponse, error) {
	comp, err := s.getCompany(ctx, id)
	if err != nil {
		return nil, err
	}

	if !comp.OnboardingCompleted {
		comp.OnboardingCompleted = true
		if err := s.repo.Update(ctx, comp); err != nil {
			s.logger.Error("complete onboarding failed", zap.String("company_id", id), zap.Error(err))
			return nil, err
		}
		s.logger.Info("onboarding completed", zap.String("company_id", id))
	}

	return mapToResponse(comp), nil
}

func (s *service) ListAll(ctx context.Context, page, pageSize int) ([]CompanyResponse, response.PaginationMeta, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 50
	}

	comps, total, err := s.repo.ListAll(ctx, (page-1)*pageSize, pageSize)
	if err != nil {
		s.logger.Error("list companies failed", zap.Error(err))
		return nil, response.PaginationMeta{}, err
	}

	result := make([]CompanyResponse, 0, len(comps))
	for i := range comps {
		result = append(result, *mapToResponse(&comps[i]))
	}

	return result, response.NewPaginationMeta(total, page, pageSize), nil
}

func (s *service) getCompany(ctx context.Context, id string) (*Company, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return nil, companyerrors.ErrInvalidCompanyID
	}

	comp, err := s.repo.GetByID(ctx, uid)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, companyerrors.ErrCompanyNotFound
		}
		return nil, err
	}

	return comp, nil
}

func mapToResponse(c *Company) *CompanyResponse {
	return &CompanyResponse{
		ID:                  c.ID.String(),
		Name:                c.Name,
		Plan:                c.Plan,
		BillingStatus:       c.BillingStatus,
		TrialEndsAt:         c.TrialEndsAt,
		OnboardingCompleted: c.OnboardingCompleted,
		Country:             c.Country,
		State:               c.State,
		Phone:               c.Phone,
		CreatedAt:           c.CreatedAt,
	}
}
