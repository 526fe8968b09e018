package location

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	locationerrors "github.com/jerrsapps1/SafetySync-V2-sub000/internal/location/errors"
)

//go:generate mockgen -source=location_service.go -destination=mock/location_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, companyID string, req CreateLocationRequest) (LocationResponse, error)
	GetAll(ctx context.Context, companyID string) ([]LocationResponse, error)
	GetByID(ctx context.Context, companyID, id string) (LocationResponse, error)
	Update(ctx context.Context, companyID, id string, req UpdateLocationRequest) (LocationResponse, error)
	Delete(ctx context.Context, companyID, id string) error
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("location.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("location.service")
	}
	return &service{repo: repo, logger: l}
}

func (s *service) Create(ctx context.Context, companyID string, req CreateLocationRequest) (LocationResponse, error) {
	loc := &Location{
		ID:        uuid.New(),
		CompanyID: uuid.MustParse(companyID),
		Name:      req.Name,
		Address:   req.Address,
		City:      req.City,
		State:     req.State,
	}

	if err := s.repo.Create(ctx, loc); err != nil {
		s.logger.Error("create location failed", zap.String("company_id", companyID), zap.Error(err))
		return LocationResponse{}, err
	}

	return mapToResponse(*loc), nil
}

func (s *service) GetAll(ctx context.Context, companyID string) ([]LocationResponse, error) {
	locs, err := s.repo.FindAllByCompany(ctx, companyID)
	if err != nil {
		return nil, err
	}

	result := make([]LocationResponse, 0, len(locs))
	for _, l := range locs {
		result = append(result, mapToResponse(l))
	}
	return result, nil
}

func (s *service) GetByID(ctx context.Context, companyID, id string) (LocationResponse, error) {
	loc, err := s.repo.FindByIDAndCompany(ctx, companyID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return LocationResponse{}, locationerrors.ErrLocationNotFound
		}
		return LocationResponse{}, err
	}

	return mapToResponse(*loc), nil
}

func (s *service) Update(ctx context.Context, companyID, id string, req UpdateLocationRequest) (LocationResponse, error) {
	loc, err := s.repo.FindByIDAndCompany(ctx, companyID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return LocationResponse{}, locationerrors.ErrLocationNotFound
		}
		return LocationResponse{}, err
	}

	loc.Name = req.Name
	loc.Address = req.Address
	loc.City = req.City
	loc.State = req.State

	if err := s.repo.Update(ctx, loc); err != nil {
		s.logger.Error("update location failed", zap.String("location_id", id), zap.Error(err))
		return LocationResponse{}, err
	}

	return mapToResponse(*loc), nil
}

func (s *service) Delete(ctx context.Context, companyID, id string) error {
	count, err := s.repo.CountEmployees(ctx, companyID, id)
	if err != nil {
		return err
	}
	if count > 0 {
		return locationerrors.ErrLocationInUse
	}

	rows, err := s.repo.Delete(ctx, companyID, id)
	if err != nil {
		s.logger.Error("delete location failed", zap.String("location_id", id), zap.Error(err))
		return err
	}
	if rows == 0 {
		return locationerrors.ErrLocationNotFound
	}

	return nil
}

func mapToResponse(l Location) LocationResponse {
	return LocationResponse{
		ID:        l.ID.String(),
		Name:      l.Name,
		Address:   l.Address,
		City:      l.City,
		State:     l.State,
		CompanyID: l.CompanyID.String(),
	}
}
