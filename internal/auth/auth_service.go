package auth

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/jerrsapps1/SafetySync-V2-sub000/internal/audit"
	autherrors "github.com/jerrsapps1/SafetySync-V2-sub000/internal/auth/errors"
	"github.com/jerrsapps1/SafetySync-V2-sub000/internal/company"
	"github.com/jerrsapps1/SafetySync-V2-sub000/internal/token"
	"github.com/jerrsapps1/SafetySync-V2-sub000/internal/user"
)

//go:generate mockgen -source=auth_service.go -destination=mock/auth_service_mock.go -package=mock
type Service interface {
	Login(ctx context.Context, email, password string) (string, UserResponse, error)
	CreateAccount(ctx context.Context, req CreateAccountRequest) (CreateAccountResponse, error)
	GetMe(ctx context.Context, userID string) (*UserResponse, error)
}

type service struct {
	users     user.Repository
	companies company.Service
	tokens    token.Service
	recorder  *audit.Recorder
	logger    *zap.Logger
}

func NewService(
	users user.Repository,
	companies company.Service,
	tokens token.Service,
	recorder *audit.Recorder,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("auth.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("auth.service")
	}
	return &service{
		users:     users,
		companies: companies,
		tokens:    tokens,
		recorder:  recorder,
		logger:    l,
	}
}

func (s *service) Login(ctx context.Context, email, password string) (string, UserResponse, error) {
	u, err := s.users.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		return "", UserResponse{}, autherrors.ErrInvalidCredentials
	}

	// bcrypt comparison is deliberately the slowest step on this path.
	if err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)); err != nil {
		return "", UserResponse{}, autherrors.ErrInvalidCredentials
	}

	signed, err := s.tokens.Issue(u.ID.String(), u.Email, u.Role, u.CompanyIDString())
	if err != nil {
		s.logger.Error("issue token failed", zap.String("user_id", u.ID.String()), zap.Error(err))
		return "", UserResponse{}, autherrors.ErrTokenGenerationFailed
	}

	s.logger.Info("login success",
		zap.String("user_id", u.ID.String()),
		zap.String("company_id", u.CompanyIDString()),
	)

	return signed, mapUserResponse(u), nil
}

// CreateAccount provisions an organization and its owner in one step. The
// creator always gets the tenant admin role; roles are fixed at creation.
func (s *service) CreateAccount(ctx context.Context, req CreateAccountRequest) (CreateAccountResponse, error) {
	comp, err := s.companies.CreateForSignup(ctx, req.OrganizationName, req.Country, req.State, req.Phone)
	if err != nil {
		s.logger.Error("create company for signup failed",
			zap.String("organization", req.OrganizationName),
			zap.Error(err),
		)
		return CreateAccountResponse{}, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return CreateAccountResponse{}, err
	}

	companyID := comp.ID
	u := &user.User{
		ID:        uuid.New(),
		CompanyID: &companyID,
		Username:  strings.ToLower(strings.TrimSpace(req.Username)),
		Email:     strings.ToLower(strings.TrimSpace(req.Email)),
		Password:  string(hashed),
		FullName:  req.FullName,
		Role:      user.RoleAdmin,
	}

	if err := s.users.Create(ctx, u); err != nil {
		return CreateAccountResponse{}, mapUserCreateError(err)
	}

	signed, err := s.tokens.Issue(u.ID.String(), u.Email, u.Role, companyID.String())
	if err != nil {
		s.logger.Error("issue token failed", zap.String("user_id", u.ID.String()), zap.Error(err))
		return CreateAccountResponse{}, autherrors.ErrTokenGenerationFailed
	}

	s.recorder.Record(audit.Record{
		ActorID:    u.ID.String(),
		ActorRole:  u.Role,
		Action:     "account_created",
		TargetType: "company",
		TargetID:   companyID.String(),
		Metadata:   map[string]any{"organization": req.OrganizationName},
	})

	s.logger.Info("account created",
		zap.String("user_id", u.ID.String()),
		zap.String("company_id", companyID.String()),
	)

	compResp, err := s.companies.GetByID(ctx, companyID.String())
	if err != nil {
		return CreateAccountResponse{}, err
	}

	return CreateAccountResponse{
		Token:   signed,
		User:    mapUserResponse(u),
		Company: compResp,
	}, nil
}

func (s *service) GetMe(ctx context.Context, userID string) (*UserResponse, error) {
	id, err := uuid.Parse(userID)
	if err != nil {
		return nil, autherrors.ErrUserNotFound
	}

	u, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, autherrors.ErrUserNotFound
	}

	resp := mapUserResponse(u)
	return &resp, nil
}

func mapUserResponse(u *user.User) UserResponse {
	return UserResponse{
		ID:        u.ID.String(),
		Username:  u.Username,
		Email:     u.Email,
		FullName:  u.FullName,
		Role:      u.Role,
		CompanyID: u.CompanyIDString(),
	}
}

func mapUserCreateError(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return autherrors.ErrUserNotFound
	}

	errMsg := strings.ToLower(err.Error())
	if strings.Contains(errMsg, "duplicate key value") {
		if strings.Contains(errMsg, "username") {
			return autherrors.ErrUsernameAlreadyTaken
		}
		return autherrors.ErrEmailAlreadyRegistered
	}

	return err
}
