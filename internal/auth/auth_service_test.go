package auth_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/jerrsapps1/SafetySync-V2-sub000/internal/audit"
	"github.com/jerrsapps1/SafetySync-V2-sub000/internal/auth"
	autherrors "github.com/jerrsapps1/SafetySync-V2-sub000/internal/auth/errors"
	"github.com/jerrsapps1/SafetySync-V2-sub000/internal/company"
	"github.com/jerrsapps1/SafetySync-V2-sub000/internal/shared/response"
	"github.com/jerrsapps1/SafetySync-V2-sub000/internal/token"
	"github.com/jerrsapps1/SafetySync-V2-sub000/internal/user"
	userMock "github.com/jerrsapps1/SafetySync-V2-sub000/internal/user/mock"
)

type fakeCompanyService struct {
	CreateForSignupFn func(ctx context.Context, name, country, state, phone string) (*company.Company, error)
	GetByIDFn         func(ctx context.Context, id string) (*company.CompanyResponse, error)
}

func (f *fakeCompanyService) CreateForSignup(ctx context.Context, name, country, state, phone string) (*company.Company, error) {
	return f.CreateForSignupFn(ctx, name, country, state, phone)
}
func (f *fakeCompanyService) GetByID(ctx context.Context, id string) (*company.CompanyResponse, error) {
	return f.GetByIDFn(ctx, id)
}
func (f *fakeCompanyService) Update(ctx context.Context, id string, req company.UpdateCompanyRequest) (*company.CompanyResponse, error) {
	panic("not used")
}
func (f *fakeCompanyService) CompleteOnboarding(ctx context.Context, id string) (*company.CompanyResponse, error) {
	panic("not used")
}
func (f *fakeCompanyService) ListAll(ctx context.Context, page, pageSize int) ([]company.CompanyResponse, response.PaginationMeta, error) {
	panic("not used")
}

type fakeAuditRepo struct {
	mu      sync.Mutex
	entries []audit.Entry
}

func (f *fakeAuditRepo) Insert(ctx context.Context, entry *audit.Entry) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.entries = append(f.entries, *entry)
	return nil
}

func (f *fakeAuditRepo) ListRecent(ctx context.Context, limit int) ([]audit.Entry, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]audit.Entry(nil), f.entries...), nil
}

type serviceDeps struct {
	service   auth.Service
	users     *userMock.MockRepository
	companies *fakeCompanyService
	tokens    token.Service
	recorder  *audit.Recorder
	auditRepo *fakeAuditRepo
}

func setupServiceTest(t *testing.T) *serviceDeps {
	ctrl := gomock.NewController(t)

	users := userMock.NewMockRepository(ctrl)
	companies := &fakeCompanyService{}
	tokens := token.NewService("test-secret")
	auditRepo := &fakeAuditRepo{}
	recorder := audit.NewRecorder(auditRepo, zap.NewNop())
	t.Cleanup(recorder.Close)

	svc := auth.NewService(users, companies, tokens, recorder)

	return &serviceDeps{
		service:   svc,
		users:     users,
		companies: companies,
		tokens:    tokens,
		recorder:  recorder,
		auditRepo: auditRepo,
	}
}

func hashPassword(t *testing.T, plain string) string {
	hashed, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.MinCost)
	require.NoError(t, err)
	return string(hashed)
}

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()

	t.Run("success returns verifiable token", func(t *testing.T) {
		deps := setupServiceTest(t)

		companyID := uuid.New()
		u := &user.User{
			ID:        uuid.New(),
			CompanyID: &companyID,
			Username:  "jdoe",
			Email:     "jdoe@acme.com",
			Password:  hashPassword(t, "correct horse battery"),
			FullName:  "J. Doe",
			Role:      user.RoleAdmin,
		}

		deps.users.EXPECT().
			GetByEmail(ctx, "jdoe@acme.com").
			Return(u, nil)

		signed, resp, err := deps.service.Login(ctx, " JDoe@Acme.com ", "correct horse battery")

		require.NoError(t, err)
		assert.Equal(t, u.ID.String(), resp.ID)

		claims, err := deps.tokens.Verify(signed)
		require.NoError(t, err)
		assert.Equal(t, u.ID.String(), claims.UserID)
		assert.Equal(t, user.RoleAdmin, claims.Role)
		assert.Equal(t, companyID.String(), claims.CompanyID)
	})

	t.Run("wrong password is invalid credentials", func(t *testing.T) {
		deps := setupServiceTest(t)

		u := &user.User{
			ID:       uuid.New(),
			Email:    "jdoe@acme.com",
			Password: hashPassword(t, "correct horse battery"),
			Role:     user.RoleEmployee,
		}
		deps.users.EXPECT().
			GetByEmail(ctx, "jdoe@acme.com").
			Return(u, nil)

		_, _, err := deps.service.Login(ctx, "jdoe@acme.com", "wrong")
		assert.ErrorIs(t, err, autherrors.ErrInvalidCredentials)
	})

	t.Run("unknown email is indistinguishable from wrong password", func(t *testing.T) {
		deps := setupServiceTest(t)

		deps.users.EXPECT().
			GetByEmail(ctx, "ghost@acme.com").
			Return(nil, gorm.ErrRecordNotFound)

		_, _, err := deps.service.Login(ctx, "ghost@acme.com", "whatever")
		assert.ErrorIs(t, err, autherrors.ErrInvalidCredentials)
	})
}

func TestAuthService_CreateAccount(t *testing.T) {
	ctx := context.Background()

	t.Run("provisions company and admin owner", func(t *testing.T) {
		deps := setupServiceTest(t)

		companyID := uuid.New()
		deps.companies.CreateForSignupFn = func(ctx context.Context, name, country, state, phone string) (*company.Company, error) {
			assert.Equal(t, "Acme Construction", name)
			return &company.Company{ID: companyID, Name: name, Plan: company.PlanTrial}, nil
		}
		deps.companies.GetByIDFn = func(ctx context.Context, id string) (*company.CompanyResponse, error) {
			return &company.CompanyResponse{ID: companyID.String(), Name: "Acme Construction"}, nil
		}

		deps.users.EXPECT().
			Create(ctx, gomock.Any()).
			DoAndReturn(func(ctx context.Context, u *user.User) error {
				assert.Equal(t, user.RoleAdmin, u.Role)
				require.NotNil(t, u.CompanyID)
				assert.Equal(t, companyID, *u.CompanyID)
				assert.Equal(t, "jdoe", u.Username)
				assert.NotEqual(t, "super secret pw", u.Password)
				return nil
			})

		resp, err := deps.service.CreateAccount(ctx, auth.CreateAccountRequest{
			OrganizationName: "Acme Construction",
			FullName:         "J. Doe",
			Username:         "JDoe",
			Email:            "JDoe@Acme.com",
			Password:         "super secret pw",
		})

		require.NoError(t, err)
		assert.NotEmpty(t, resp.Token)
		assert.Equal(t, "jdoe@acme.com", resp.User.Email)

		claims, err := deps.tokens.Verify(resp.Token)
		require.NoError(t, err)
		assert.Equal(t, user.RoleAdmin, claims.Role)

		deps.recorder.Close()
		entries, _ := deps.auditRepo.ListRecent(ctx, 10)
		require.Len(t, entries, 1)
		assert.Equal(t, "account_created", entries[0].Action)
	})

	t.Run("duplicate email maps to conflict", func(t *testing.T) {
		deps := setupServiceTest(t)

		companyID := uuid.New()
		deps.companies.CreateForSignupFn = func(ctx context.Context, name, country, state, phone string) (*company.Company, error) {
			return &company.Company{ID: companyID, Name: name}, nil
		}

		deps.users.EXPECT().
			Create(ctx, gomock.Any()).
			Return(errors.New(`ERROR: duplicate key value violates unique constraint "idx_users_email" (SQLSTATE 23505)`))

		_, err := deps.service.CreateAccount(ctx, auth.CreateAccountRequest{
			OrganizationName: "Acme Construction",
			FullName:         "J. Doe",
			Username:         "jdoe",
			Email:            "jdoe@acme.com",
			Password:         "super secret pw",
		})
		assert.ErrorIs(t, err, autherrors.ErrEmailAlreadyRegistered)
	})

	t.Run("duplicate username maps to conflict", func(t *testing.T) {
		deps := setupServiceTest(t)

		deps.companies.CreateForSignupFn = func(ctx context.Context, name, country, state, phone string) (*company.Company, error) {
			return &company.Company{ID: uuid.New(), Name: name}, nil
		}

		deps.users.EXPECT().
			Create(ctx, gomock.Any()).
			Return(errors.New(`ERROR: duplicate key value violates unique constraint "idx_users_username" (SQLSTATE 23505)`))

		_, err := deps.service.CreateAccount(ctx, auth.CreateAccountRequest{
			OrganizationName: "Acme Construction",
			FullName:         "J. Doe",
			Username:         "jdoe",
			Email:            "jdoe@acme.com",
			Password:         "super secret pw",
		})
		assert.ErrorIs(t, err, autherrors.ErrUsernameAlreadyTaken)
	})
}

func TestAuthService_GetMe(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		deps := setupServiceTest(t)

		u := &user.User{
			ID:       uuid.New(),
			Username: "jdoe",
			Email:    "jdoe@acme.com",
			Role:     user.RoleEmployee,
		}
		deps.users.EXPECT().
			GetByID(ctx, u.ID).
			Return(u, nil)

		resp, err := deps.service.GetMe(ctx, u.ID.String())

		require.NoError(t, err)
		assert.Equal(t, "jdoe", resp.Username)
	})

	t.Run("malformed id is not found", func(t *testing.T) {
		deps := setupServiceTest(t)

		_, err := deps.service.GetMe(ctx, "not-a-uuid")
		assert.ErrorIs(t, err, autherrors.ErrUserNotFound)
	})
}
