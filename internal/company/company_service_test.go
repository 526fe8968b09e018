package company_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"

	"github.com/jerrsapps1/SafetySync-V2-sub000/internal/company"
	companyerrors "github.com/jerrsapps1/SafetySync-V2-sub000/internal/company/errors"
	companyMock "github.com/jerrsapps1/SafetySync-V2-sub000/internal/company/mock"
)

func TestCompanyService_CreateForSignup(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	repo := companyMock.NewMockRepository(ctrl)
	svc := company.NewService(repo)

	before := time.Now().UTC()

	repo.EXPECT().
		Create(ctx, gomock.Any()).
		DoAndReturn(func(ctx context.Context, comp *company.Company) error {
			assert.Equal(t, company.PlanTrial, comp.Plan)
			assert.Equal(t, company.BillingStatusTrial, comp.BillingStatus)
			require.NotNil(t, comp.TrialEndsAt)
			assert.WithinDuration(t, before.Add(company.TrialPeriod), *comp.TrialEndsAt, 5*time.Second)
			assert.False(t, comp.OnboardingCompleted)
			return nil
		})

	comp, err := svc.CreateForSignup(ctx, "Acme Construction", "US", "TX", "+1 555 0100")

	require.NoError(t, err)
	assert.Equal(t, "Acme Construction", comp.Name)
	assert.NotEqual(t, uuid.Nil, comp.ID)
}

func TestCompanyService_GetByID(t *testing.T) {
	ctx := context.Background()

	t.Run("malformed id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := company.NewService(companyMock.NewMockRepository(ctrl))

		_, err := svc.GetByID(ctx, "not-a-uuid")
		assert.ErrorIs(t, err, companyerrors.ErrInvalidCompanyID)
	})

	t.Run("missing row maps to not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := companyMock.NewMockRepository(ctrl)
		svc := company.NewService(repo)

		id := uuid.New()
		repo.EXPECT().
			GetByID(ctx, id).
			Return(nil, gorm.ErrRecordNotFound)

		_, err := svc.GetByID(ctx, id.String())
		assert.ErrorIs(t, err, companyerrors.ErrCompanyNotFound)
	})
}

func TestCompanyService_Update_PartialFields(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	repo := companyMock.NewMockRepository(ctrl)
	svc := company.NewService(repo)

	id := uuid.New()
	repo.EXPECT().
		GetByID(ctx, id).
		Return(&company.Company{ID: id, Name: "Old Name", Country: "US", State: "TX"}, nil)

	repo.EXPECT().
		Update(ctx, gomock.Any()).
		DoAndReturn(func(ctx context.Context, comp *company.Company) error {
			assert.Equal(t, "New Name", comp.Name)
			// Untouched fields survive a partial update.
			assert.Equal(t, "US", comp.Country)
			assert.Equal(t, "TX", comp.State)
			return nil
		})

	resp, err := svc.Update(ctx, id.String(), company.UpdateCompanyRequest{Name: "New Name"})

	require.NoError(t, err)
	assert.Equal(t, "New Name", resp.Name)
}

func TestCompanyService_CompleteOnboarding(t *testing.T) {
	ctx := context.Background()

	t.Run("first completion persists the flag", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := companyMock.NewMockRepository(ctrl)
		svc := company.NewService(repo)

		id := uuid.New()
		repo.EXPECT().
			GetByID(ctx, id).
			Return(&company.Company{ID: id, Name: "Acme"}, nil)
		repo.EXPECT().
			Update(ctx, gomock.Any()).
			DoAndReturn(func(ctx context.Context, comp *company.Company) error {
				assert.True(t, comp.OnboardingCompleted)
				return nil
			})

		resp, err := svc.CompleteOnboarding(ctx, id.String())

		require.NoError(t, err)
		assert.True(t, resp.OnboardingCompleted)
	})

	t.Run("repeat completion does not write", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := companyMock.NewMockRepository(ctrl)
		svc := company.NewService(repo)

		id := uuid.New()
		repo.EXPECT().
			GetByID(ctx, id).
			Return(&company.Company{ID: id, Name: "Acme", OnboardingCompleted: true}, nil)
		// No Update expectation: a second call must be a read-only no-op.

		resp, err := svc.CompleteOnboarding(ctx, id.String())

		require.NoError(t, err)
		assert.True(t, resp.OnboardingCompleted)
	})
}

func TestCompanyService_ListAll_ClampsPaging(t *testing.T) {
	ctx := context.Background()

	cases := []struct {
		name       string
		page       int
		pageSize   int
		wantOffset int
		wantLimit  int
	}{
		{"defaults", 0, 0, 0, 50},
		{"oversized page size", 1, 500, 0, 50},
		{"second page", 2, 25, 25, 25},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo := companyMock.NewMockRepository(ctrl)
			svc := company.NewService(repo)

			repo.EXPECT().
				ListAll(ctx, tc.wantOffset, tc.wantLimit).
				Return([]company.Company{{ID: uuid.New(), Name: "Acme"}}, int64(1), nil)

			result, meta, err := svc.ListAll(ctx, tc.page, tc.pageSize)

			require.NoError(t, err)
			assert.Len(t, result, 1)
			assert.Equal(t, int64(1), meta.Total)
		})
	}
}
