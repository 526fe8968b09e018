package location_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"

	"github.com/jerrsapps1/SafetySync-V2-sub000/internal/location"
	locationerrors "github.com/jerrsapps1/SafetySync-V2-sub000/internal/location/errors"
	locationMock "github.com/jerrsapps1/SafetySync-V2-sub000/internal/location/mock"
)

func TestLocationService_Create(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	repo := locationMock.NewMockRepository(ctrl)
	svc := location.NewService(repo)

	companyID := uuid.New().String()

	repo.EXPECT().
		Create(ctx, gomock.Any()).
		DoAndReturn(func(ctx context.Context, loc *location.Location) error {
			assert.Equal(t, companyID, loc.CompanyID.String())
			assert.Equal(t, "North Yard", loc.Name)
			return nil
		})

	resp, err := svc.Create(ctx, companyID, location.CreateLocationRequest{
		Name:    "North Yard",
		Address: "1 Plant Rd",
		City:    "Houston",
		State:   "TX",
	})

	require.NoError(t, err)
	assert.Equal(t, "North Yard", resp.Name)
	assert.Equal(t, companyID, resp.CompanyID)
}

func TestLocationService_GetByID_CrossTenantIsNotFound(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	repo := locationMock.NewMockRepository(ctrl)
	svc := location.NewService(repo)

	companyID := uuid.New().String()
	id := uuid.New().String()

	// The repo scopes by company, so a foreign tenant's row surfaces as a
	// missing row rather than a permission error.
	repo.EXPECT().
		FindByIDAndCompany(ctx, companyID, id).
		Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.GetByID(ctx, companyID, id)
	assert.ErrorIs(t, err, locationerrors.ErrLocationNotFound)
}

func TestLocationService_Delete(t *testing.T) {
	ctx := context.Background()
	companyID := uuid.New().String()
	id := uuid.New().String()

	t.Run("location with employees is rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := locationMock.NewMockRepository(ctrl)
		svc := location.NewService(repo)

		repo.EXPECT().
			CountEmployees(ctx, companyID, id).
			Return(int64(3), nil)
		// No Delete expectation: occupied locations never reach the delete.

		err := svc.Delete(ctx, companyID, id)
		assert.ErrorIs(t, err, locationerrors.ErrLocationInUse)
	})

	t.Run("empty location deletes", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := locationMock.NewMockRepository(ctrl)
		svc := location.NewService(repo)

		repo.EXPECT().CountEmployees(ctx, companyID, id).Return(int64(0), nil)
		repo.EXPECT().Delete(ctx, companyID, id).Return(int64(1), nil)

		assert.NoError(t, svc.Delete(ctx, companyID, id))
	})

	t.Run("zero rows affected is not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := locationMock.NewMockRepository(ctrl)
		svc := location.NewService(repo)

		repo.EXPECT().CountEmployees(ctx, companyID, id).Return(int64(0), nil)
		repo.EXPECT().Delete(ctx, companyID, id).Return(int64(0), nil)

		err := svc.Delete(ctx, companyID, id)
		assert.ErrorIs(t, err, locationerrors.ErrLocationNotFound)
	})
}
