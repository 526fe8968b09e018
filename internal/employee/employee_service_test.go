package employee_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"

	"github.com/jerrsapps1/SafetySync-V2-sub000/internal/employee"
	employeeerrors "github.com/jerrsapps1/SafetySync-V2-sub000/internal/employee/errors"
	employeeMock "github.com/jerrsapps1/SafetySync-V2-sub000/internal/employee/mock"
)

type serviceDeps struct {
	service   employee.Service
	repo      *employeeMock.MockRepository
	redismock redismock.ClientMock
}

func setupServiceTest(t *testing.T) *serviceDeps {
	ctrl := gomock.NewController(t)

	rdb, redisMock := redismock.NewClientMock()
	repo := employeeMock.NewMockRepository(ctrl)

	svc := employee.NewService(repo, rdb)

	return &serviceDeps{
		service:   svc,
		repo:      repo,
		redismock: redisMock,
	}
}

func TestEmployeeService_Create(t *testing.T) {
	ctx := context.Background()
	companyID := uuid.New().String()

	t.Run("success", func(t *testing.T) {
		deps := setupServiceTest(t)

		req := employee.CreateEmployeeRequest{
			FullName: "J. Doe",
			Email:    "jdoe@acme.com",
			JobTitle: "Forklift Operator",
		}

		createdID := uuid.New()
		deps.repo.EXPECT().
			Create(ctx, gomock.Any()).
			DoAndReturn(func(ctx context.Context, e *employee.Employee) error {
				assert.Equal(t, req.FullName, e.FullName)
				assert.Equal(t, companyID, e.CompanyID.String())
				assert.Equal(t, employee.StatusActive, e.Status)
				assert.Nil(t, e.LocationID)
				e.ID = createdID
				return nil
			})

		deps.redismock.ExpectDel(employee.GetEmployeeOptionsKey(companyID)).SetVal(1)

		resp, err := deps.service.Create(ctx, companyID, req)

		assert.NoError(t, err)
		assert.Equal(t, createdID.String(), resp.ID)
		assert.Equal(t, "active", resp.Status)
	})

	t.Run("location from another company rejected", func(t *testing.T) {
		deps := setupServiceTest(t)

		locationID := uuid.New().String()
		req := employee.CreateEmployeeRequest{
			FullName:   "J. Doe",
			Email:      "jdoe@acme.com",
			LocationID: locationID,
		}

		deps.repo.EXPECT().
			LocationExistsInCompany(ctx, companyID, locationID).
			Return(false, nil)

		_, err := deps.service.Create(ctx, companyID, req)
		assert.ErrorIs(t, err, employeeerrors.ErrLocationNotFound)
	})
}

func TestEmployeeService_GetByID_NotFound(t *testing.T) {
	deps := setupServiceTest(t)
	ctx := context.Background()
	companyID := uuid.New().String()
	id := uuid.New().String()

	deps.repo.EXPECT().
		FindByIDAndCompany(ctx, companyID, id).
		Return(nil, gorm.ErrRecordNotFound)

	_, err := deps.service.GetByID(ctx, companyID, id)
	assert.ErrorIs(t, err, employeeerrors.ErrEmployeeNotFound)
}

func TestEmployeeService_Update_CrossTenantIsNotFound(t *testing.T) {
	deps := setupServiceTest(t)
	ctx := context.Background()

	// The repo conjoins company_id into the lookup, so an id owned by
	// another tenant surfaces as record-not-found.
	companyA := uuid.New().String()
	foreignID := uuid.New().String()

	deps.repo.EXPECT().
		FindByIDAndCompany(ctx, companyA, foreignID).
		Return(nil, gorm.ErrRecordNotFound)

	_, err := deps.service.Update(ctx, companyA, foreignID, employee.UpdateEmployeeRequest{
		FullName: "New Name",
		Email:    "new@acme.com",
	})
	assert.ErrorIs(t, err, employeeerrors.ErrEmployeeNotFound)
}

func TestEmployeeService_Delete(t *testing.T) {
	ctx := context.Background()
	companyID := uuid.New().String()
	id := uuid.New().String()

	t.Run("zero rows means not found", func(t *testing.T) {
		deps := setupServiceTest(t)

		deps.repo.EXPECT().
			Delete(ctx, companyID, id).
			Return(int64(0), nil)

		err := deps.service.Delete(ctx, companyID, id)
		assert.ErrorIs(t, err, employeeerrors.ErrEmployeeNotFound)
	})

	t.Run("success invalidates options cache", func(t *testing.T) {
		deps := setupServiceTest(t)

		deps.repo.EXPECT().
			Delete(ctx, companyID, id).
			Return(int64(1), nil)
		deps.redismock.ExpectDel(employee.GetEmployeeOptionsKey(companyID)).SetVal(1)

		err := deps.service.Delete(ctx, companyID, id)
		assert.NoError(t, err)
		assert.NoError(t, deps.redismock.ExpectationsWereMet())
	})
}

func TestEmployeeService_GetOptions(t *testing.T) {
	ctx := context.Background()
	companyID := uuid.New().String()
	cacheKey := employee.GetEmployeeOptionsKey(companyID)

	t.Run("cache hit skips repo", func(t *testing.T) {
		deps := setupServiceTest(t)

		cached := []employee.EmployeeResponse{{ID: uuid.New().String(), FullName: "Cached Person"}}
		payload, _ := json.Marshal(cached)
		deps.redismock.ExpectGet(cacheKey).SetVal(string(payload))

		resp, err := deps.service.GetOptions(ctx, companyID)
		assert.NoError(t, err)
		assert.Equal(t, "Cached Person", resp[0].FullName)
	})

	t.Run("cache miss loads and stores", func(t *testing.T) {
		deps := setupServiceTest(t)

		deps.redismock.ExpectGet(cacheKey).RedisNil()

		empl := employee.Employee{
			ID:        uuid.New(),
			CompanyID: uuid.MustParse(companyID),
			FullName:  "A. Worker",
			Status:    employee.StatusActive,
		}
		deps.repo.EXPECT().
			FindOptionsByCompany(ctx, companyID).
			Return([]employee.Employee{empl}, nil)

		deps.redismock.Regexp().ExpectSet(cacheKey, `.*`, time.Hour).SetVal("OK")

		resp, err := deps.service.GetOptions(ctx, companyID)
		assert.NoError(t, err)
		assert.Len(t, resp, 1)
		assert.Equal(t, "A. Worker", resp[0].FullName)
	})

	t.Run("repo failure surfaces", func(t *testing.T) {
		deps := setupServiceTest(t)

		deps.redismock.ExpectGet(cacheKey).RedisNil()
		deps.repo.EXPECT().
			FindOptionsByCompany(ctx, companyID).
			Return(nil, errors.New("db down"))

		_, err := deps.service.GetOptions(ctx, companyID)
		assert.Error(t, err)
	})
}
