package auth_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/jerrsapps1/SafetySync-V2-sub000/internal/auth"
	autherrors "github.com/jerrsapps1/SafetySync-V2-sub000/internal/auth/errors"
)

type fakeAuthService struct {
	LoginFn         func(ctx context.Context, email, password string) (string, auth.UserResponse, error)
	CreateAccountFn func(ctx context.Context, req auth.CreateAccountRequest) (auth.CreateAccountResponse, error)
	GetMeFn         func(ctx context.Context, userID string) (*auth.UserResponse, error)
}

func (f *fakeAuthService) Login(ctx context.Context, email, password string) (string, auth.UserResponse, error) {
	return f.LoginFn(ctx, email, password)
}
func (f *fakeAuthService) CreateAccount(ctx context.Context, req auth.CreateAccountRequest) (auth.CreateAccountResponse, error) {
	return f.CreateAccountFn(ctx, req)
}
func (f *fakeAuthService) GetMe(ctx context.Context, userID string) (*auth.UserResponse, error) {
	return f.GetMeFn(ctx, userID)
}

func TestAuthHandler_Login(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		svc := &fakeAuthService{
			LoginFn: func(ctx context.Context, email, password string) (string, auth.UserResponse, error) {
				assert.Equal(t, "jdoe@acme.com", email)
				return "signed-token", auth.UserResponse{
					ID:    uuid.New().String(),
					Email: email,
					Role:  "admin",
				}, nil
			},
		}
		h := auth.NewHandler(svc)

		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		body := `{"email":"jdoe@acme.com","password":"super secret pw"}`
		req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		c.Request = req

		h.Login(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "signed-token")
	})

	t.Run("invalid credentials are 401", func(t *testing.T) {
		svc := &fakeAuthService{
			LoginFn: func(ctx context.Context, email, password string) (string, auth.UserResponse, error) {
				return "", auth.UserResponse{}, autherrors.ErrInvalidCredentials
			},
		}
		h := auth.NewHandler(svc)

		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		body := `{"email":"jdoe@acme.com","password":"wrong"}`
		req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		c.Request = req

		h.Login(c)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "Invalid email or password")
	})

	t.Run("malformed email does not reach service", func(t *testing.T) {
		called := false
		svc := &fakeAuthService{
			LoginFn: func(ctx context.Context, email, password string) (string, auth.UserResponse, error) {
				called = true
				return "", auth.UserResponse{}, nil
			},
		}
		h := auth.NewHandler(svc)

		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		body := `{"email":"not-an-email","password":"x"}`
		req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		c.Request = req

		h.Login(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.False(t, called)
	})
}

func TestAuthHandler_CreateAccount(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success is 201", func(t *testing.T) {
		svc := &fakeAuthService{
			CreateAccountFn: func(ctx context.Context, req auth.CreateAccountRequest) (auth.CreateAccountResponse, error) {
				assert.Equal(t, "Acme Construction", req.OrganizationName)
				return auth.CreateAccountResponse{
					Token: "signed-token",
					User:  auth.UserResponse{ID: uuid.New().String(), Role: "admin"},
				}, nil
			},
		}
		h := auth.NewHandler(svc)

		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		body := `{
			"organization_name": "Acme Construction",
			"full_name": "J. Doe",
			"username": "jdoe",
			"email": "jdoe@acme.com",
			"password": "super secret pw"
		}`
		req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/create-account", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		c.Request = req

		h.CreateAccount(c)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), "signed-token")
	})

	t.Run("short password does not reach service", func(t *testing.T) {
		called := false
		svc := &fakeAuthService{
			CreateAccountFn: func(ctx context.Context, req auth.CreateAccountRequest) (auth.CreateAccountResponse, error) {
				called = true
				return auth.CreateAccountResponse{}, nil
			},
		}
		h := auth.NewHandler(svc)

		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		body := `{
			"organization_name": "Acme Construction",
			"full_name": "J. Doe",
			"username": "jdoe",
			"email": "jdoe@acme.com",
			"password": "short"
		}`
		req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/create-account", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		c.Request = req

		h.CreateAccount(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.False(t, called)
	})

	t.Run("duplicate email is 409", func(t *testing.T) {
		svc := &fakeAuthService{
			CreateAccountFn: func(ctx context.Context, req auth.CreateAccountRequest) (auth.CreateAccountResponse, error) {
				return auth.CreateAccountResponse{}, autherrors.ErrEmailAlreadyRegistered
			},
		}
		h := auth.NewHandler(svc)

		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		body := `{
			"organization_name": "Acme Construction",
			"full_name": "J. Doe",
			"username": "jdoe",
			"email": "jdoe@acme.com",
			"password": "super secret pw"
		}`
		req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/create-account", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		c.Request = req

		h.CreateAccount(c)

		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Contains(t, w.Body.String(), "CONFLICT")
	})
}

func TestAuthHandler_Me(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		userID := uuid.New().String()
		svc := &fakeAuthService{
			GetMeFn: func(ctx context.Context, id string) (*auth.UserResponse, error) {
				assert.Equal(t, userID, id)
				return &auth.UserResponse{ID: id, Username: "jdoe"}, nil
			},
		}
		h := auth.NewHandler(svc)

		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/api/v1/auth/me", nil)
		c.Set("user_id", userID)

		h.Me(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "jdoe")
	})

	t.Run("missing identity is 401", func(t *testing.T) {
		svc := &fakeAuthService{}
		h := auth.NewHandler(svc)

		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/api/v1/auth/me", nil)

		h.Me(c)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}
