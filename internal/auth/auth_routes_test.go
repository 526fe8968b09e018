package auth_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/jerrsapps1/SafetySync-V2-sub000/internal/auth"
	autherrors "github.com/jerrsapps1/SafetySync-V2-sub000/internal/auth/errors"
	"github.com/jerrsapps1/SafetySync-V2-sub000/internal/ratelimit"
	"github.com/jerrsapps1/SafetySync-V2-sub000/internal/token"
	userMock "github.com/jerrsapps1/SafetySync-V2-sub000/internal/user/mock"
)

// An exhausted login limiter must not lock authenticated clients out of
// /auth/me; only the credential endpoints share the fixed window.
func TestAuthRoutes_MeNotBehindLoginLimiter(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)

	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	limiter := ratelimit.NewLimiterWithClock("auth", 2, 15*time.Minute, func() time.Time { return now })
	defer limiter.Stop()

	svc := &fakeAuthService{
		LoginFn: func(ctx context.Context, email, password string) (string, auth.UserResponse, error) {
			return "", auth.UserResponse{}, autherrors.ErrInvalidCredentials
		},
	}

	router := gin.New()
	api := router.Group("/api/v1")
	auth.RegisterRoutes(api, auth.NewHandler(svc), limiter,
		token.NewService("test-secret"), userMock.NewMockRepository(ctrl))

	doLogin := func() int {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login",
			strings.NewReader(`{"email":"jdoe@acme.com","password":"wrong-password"}`))
		req.Header.Set("Content-Type", "application/json")
		req.RemoteAddr = "203.0.113.7:51234"
		router.ServeHTTP(w, req)
		return w.Code
	}

	assert.Equal(t, http.StatusUnauthorized, doLogin())
	assert.Equal(t, http.StatusUnauthorized, doLogin())
	assert.Equal(t, http.StatusTooManyRequests, doLogin())

	// /auth/me from the same address still reaches the auth chain.
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/auth/me", nil)
	req.RemoteAddr = "203.0.113.7:51234"
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.NotContains(t, w.Body.String(), "RATE_LIMITED")
}
