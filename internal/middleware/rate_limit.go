package middleware

import (
	"net/http"
	"strconv"
	"sync"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"github.com/jerrsapps1/SafetySync-V2-sub000/internal/ratelimit"
	"github.com/jerrsapps1/SafetySync-V2-sub000/internal/shared/response"
)

// FixedWindowByIP guards a route group with a fixed-window per-IP limiter.
// Rejections carry a Retry-After header computed from the window deadline.
// Client identity comes from gin's ClientIP, which honors the trusted proxy
// configuration; under an untrusted proxy this is spoofable.
func FixedWindowByIP(limiter *ratelimit.Limiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		allowed, retryAfter := limiter.Allow(c.ClientIP())
		if !allowed {
			seconds := int(retryAfter.Seconds())
			if seconds < 1 {
				seconds = 1
			}
			c.Header("Retry-After", strconv.Itoa(seconds))
			response.Error(c, http.StatusTooManyRequests, "RATE_LIMITED", "Too many requests, please try again later", gin.H{
				"retry_after_seconds": seconds,
			})
			c.Abort()
			return
		}
		c.Next()
	}
}

type userRateLimiter struct {
	users map[string]*rate.Limiter
	mu    sync.Mutex
	r     rate.Limit
	b     int
}

func (u *userRateLimiter) get(key string) *rate.Limiter {
	u.mu.Lock()
	defer u.mu.Unlock()

	limiter, exists := u.users[key]
	if !exists {
		limiter = rate.NewLimiter(u.r, u.b)
		u.users[key] = limiter
	}

	return limiter
}

// RateLimitByUser applies a token-bucket limit keyed on the authenticated
// user, for the tenant CRUD surface. r is requests per second, b the burst.
func RateLimitByUser(r rate.Limit, b int) gin.HandlerFunc {
	limiter := &userRateLimiter{users: make(map[string]*rate.Limiter), r: r, b: b}
	return func(c *gin.Context) {
		userID := c.GetString("user_id")
		if userID == "" {
			c.Next()
			return
		}
		if !limiter.get(userID).Allow() {
			response.Error(c, http.StatusTooManyRequests, "RATE_LIMITED", "Too many requests, please try again later", nil)
			c.Abort()
			return
		}
		c.Next()
	}
}
