package auth

import (
	"github.com/gin-gonic/gin"

	"github.com/jerrsapps1/SafetySync-V2-sub000/internal/middleware"
	"github.com/jerrsapps1/SafetySync-V2-sub000/internal/ratelimit"
	"github.com/jerrsapps1/SafetySync-V2-sub000/internal/token"
	"github.com/jerrsapps1/SafetySync-V2-sub000/internal/user"
)

// RegisterRoutes mounts /auth. Only the credential endpoints sit behind the
// fixed-window limiter; clients poll /auth/me to check their session, so it
// carries the full auth chain but no limiter.
func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	authLimiter *ratelimit.Limiter,
	tokens token.Service,
	users user.Repository,
) {
	authGroup := r.Group("/auth")

	limited := authGroup.Group("")
	limited.Use(middleware.FixedWindowByIP(authLimiter))
	{
		limited.POST("/login", handler.Login)
		limited.POST("/create-account", handler.CreateAccount)
	}

	authGroup.GET("/me",
		middleware.Auth(tokens, users),
		handler.Me,
	)
}
