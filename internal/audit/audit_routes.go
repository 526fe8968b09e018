package audit

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts the audit read path on the admin group. The group
// already carries auth, role gating and the admin rate limiter.
func RegisterRoutes(admin *gin.RouterGroup, handler *Handler) {
	admin.GET("/audit", handler.List)
}
