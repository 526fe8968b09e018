package company

import (
	"github.com/gin-gonic/gin"

	"github.com/jerrsapps1/SafetySync-V2-sub000/internal/middleware"
	"github.com/jerrsapps1/SafetySync-V2-sub000/internal/user"
)

// RegisterRoutes mounts the tenant-facing company surface. tenantGroup
// already carries Auth; mutations are owner-only.
func RegisterRoutes(tenantGroup *gin.RouterGroup, handler *Handler) {
	comp := tenantGroup.Group("/company")
	comp.Use(middleware.RequireCompany())
	{
		comp.GET("", handler.GetOwn)
		comp.PATCH("",
			middleware.RequireRoles(user.RoleAdmin),
			handler.UpdateOwn,
		)
		comp.POST("/complete-onboarding",
			middleware.RequireRoles(user.RoleAdmin),
			handler.CompleteOnboarding,
		)
	}
}

// RegisterAdminRoutes mounts the cross-tenant organization surface.
func RegisterAdminRoutes(adminGroup *gin.RouterGroup, handler *Handler) {
	adminGroup.GET("/organizations", handler.AdminList)
	adminGroup.GET("/organizations/:id", handler.AdminGet)
}
