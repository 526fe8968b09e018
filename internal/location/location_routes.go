package location

import (
	"github.com/gin-gonic/gin"

	"github.com/jerrsapps1/SafetySync-V2-sub000/internal/middleware"
	"github.com/jerrsapps1/SafetySync-V2-sub000/internal/user"
)

func RegisterRoutes(tenantGroup *gin.RouterGroup, handler *Handler) {
	locations := tenantGroup.Group("/locations")
	locations.Use(middleware.RequireCompany())
	locations.Use(middleware.RequireRoles(user.RoleEmployee, user.RoleAdmin))
	{
		locations.GET("", middleware.RateLimitByUser(3, 10), handler.GetAll)
		locations.GET("/:id", middleware.RateLimitByUser(3, 10), handler.GetByID)
		locations.POST("", middleware.RateLimitByUser(0.5, 3), handler.Create)
		locations.PATCH("/:id", middleware.RateLimitByUser(0.5, 3), handler.Update)
		locations.DELETE("/:id", middleware.RateLimitByUser(0.2, 2), handler.Delete)
	}
}
