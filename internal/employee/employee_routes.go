package employee

import (
	"github.com/gin-gonic/gin"

	"github.com/jerrsapps1/SafetySync-V2-sub000/internal/middleware"
	"github.com/jerrsapps1/SafetySync-V2-sub000/internal/user"
)

// RegisterRoutes mounts /employees on the tenant group (auth already applied).
func RegisterRoutes(tenantGroup *gin.RouterGroup, handler *Handler) {
	employees := tenantGroup.Group("/employees")
	employees.Use(middleware.RequireCompany())
	employees.Use(middleware.RequireRoles(user.RoleEmployee, user.RoleAdmin))
	{
		employees.GET("",
			middleware.RateLimitByUser(3, 10),
			handler.GetAll,
		)

		employees.GET("/options",
			middleware.RateLimitByUser(5, 20),
			handler.GetOptions,
		)

		employees.GET("/:id",
			middleware.RateLimitByUser(3, 10),
			handler.GetByID,
		)

		employees.POST("",
			middleware.RateLimitByUser(0.5, 3),
			handler.Create,
		)

		employees.PATCH("/:id",
			middleware.RateLimitByUser(0.5, 3),
			handler.Update,
		)

		employees.DELETE("/:id",
			middleware.RateLimitByUser(0.2, 2),
			handler.Delete,
		)
	}
}
