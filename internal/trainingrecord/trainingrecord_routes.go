package trainingrecord

import (
	"github.com/gin-gonic/gin"

	"github.com/jerrsapps1/SafetySync-V2-sub000/internal/middleware"
	"github.com/jerrsapps1/SafetySync-V2-sub000/internal/user"
)

// RegisterRoutes mounts /training-records on the tenant group (auth already applied).
func RegisterRoutes(tenantGroup *gin.RouterGroup, handler *Handler) {
	records := tenantGroup.Group("/training-records")
	records.Use(middleware.RequireCompany())
	records.Use(middleware.RequireRoles(user.RoleEmployee, user.RoleAdmin))
	{
		records.GET("",
			middleware.RateLimitByUser(3, 10),
			handler.GetAll,
		)

		records.GET("/:id",
			middleware.RateLimitByUser(3, 10),
			handler.GetByID,
		)

		records.GET("/:id/certificate",
			middleware.RateLimitByUser(1, 5),
			handler.DownloadCertificate,
		)

		records.POST("",
			middleware.RateLimitByUser(0.5, 3),
			handler.Create,
		)

		records.PATCH("/:id",
			middleware.RateLimitByUser(0.5, 3),
			handler.Update,
		)

		records.DELETE("/:id",
			middleware.RateLimitByUser(0.2, 2),
			handler.Delete,
		)
	}
}
