package billing

import (
	"github.com/gin-gonic/gin"
)

// RegisterAdminRoutes mounts the billing surface on the admin group. The
// group already carries auth, role gating and the admin rate limiter.
func RegisterAdminRoutes(adminGroup *gin.RouterGroup, handler *Handler) {
	adminGroup.GET("/organizations/:id/billing", handler.GetBilling)
	adminGroup.POST("/organizations/:id/billing-override", handler.CreateOverride)
	adminGroup.DELETE("/organizations/:id/billing-override", handler.DeleteOverride)
	adminGroup.GET("/organizations/:id/billing-notes", handler.ListNotes)
	adminGroup.POST("/organizations/:id/billing-notes", handler.AddNote)
	adminGroup.POST("/organizations/:id/portal-link", handler.CreatePortalLink)
}
