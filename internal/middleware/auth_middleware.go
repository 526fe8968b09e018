package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/jerrsapps1/SafetySync-V2-sub000/internal/shared/contextutil"
	"github.com/jerrsapps1/SafetySync-V2-sub000/internal/shared/response"
	"github.com/jerrsapps1/SafetySync-V2-sub000/internal/token"
	"github.com/jerrsapps1/SafetySync-V2-sub000/internal/user"
)

// Auth verifies the bearer token and resolves the acting user from the store.
// No request proceeds past it without a resolved identity: a token whose user
// has since disappeared is treated the same as a missing token.
func Auth(tokens token.Service, users user.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		tokenString, found := strings.CutPrefix(authHeader, "Bearer ")
		if !found || tokenString == "" {
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Token not found", nil)
			c.Abort()
			return
		}

		claims, err := tokens.Verify(tokenString)
		if err != nil {
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Invalid or expired token", nil)
			c.Abort()
			return
		}

		userID, err := uuid.Parse(claims.UserID)
		if err != nil {
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Invalid or expired token", nil)
			c.Abort()
			return
		}

		u, err := users.GetByID(c.Request.Context(), userID)
		if err != nil {
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Invalid or expired token", nil)
			c.Abort()
			return
		}

		c.Set("user_id", u.ID.String())
		c.Set("email", u.Email)
		c.Set("company_id", u.CompanyIDString())
		c.Set("role", u.Role)

		// Thread the identity through the standard context as well so the
		// service/repo layers never reach back into Gin.
		ctx := c.Request.Context()
		ctx = contextutil.WithUserID(ctx, u.ID.String())
		ctx = contextutil.WithCompanyID(ctx, u.CompanyIDString())
		ctx = contextutil.WithRole(ctx, u.Role)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

// RequireRoles rejects callers whose role is not in the allow-list. It
// composes after Auth; a request with no resolved role is forbidden.
func RequireRoles(allowedRoles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		userRole, exists := c.Get("role")
		if !exists {
			response.Error(c, http.StatusForbidden, "FORBIDDEN", "You do not have permission to access this resource", nil)
			c.Abort()
			return
		}

		isAllowed := false
		for _, role := range allowedRoles {
			if userRole == role {
				isAllowed = true
				break
			}
		}

		if !isAllowed {
			response.Error(c, http.StatusForbidden, "FORBIDDEN", "You do not have permission to access this resource", nil)
			c.Abort()
			return
		}

		c.Next()
	}
}

// RequireCompany ensures the caller belongs to a tenant. Super admins have no
// company and must not reach tenant-scoped CRUD.
func RequireCompany() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetString("company_id") == "" {
			response.Error(c, http.StatusForbidden, "FORBIDDEN", "You do not have permission to access this resource", nil)
			c.Abort()
			return
		}
		c.Next()
	}
}
