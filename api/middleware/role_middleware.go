package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"shiftline-backend/shared/database/models"
)

// RequireRole allows only callers whose role is in the given set. It must run
// after AuthMiddleware. A failed check denies access without touching state.
func RequireRole(roles ...models.Role) gin.HandlerFunc {
	allowed := make(map[models.Role]struct{}, len(roles))
	for _, r := range roles {
		allowed[r] = struct{}{}
	}
	return func(c *gin.Context) {
		user := CurrentUser(c)
		if user == nil {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Authentication required"})
			c.Abort()
			return
		}
		if _, ok := allowed[user.Role]; !ok {
			c.JSON(http.StatusForbidden, gin.H{"message": "Insufficient permissions"})
			c.Abort()
			return
		}
		c.Next()
	}
}

// RequireManager allows owners and managers.
func RequireManager() gin.HandlerFunc {
	return RequireRole(models.RoleOwner, models.RoleManager)
}

// RequireOwner allows owners only.
func RequireOwner() gin.HandlerFunc {
	return RequireRole(models.RoleOwner)
}
