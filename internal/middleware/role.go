package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RequireRole is a middleware that checks if the user has the required role.
// It must run after OAuth2Auth.
func RequireRole(requiredRole string) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, exists := c.Get(ContextUserID)
		if !exists {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
			return
		}

		userRole := c.GetString(ContextUserRole)
		if userRole == "" {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "User role not found in token"})
			return
		}

		if userRole != requiredRole {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"error":         "Insufficient permissions",
				"required_role": requiredRole,
				"user_role":     userRole,
				"user_id":       userID,
			})
			return
		}

		c.Next()
	}
}
