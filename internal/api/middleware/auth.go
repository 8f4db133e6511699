package middleware

import (
	"strings"

	"uddaan/internal/models"
	"uddaan/internal/services"

	"github.com/gin-gonic/gin"
)

// Context keys set by AuthMiddleware.
const (
	ContextUser   = "user"
	ContextUserID = "user_id"
)

// AuthMiddleware resolves the bearer token to an active user with its role
// loaded, or terminates the request with 401. The response wording does not
// distinguish a deactivated account from a forged token.
func AuthMiddleware(authService *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(401, gin.H{"success": false, "message": "Access denied. No token provided."})
			c.Abort()
			return
		}

		// Extract token from "Bearer <token>"
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.JSON(401, gin.H{"success": false, "message": "Invalid token."})
			c.Abort()
			return
		}

		user, err := authService.ResolveToken(parts[1])
		if err != nil {
			c.JSON(401, gin.H{"success": false, "message": "Invalid token."})
			c.Abort()
			return
		}

		c.Set(ContextUser, user)
		c.Set(ContextUserID, user.ID)

		c.Next()
	}
}

// RequirePermission allows the request through when the resolved user's role
// holds the exact token or the "all" wildcard. The denial message never names
// the missing capability.
func RequirePermission(permission string) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := CurrentUser(c)
		if user == nil {
			c.JSON(401, gin.H{"success": false, "message": "Authentication required"})
			c.Abort()
			return
		}

		if !user.Role.Allows(permission) {
			c.JSON(403, gin.H{"success": false, "message": "Insufficient permissions"})
			c.Abort()
			return
		}

		c.Next()
	}
}

// CurrentUser returns the resolved user from the request context, or nil.
func CurrentUser(c *gin.Context) *models.User {
	v, exists := c.Get(ContextUser)
	if !exists {
		return nil
	}
	user, ok := v.(*models.User)
	if !ok {
		return nil
	}
	return user
}
