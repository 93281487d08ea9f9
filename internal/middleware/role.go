package middleware

import (
	"net/http"

	"powerlink/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

// RequireRole restricts a route to the listed roles. It must run after Auth;
// a missing role in context means the chain is mis-mounted and is reported as
// 401, never as 403.
func RequireRole(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, exists := c.Get("role")
		if !exists {
			response.Error(c, http.StatusUnauthorized, "Not authorized to access this route")
			c.Abort()
			return
		}

		for _, r := range roles {
			if role.(string) == r {
				c.Next()
				return
			}
		}

		response.Error(c, http.StatusForbidden, "User role not authorized to access this route")
		c.Abort()
	}
}

// AdminOnly middleware requires admin role
func AdminOnly() gin.HandlerFunc {
	return RequireRole("admin")
}
