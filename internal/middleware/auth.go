package middleware

import (
	"context"
	"net/http"
	"strings"

	"powerlink/internal/domain"
	jwtsvc "powerlink/internal/pkg/jwt"
	"powerlink/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

// UserLoader resolves an authenticated account id to the account itself.
type UserLoader interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
}

// Auth validates the bearer token and attaches the account to the request
// context. Missing, malformed or expired tokens — and tokens whose account no
// longer exists — all yield 401.
func Auth(jwt *jwtsvc.Service, users UserLoader) gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.GetHeader("Authorization")
		if h == "" || !strings.HasPrefix(h, "Bearer ") {
			response.Error(c, http.StatusUnauthorized, "Not authorized to access this route")
			c.Abort()
			return
		}

		tokenStr := strings.TrimSpace(strings.TrimPrefix(h, "Bearer "))
		if tokenStr == "" {
			response.Error(c, http.StatusUnauthorized, "Not authorized to access this route")
			c.Abort()
			return
		}

		claims, err := jwt.ValidateToken(tokenStr)
		if err != nil {
			response.Error(c, http.StatusUnauthorized, "Not authorized to access this route")
			c.Abort()
			return
		}

		user, err := users.GetByID(c.Request.Context(), claims.UserID)
		if err != nil {
			response.Error(c, http.StatusUnauthorized, "Not authorized to access this route")
			c.Abort()
			return
		}
		user.Sanitize()

		c.Set("user_id", user.ID)
		c.Set("role", string(user.Role))
		c.Set("user", user)

		c.Next()
	}
}
