package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Muhammad-Nafis-Abdullah/mna-sensors-server/internal/service"
)

const emailKey = "userEmail"

// RequireAuth verifies the bearer token on every request. A missing
// Authorization header is 401; a present but unverifiable token is 403.
func RequireAuth(auth *service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "UnAuthorized access"})
			return
		}

		claims, err := auth.VerifyToken(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "Forbidden access"})
			return
		}

		c.Set(emailKey, claims.Email)
		c.Next()
	}
}

// RequireAdmin gates admin-only routes on the stored role of the
// authenticated caller. RequireAuth must run first.
func RequireAdmin(authz *service.AuthzService) gin.HandlerFunc {
	return func(c *gin.Context) {
		isAdmin, err := authz.IsAdmin(c.Request.Context(), GetUserEmail(c))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
			return
		}
		if !isAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "Forbidden access"})
			return
		}
		c.Next()
	}
}

func GetUserEmail(c *gin.Context) string {
	email, _ := c.Get(emailKey)
	e, _ := email.(string)
	return e
}
