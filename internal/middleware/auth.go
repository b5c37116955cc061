package middleware

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"questup-backend/internal/services"

	"github.com/gin-gonic/gin"
)

// JWTAuth resolves the bearer token to a teacher and stores the teacher id in
// the context under "teacher_id".
func JWTAuth(authService *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authorization header required"})
			return
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid authorization header format"})
			return
		}

		email, err := authService.ValidateToken(parts[1])
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired token"})
			return
		}

		teacher, err := authService.GetTeacherByEmail(email)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired token"})
			return
		}

		c.Set("teacher_id", teacher.ID)
		c.Next()
	}
}

// AdminAuth gates privileged routes on the X-Admin-Secret header. The compare
// is constant-time so the secret cannot be probed byte by byte.
func AdminAuth(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.GetHeader("X-Admin-Secret")
		if key == "" || subtle.ConstantTimeCompare([]byte(key), []byte(secret)) != 1 {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid admin secret"})
			return
		}
		c.Next()
	}
}
