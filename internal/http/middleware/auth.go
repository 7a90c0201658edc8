package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const (
	adminIDKey    = "admin_id"
	adminEmailKey = "admin_email"
)

// RequireAdmin verifies the bearer token and exposes the admin identity
// to handlers. Missing, malformed or expired tokens all map to 401 with
// a fixed body.
func RequireAdmin(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || strings.TrimSpace(parts[1]) == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authentication token missing"})
			return
		}

		token, err := jwt.Parse(parts[1], func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return secret, nil
		})
		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid authentication token"})
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid authentication token"})
			return
		}

		if id, ok := claims["admin_id"].(float64); ok {
			c.Set(adminIDKey, int64(id))
		}
		if email, ok := claims["email"].(string); ok {
			c.Set(adminEmailKey, email)
		}
		c.Next()
	}
}

// GetAdminID returns the authenticated admin id, 0 when unauthenticated.
func GetAdminID(c *gin.Context) int64 {
	if v, ok := c.Get(adminIDKey); ok {
		if id, ok := v.(int64); ok {
			return id
		}
	}
	return 0
}

// GetAdminEmail returns the authenticated admin email claim.
func GetAdminEmail(c *gin.Context) string {
	if v, ok := c.Get(adminEmailKey); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}
