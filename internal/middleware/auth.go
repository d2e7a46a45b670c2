package middleware

import (
	"net/http"
	"strings"

	"github.com/Mathdino/mb-cardapionline/internal/auth"

	"github.com/gin-gonic/gin"
)

func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")

		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "missing authorization header"})
			c.Abort()
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid authorization format, use 'Bearer <token>'"})
			c.Abort()
			return
		}

		claims, err := auth.ValidateToken(parts[1])
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid token: " + err.Error()})
			c.Abort()
			return
		}

		// Attach user info to request context
		c.Set("userID", claims.UserID)
		c.Set("userEmail", claims.Email)
		c.Set("userRole", claims.Role)
		c.Set("companyID", claims.CompanyID)
		c.Next()
	}
}

// RequireCompany blocks COMPANY routes for tokens that carry no company.
func RequireCompany() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetString("companyID") == "" {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "no company attached to account"})
			return
		}
		c.Next()
	}
}
