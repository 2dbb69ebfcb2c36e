package middleware

import (
	"strings"

	"github.com/boardinghouse/rental-backend/internal/config"
	"github.com/boardinghouse/rental-backend/internal/models"
	"github.com/boardinghouse/rental-backend/internal/utils"
	"github.com/gin-gonic/gin"
)

// AuthMiddleware validates the bearer token and resolves the caller identity
// into the request context. Downstream handlers pass that identity to the
// services explicitly.
func AuthMiddleware(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			utils.SendUnauthorized(c, "Authorization header required")
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			utils.SendUnauthorized(c, "Bearer token required")
			c.Abort()
			return
		}

		claims, err := utils.ValidateToken(tokenString, cfg.JWTSecret)
		if err != nil || claims.Type != string(utils.AccessToken) {
			utils.SendUnauthorized(c, "Invalid token")
			c.Abort()
			return
		}

		c.Set("user_id", claims.UserID)
		c.Set("user_email", claims.Email)
		c.Set("user_role", claims.Role)
		c.Next()
	}
}

func AdminOnly() gin.HandlerFunc {
	return requireRole(models.RoleAdmin)
}

func LandlordOnly() gin.HandlerFunc {
	return requireRole(models.RoleLandlord)
}

func StudentOnly() gin.HandlerFunc {
	return requireRole(models.RoleStudent)
}

func requireRole(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetString("user_role") != role {
			utils.SendForbidden(c, role+" access required")
			c.Abort()
			return
		}
		c.Next()
	}
}
