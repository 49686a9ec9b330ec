package middleware

import (
	"net/http"
	"strings"

	"boystrip/pkg/utils"

	"github.com/gin-gonic/gin"
)

// JWTAuthMiddleware enforces the trip gate. Browsers cannot set headers on a
// websocket handshake, so a "token" query parameter is accepted as well.
func JWTAuthMiddleware(issuer *utils.TokenIssuer) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := ""
		authHeader := c.GetHeader("Authorization")
		switch {
		case strings.HasPrefix(authHeader, "Bearer "):
			tokenString = strings.TrimPrefix(authHeader, "Bearer ")
		case c.Query("token") != "":
			tokenString = c.Query("token")
		default:
			utils.RespondError(c, http.StatusUnauthorized, "Authorization header missing or invalid")
			c.Abort()
			return
		}

		claims, err := issuer.ValidateToken(tokenString)
		if err != nil {
			utils.RespondError(c, http.StatusUnauthorized, "Invalid or expired token")
			c.Abort()
			return
		}

		c.Set("Role", claims.Role)
		c.Next()
	}
}

// RoleMiddleware lets admin through everywhere.
func RoleMiddleware(requiredRole string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := c.GetString("Role")

		if role != requiredRole && role != utils.RoleAdmin {
			utils.RespondError(c, http.StatusForbidden, "Forbidden: insufficient permissions")
			c.Abort()
			return
		}

		c.Next()
	}
}
