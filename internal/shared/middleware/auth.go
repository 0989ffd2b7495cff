package middleware

import (
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// ContextRoleKey is where the caller's role lands in the gin context.
const ContextRoleKey = "role"

// AuthMiddleware verifies the bearer token and attaches its role claim to
// the request context. It never rejects a request on its own: a missing or
// invalid token simply yields no role, and the service layer treats an
// absent role exactly like a non-admin one.
func AuthMiddleware(jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.Next()
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.Next()
			return
		}

		claims := jwt.MapClaims{}
		parsedToken, err := jwt.ParseWithClaims(parts[1], claims, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return []byte(jwtSecret), nil
		})
		if err != nil || !parsedToken.Valid {
			c.Next()
			return
		}

		if role, ok := claims["role"].(string); ok {
			c.Set(ContextRoleKey, role)
		}

		c.Next()
	}
}

// RoleFromContext returns the verified role, or "" when the request
// carried none.
func RoleFromContext(c *gin.Context) string {
	return c.GetString(ContextRoleKey)
}
