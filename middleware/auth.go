package middleware

import (
	"net/http"
	"strings"

	"github.com/Akshay02-cmd/Mama-s-kitchen-backend/models"
	"github.com/Akshay02-cmd/Mama-s-kitchen-backend/token"

	"github.com/gin-gonic/gin"
)

// IdentityKey is where the resolved identity lives in gin context
const IdentityKey = "identity"

// CookieName carries the bearer token for browser clients
const CookieName = "token"

// extractToken pulls the bearer token from the cookie or the
// Authorization header. The cookie wins when both are present.
func extractToken(c *gin.Context) string {
	if cookie, err := c.Cookie(CookieName); err == nil && cookie != "" {
		return cookie
	}
	authHeader := c.GetHeader("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimPrefix(authHeader, "Bearer ")
	}
	return ""
}

// AuthRequired verifies the bearer token and attaches the resolved
// identity to the request context.
func AuthRequired(tokens *token.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := extractToken(c)
		if tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"message": "authentication required",
			})
			return
		}
		identity, err := tokens.Verify(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"message": "invalid or expired token",
			})
			return
		}
		c.Set(IdentityKey, *identity)
		c.Next()
	}
}

// RoleRequired enforces that the caller holds one of the allowed roles.
// Must run after AuthRequired. An empty role list admits any
// authenticated identity.
func RoleRequired(roles ...models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, ok := CurrentIdentity(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"success": false,
				"message": "identity not found in context",
			})
			return
		}
		if len(roles) == 0 {
			c.Next()
			return
		}
		for _, r := range roles {
			if identity.Role == r {
				c.Next()
				return
			}
		}
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
			"success": false,
			"message": "access denied. required role(s): " + rolesString(roles),
		})
	}
}

func rolesString(roles []models.Role) string {
	s := ""
	for i, r := range roles {
		if i > 0 {
			s += ", "
		}
		s += string(r)
	}
	return s
}

// CurrentIdentity extracts the caller identity set by AuthRequired.
func CurrentIdentity(c *gin.Context) (token.Identity, bool) {
	val, exists := c.Get(IdentityKey)
	if !exists {
		return token.Identity{}, false
	}
	identity, ok := val.(token.Identity)
	return identity, ok
}
