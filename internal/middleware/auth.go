package middleware

import (
	"net/http"
	"strings"

	"github.com/ItaloOlivier/shopcrypto/internal/user"
	"github.com/ItaloOlivier/shopcrypto/internal/utils"

	"github.com/gin-gonic/gin"
)

func bearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if !strings.HasPrefix(header, "Bearer ") {
		return ""
	}
	return strings.TrimPrefix(header, "Bearer ")
}

func attachIdentity(c *gin.Context, claims *user.CustomClaims) {
	c.Set("user_id", claims.UserID)
	c.Set("user_email", claims.Email)
	c.Set("user_role", claims.Role)

	ctx := utils.SetUserContext(c.Request.Context(), claims.UserID, claims.Email, claims.Role)
	c.Request = c.Request.WithContext(ctx)
}

// Auth requires a valid bearer token and attaches the caller's identity to
// both the gin context and the request context.
func Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		claims, err := user.ParseJWT(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		attachIdentity(c, claims)
		c.Next()
	}
}

// OptionalAuth attaches the caller's identity when a valid token is present
// and lets anonymous requests through untouched. Checkout uses this: a session
// claims the order, but guests may order without one.
func OptionalAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			c.Next()
			return
		}

		claims, err := user.ParseJWT(token)
		if err != nil {
			// A bad token on an optional route degrades to anonymous.
			c.Next()
			return
		}

		attachIdentity(c, claims)
		c.Next()
	}
}

// RequireAdmin gates the back office. It assumes Auth already ran.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if utils.GetUserRoleFromContext(c.Request.Context()) != string(user.RoleAdmin) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		c.Next()
	}
}
