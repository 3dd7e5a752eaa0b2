package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"jobboard-backend/internal/authz"
	"jobboard-backend/internal/shared/auth"
	"jobboard-backend/internal/shared/server/respond"
)

const (
	userIDKey   = "userId"
	userNameKey = "userName"
	userRoleKey = "userRole"
)

// Auth validates Bearer tokens and stores the principal in context.
func Auth(signer *auth.Signer) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method == http.MethodOptions {
			c.Status(http.StatusNoContent)
			return
		}

		authHeader := strings.TrimSpace(c.GetHeader("Authorization"))
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			respond.Error(c, http.StatusUnauthorized, "unauthorized", "missing or invalid token", nil)
			return
		}

		token := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer"))
		if token == "" {
			respond.Error(c, http.StatusUnauthorized, "unauthorized", "missing or invalid token", nil)
			return
		}

		claims, err := signer.Verify(token)
		if err != nil {
			respond.Error(c, http.StatusUnauthorized, "unauthorized", "missing or invalid token", nil)
			return
		}
		role, ok := authz.ParseRole(claims.Role)
		if !ok {
			respond.Error(c, http.StatusUnauthorized, "unauthorized", "missing or invalid token", nil)
			return
		}

		c.Set(userIDKey, claims.Sub)
		c.Set(userNameKey, claims.Name)
		c.Set(userRoleKey, string(role))
		c.Next()
	}
}

// PrincipalFromContext fetches the principal set by the Auth middleware.
// The zero Principal is returned for unauthenticated requests.
func PrincipalFromContext(c *gin.Context) authz.Principal {
	if c == nil {
		return authz.Principal{}
	}
	role, _ := authz.ParseRole(c.GetString(userRoleKey))
	return authz.Principal{
		ID:   c.GetString(userIDKey),
		Name: c.GetString(userNameKey),
		Role: role,
	}
}

// UserIDFromContext fetches the user ID set by the Auth middleware.
func UserIDFromContext(c *gin.Context) string {
	if c == nil {
		return ""
	}
	return c.GetString(userIDKey)
}
