package middleware

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"basepost.app/server/internal/model"
	"basepost.app/server/internal/service"
)

const identityKey = "authenticated_user"

// RequireIdentity resolves the X-Session-Token header to a user and aborts
// with 401 when it is missing or invalid. Handlers downstream read the user
// with UserFrom instead of trusting client-supplied ids.
func RequireIdentity(identity service.IdentityService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.GetHeader("X-Session-Token")
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "session token is required"})
			return
		}

		user, err := identity.Resolve(c.Request.Context(), token)
		if err != nil {
			if errors.Is(err, service.ErrInvalidSession) {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired session"})
				return
			}
			slog.ErrorContext(c.Request.Context(), "failed to resolve session", "error", err)
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "failed to resolve session"})
			return
		}

		c.Set(identityKey, user)
		c.Next()
	}
}

// UserFrom returns the authenticated user set by RequireIdentity, or nil.
func UserFrom(c *gin.Context) *model.User {
	if v, ok := c.Get(identityKey); ok {
		if user, ok := v.(*model.User); ok {
			return user
		}
	}
	return nil
}
