package middleware

import (
	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/projectpulse/project-management-api/internal/constants"
	apierrors "github.com/projectpulse/project-management-api/internal/errors"
)

// RequireAuth resolves the identity snapshot stored in the session and
// rejects anonymous requests. The snapshot is read from the session alone;
// the user row is never re-queried, so the resolved identity reflects the
// values at login even if the row changed since.
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		session := sessions.Default(c)
		userID := session.Get(constants.SessionKeyUserID)

		if userID == nil {
			apierrors.Unauthorized(c, "")
			c.Abort()
			return
		}

		// Store the snapshot in context for easy access in handlers
		c.Set(constants.ContextKeyUserID, userID)
		if email, ok := session.Get(constants.SessionKeyEmail).(string); ok {
			c.Set(constants.ContextKeyEmail, email)
		}
		if username, ok := session.Get(constants.SessionKeyUsername).(string); ok {
			c.Set(constants.ContextKeyUsername, username)
		}
		c.Next()
	}
}

// GetUserID retrieves the current user ID from context
func GetUserID(c *gin.Context) (uint64, bool) {
	userID, exists := c.Get(constants.ContextKeyUserID)
	if !exists {
		return 0, false
	}

	switch v := userID.(type) {
	case uint64:
		return v, true
	case uint:
		return uint64(v), true
	case int:
		if v < 0 {
			return 0, false
		}
		return uint64(v), true
	default:
		return 0, false
	}
}

// GetEmail retrieves the session email snapshot from context
func GetEmail(c *gin.Context) (string, bool) {
	email, exists := c.Get(constants.ContextKeyEmail)
	if !exists {
		return "", false
	}
	v, ok := email.(string)
	return v, ok
}

// GetUsername retrieves the session username snapshot from context
func GetUsername(c *gin.Context) (string, bool) {
	username, exists := c.Get(constants.ContextKeyUsername)
	if !exists {
		return "", false
	}
	v, ok := username.(string)
	return v, ok
}
