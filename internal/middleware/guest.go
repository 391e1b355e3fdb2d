package middleware

import (
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/projectpulse/project-management-api/internal/constants"
)

// RedirectIfAuthenticated sends already-authenticated sessions away from
// the login and registration entry points to the given target. Anonymous
// requests pass through unchanged.
func RedirectIfAuthenticated(target string) gin.HandlerFunc {
	return func(c *gin.Context) {
		session := sessions.Default(c)
		if session.Get(constants.SessionKeyUserID) != nil {
			c.Redirect(http.StatusFound, target)
			c.Abort()
			return
		}
		c.Next()
	}
}
