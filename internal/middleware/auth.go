package middleware

import (
	"net/http"

	"github.com/Kri-bit/ToDoMe-KristiansSvika/internal/session"

	"github.com/gin-gonic/gin"
)

const usernameKey = "username"

// RequireSession guards user-facing routes. A missing or invalid session
// cookie redirects to the login page with no error message.
func RequireSession(sessions *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(session.UserCookie)
		if err != nil {
			c.Redirect(http.StatusFound, "/pieslegties")
			c.Abort()
			return
		}

		claims, err := sessions.Verify(token)
		if err != nil || claims.Admin {
			c.Redirect(http.StatusFound, "/pieslegties")
			c.Abort()
			return
		}

		c.Set(usernameKey, claims.Username)
		c.Next()
	}
}

// GetUsername returns the session username stored by RequireSession.
func GetUsername(c *gin.Context) (string, bool) {
	username, exists := c.Get(usernameKey)
	if !exists {
		return "", false
	}
	return username.(string), true
}
