package middleware

import (
	"net/http"

	"github.com/Kri-bit/ToDoMe-KristiansSvika/internal/session"

	"github.com/gin-gonic/gin"
)

// RequireAdmin guards the admin panel. The admin session is a separate
// cookie, independent of any user session.
func RequireAdmin(sessions *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(session.AdminCookie)
		if err != nil {
			c.Redirect(http.StatusFound, "/admin-pieslegties")
			c.Abort()
			return
		}

		claims, err := sessions.Verify(token)
		if err != nil || !claims.Admin {
			c.Redirect(http.StatusFound, "/admin-pieslegties")
			c.Abort()
			return
		}

		c.Next()
	}
}
