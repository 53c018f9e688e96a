package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// flashCookie carries a one-shot user-visible message across the
// redirect that follows every form post.
const flashCookie = "zinojums"

// setFlash stores a message for the next rendered page.
func setFlash(c *gin.Context, message string) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(flashCookie, message, 60, "/", "", false, true)
}

// takeFlash returns the pending message, if any, and clears it.
func takeFlash(c *gin.Context) string {
	message, err := c.Cookie(flashCookie)
	if err != nil {
		return ""
	}
	c.SetCookie(flashCookie, "", -1, "/", "", false, true)
	return message
}
