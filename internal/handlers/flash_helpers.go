package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rrparlour/parlour-booking/internal/middleware"
)

// flashAndRedirect queues a one-shot notice on the session and answers the
// form post with a redirect. Every form route in the app responds this way.
func flashAndRedirect(c *gin.Context, target, message, category string) {
	if st := middleware.CurrentSession(c); st != nil {
		st.AddFlash(message, category)
	}
	c.Redirect(http.StatusFound, target)
}
