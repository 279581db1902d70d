package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Roles a session may carry.
const (
	RoleCustomer = "customer"
	RoleOwner    = "owner"
	RoleAdmin    = "admin"
)

// RequireRole gates a route on an authenticated session whose role matches.
// Failures redirect to the public entry point with no notice: the caller
// learns nothing about why access was denied.
func RequireRole(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		st := CurrentSession(c)
		if st == nil || !st.LoggedIn() {
			c.Redirect(http.StatusFound, "/")
			c.Abort()
			return
		}
		if role != "" && st.Role != role {
			c.Redirect(http.StatusFound, "/")
			c.Abort()
			return
		}
		c.Next()
	}
}
