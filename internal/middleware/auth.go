package middleware

import (
	"net/http"

	"farmline/internal/models"
	"farmline/internal/session"

	"github.com/gin-gonic/gin"
)

// RequireLogin redirects anonymous visitors to the login page with the
// given notice.
func RequireLogin(notice string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := session.Current(c); !ok {
			if notice != "" {
				_ = session.AddFlash(c, "error", notice)
			}
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}
		c.Next()
	}
}

// RequireUserType additionally demands the session user be of the given
// type. The denial never reveals what the target resource was.
func RequireUserType(userType models.UserType, notice string) gin.HandlerFunc {
	return func(c *gin.Context) {
		ident, ok := session.Current(c)
		if !ok || ident.UserType != userType {
			if notice != "" {
				_ = session.AddFlash(c, "error", notice)
			}
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}
		c.Next()
	}
}

// RequireResetMarker gates the reset-password page behind a completed
// forgot-password identity check.
func RequireResetMarker() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := session.ResetUserID(c); !ok {
			c.Redirect(http.StatusFound, "/forgot_password")
			c.Abort()
			return
		}
		c.Next()
	}
}

// RequireAdminKey protects the admin stats endpoint with a static key from
// configuration. An empty configured key disables the endpoint.
func RequireAdminKey(statsKey string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if statsKey == "" {
			c.AbortWithStatus(http.StatusNotFound)
			return
		}

		key := c.GetHeader("X-Admin-Key")
		if key == "" {
			key = c.Query("key")
		}
		if key != statsKey {
			c.AbortWithStatus(http.StatusForbidden)
			return
		}
		c.Next()
	}
}
