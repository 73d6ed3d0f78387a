package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/garagehub/autoshop-api/internal/session"
)

// SessionRequired guards routes that rely on the login session rather than
// the bearer token.
func SessionRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !session.IsLogin(c) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "login_required"})
			return
		}
		c.Next()
	}
}
