package middleware

import (
	"net/http"
	"strings"

	"trivia-api/internal/apierror"
	"trivia-api/internal/services"

	"github.com/gin-gonic/gin"
)

// AdminAuth requires a bearer token issued by authService. When the service
// is disabled every request passes through.
func AdminAuth(authService *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !authService.Enabled() {
			c.Next()
			return
		}

		header := c.GetHeader("Authorization")
		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			abortUnauthorized(c)
			return
		}

		if err := authService.ValidateToken(parts[1]); err != nil {
			abortUnauthorized(c)
			return
		}

		c.Next()
	}
}

func abortUnauthorized(c *gin.Context) {
	apierror.Abort(c, http.StatusUnauthorized, apierror.MessageUnauthorized)
}
