package middleware

import (
	"net/http"
	"strings"

	"slotbook/internal/gateway"

	"github.com/gin-gonic/gin"
)

const ctxTokenKey = "bearer_token"

// RequireCredential extracts the caller's bearer token and stashes it on
// the request context for the upstream gateway to forward. The token is
// not validated here; the upstream reservation API owns authentication
// and rejects bad credentials itself.
func RequireCredential() gin.HandlerFunc {
	return func(c *gin.Context) {
		var token string
		authHeader := c.GetHeader("Authorization")
		if authHeader != "" && strings.HasPrefix(authHeader, "Bearer ") {
			token = strings.TrimSpace(authHeader[len("Bearer "):])
		}

		if token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Access token required",
			})
			c.Abort()
			return
		}

		c.Set(ctxTokenKey, token)
		c.Request = c.Request.WithContext(gateway.WithToken(c.Request.Context(), token))
		c.Next()
	}
}

func GetToken(c *gin.Context) (string, bool) {
	token, exists := c.Get(ctxTokenKey)
	if !exists {
		return "", false
	}
	t, ok := token.(string)
	return t, ok
}
