package middleware

import (
	"strings"

	"github.com/Haris-56/coupon/pkg/auth"
	"github.com/gin-gonic/gin"
)

const sessionKey = "session"

// Session resolves the caller's session from the bearer token, if any, and
// stores it on the request context. It never rejects: unauthenticated
// callers carry a zero session and each mutation action enforces its own
// role requirements.
func Session(tokens *auth.TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			c.Next()
			return
		}

		sess, err := tokens.Verify(strings.TrimPrefix(header, "Bearer "))
		if err == nil {
			c.Set(sessionKey, sess)
		}
		c.Next()
	}
}

// GetSession returns the verified session for the request, or the zero
// session for anonymous callers.
func GetSession(c *gin.Context) auth.Session {
	if v, ok := c.Get(sessionKey); ok {
		if sess, ok := v.(auth.Session); ok {
			return sess
		}
	}
	return auth.Session{}
}
