package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"unistay/api/internal/config"
	"unistay/api/internal/policy"
	"unistay/api/internal/security"
)

const sessionKey = "session"

// SessionLoader decodes the session cookie, or a bearer token for API
// clients, into the request context. An absent or invalid token simply
// leaves the request anonymous; downstream code cannot tell the two apart.
func SessionLoader(cfg *config.AppConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		if token := extractToken(c, cfg.Security.CookieName); token != "" {
			if session, err := security.ParseSessionToken(token, cfg.Security.SessionSecret); err == nil {
				c.Set(sessionKey, session)
			}
		}
		c.Next()
	}
}

func extractToken(c *gin.Context, cookieName string) string {
	if cookie, err := c.Cookie(cookieName); err == nil && cookie != "" {
		return cookie
	}

	authHeader := c.GetHeader("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimPrefix(authHeader, "Bearer ")
	}
	return ""
}

// SessionFrom returns the decoded session for the request, or nil when the
// request is anonymous.
func SessionFrom(c *gin.Context) *policy.Session {
	v, ok := c.Get(sessionKey)
	if !ok {
		return nil
	}
	session, _ := v.(*policy.Session)
	return session
}
