package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"unistay/api/internal/policy"
)

// PageGate enforces the access policy on server-rendered routes. The policy
// decision is the same as for API routes; only the response shape differs:
// browsers get redirects, never error bodies.
func PageGate() gin.HandlerFunc {
	return func(c *gin.Context) {
		switch d := policy.Decide(c.Request.URL.Path, SessionFrom(c)); d.Kind {
		case policy.KindRedirect:
			c.Redirect(http.StatusFound, d.Target)
			c.Abort()
		case policy.KindUnauthenticated:
			c.Redirect(http.StatusFound, policy.SignInPath)
			c.Abort()
		default:
			c.Next()
		}
	}
}

// APIGate enforces the same policy on JSON routes, answering 401 for missing
// sessions and 403 where a page would have been redirected.
func APIGate() gin.HandlerFunc {
	return func(c *gin.Context) {
		switch d := policy.Decide(c.Request.URL.Path, SessionFrom(c)); d.Kind {
		case policy.KindRedirect:
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "forbidden"})
		case policy.KindUnauthenticated:
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthenticated"})
		default:
			c.Next()
		}
	}
}
