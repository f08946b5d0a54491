package middleware

import (
	"net/http"
	"slices"
	"strings"

	"github.com/gin-gonic/gin"
)

type ScopeMiddleware interface {
	RequireScope(requiredScope string) gin.HandlerFunc
}

type scopeMiddleware struct {
	enforce bool
}

// RequireScope trusts requests without an X-User-Scopes header when
// enforcement is off, so the service works without a gateway in front.
func (s *scopeMiddleware) RequireScope(requiredScope string) gin.HandlerFunc {
	return func(c *gin.Context) {
		scopesHeader := c.Request.Header.Get("X-User-Scopes")
		if len(scopesHeader) == 0 {
			if s.enforce {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
					"message": "X-User-Scopes header is empty",
				})
				return
			}
			c.Next()
			return
		}
		scopes := strings.Split(scopesHeader, ",")
		if !slices.Contains(scopes, requiredScope) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"message": "Permission denied",
			})
			return
		}
		c.Next()
	}
}

func NewScopeMiddleware(enforce bool) ScopeMiddleware {
	return &scopeMiddleware{enforce: enforce}
}
