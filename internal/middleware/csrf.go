package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/balitech/backend/internal/security"
)

// CSRFHeader is echoed by browser clients on state-changing requests.
const CSRFHeader = "X-CSRF-Token"

type CSRFMiddleware struct {
	csrf *security.CSRFProvider
}

func NewCSRFMiddleware(csrf *security.CSRFProvider) *CSRFMiddleware {
	return &CSRFMiddleware{csrf: csrf}
}

// Guard validates the anti-forgery header on non-GET requests. It
// must run after RequireAdmin: the token is bound to the session
// cookie, so the guard recomputes it from the authenticated session
// and compares. Failure is a 403, distinct from the gate's 401.
func (m *CSRFMiddleware) Guard() gin.HandlerFunc {
	return func(c *gin.Context) {
		switch c.Request.Method {
		case http.MethodGet, http.MethodHead, http.MethodOptions:
			c.Next()
			return
		}
		sessionToken, ok := SessionToken(c)
		if !ok || !m.csrf.Verify(sessionToken, c.GetHeader(CSRFHeader)) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "Invalid or missing CSRF token"})
			return
		}
		c.Next()
	}
}
