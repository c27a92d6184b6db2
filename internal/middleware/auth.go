package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/balitech/backend/internal/security"
)

// SessionCookieName is the http-only cookie carrying the admin JWT.
const SessionCookieName = "admin_token"

const (
	ctxUsernameKey     = "admin_username"
	ctxSessionTokenKey = "admin_session_token"
)

type AuthMiddleware struct {
	sessions *security.SessionProvider
}

func NewAuthMiddleware(sessions *security.SessionProvider) *AuthMiddleware {
	return &AuthMiddleware{sessions: sessions}
}

// RequireAdmin gates admin routes on the session cookie. Missing,
// forged and expired tokens all produce the same 401 body.
func (m *AuthMiddleware) RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(SessionCookieName)
		if err != nil || token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
			return
		}
		claims, err := m.sessions.Parse(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
			return
		}
		c.Set(ctxUsernameKey, claims.Username)
		c.Set(ctxSessionTokenKey, token)
		c.Next()
	}
}

// OptionalAdmin populates the session context when a valid cookie is
// present but never rejects. Public routes that behave differently
// for admins (the job listing) use it.
func (m *AuthMiddleware) OptionalAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(SessionCookieName)
		if err == nil && token != "" {
			if claims, parseErr := m.sessions.Parse(token); parseErr == nil {
				c.Set(ctxUsernameKey, claims.Username)
				c.Set(ctxSessionTokenKey, token)
			}
		}
		c.Next()
	}
}

func AdminUsername(c *gin.Context) (string, bool) {
	username, ok := c.Get(ctxUsernameKey)
	if !ok {
		return "", false
	}
	s, ok := username.(string)
	return s, ok
}

func SessionToken(c *gin.Context) (string, bool) {
	token, ok := c.Get(ctxSessionTokenKey)
	if !ok {
		return "", false
	}
	s, ok := token.(string)
	return s, ok
}
