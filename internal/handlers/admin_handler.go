package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/balitech/backend/internal/dtos"
	"github.com/balitech/backend/internal/middleware"
	"github.com/balitech/backend/internal/security"
)

// AdminHandler owns the session lifecycle: login, logout, the "me"
// check and CSRF token issuance.
type AdminHandler struct {
	credentials  security.CredentialStore
	sessions     *security.SessionProvider
	csrf         *security.CSRFProvider
	secureCookie bool
}

func NewAdminHandler(credentials security.CredentialStore, sessions *security.SessionProvider, csrf *security.CSRFProvider, secureCookie bool) *AdminHandler {
	return &AdminHandler{
		credentials:  credentials,
		sessions:     sessions,
		csrf:         csrf,
		secureCookie: secureCookie,
	}
}

// Login validates the credential pair and sets the session cookie.
// The failure message carries no detail about which check failed.
func (h *AdminHandler) Login(c *gin.Context) {
	var req dtos.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	identity, ok := h.credentials.Validate(req.Username, req.Password)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Invalid credentials"})
		return
	}
	token, err := h.sessions.Generate(identity)
	if err != nil {
		respondError(c, err)
		return
	}
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.SessionCookieName, token, int(h.sessions.TTL().Seconds()), "/", "", h.secureCookie, true)
	log.Info().Str("username", identity).Msg("Admin logged in")
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// Logout clears the cookie; calling it without a session is fine.
func (h *AdminHandler) Logout(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.SessionCookieName, "", -1, "/", "", h.secureCookie, true)
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// Me reports the session state without distinguishing why an invalid
// session is invalid.
func (h *AdminHandler) Me(c *gin.Context) {
	token, err := c.Cookie(middleware.SessionCookieName)
	if err != nil || token == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"loggedIn": false})
		return
	}
	claims, err := h.sessions.Parse(token)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"loggedIn": false})
		return
	}
	c.JSON(http.StatusOK, gin.H{"loggedIn": true, "username": claims.Username})
}

// CSRFToken runs behind the admin gate and returns the anti-forgery
// token derived from the caller's session. The same session always
// gets the same token, so clients may re-fetch it at any time.
func (h *AdminHandler) CSRFToken(c *gin.Context) {
	sessionToken, ok := middleware.SessionToken(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"csrfToken": h.csrf.Token(sessionToken)})
}
