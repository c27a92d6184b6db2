package security

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var ErrInvalidToken = errors.New("invalid session token")

// SessionProvider issues and verifies the signed admin-session tokens
// carried in the admin_token cookie.
type SessionProvider struct {
	secret []byte
	ttl    time.Duration
}

func NewSessionProvider(secret string, ttl time.Duration) *SessionProvider {
	return &SessionProvider{secret: []byte(secret), ttl: ttl}
}

type SessionClaims struct {
	Username string `json:"username"`
	jwt.RegisteredClaims
}

func (p *SessionProvider) Generate(username string) (string, error) {
	now := time.Now().UTC()
	claims := SessionClaims{
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   username,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(p.ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(p.secret)
}

// Parse verifies signature and expiry. Callers get the same error for
// malformed, forged and expired tokens: the gate fails closed without
// telling the client which check tripped.
func (p *SessionProvider) Parse(tokenString string) (*SessionClaims, error) {
	var claims SessionClaims
	token, err := jwt.ParseWithClaims(tokenString, &claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return p.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}
	if claims.Username == "" {
		claims.Username = claims.Subject
	}
	return &claims, nil
}

func (p *SessionProvider) TTL() time.Duration { return p.ttl }
