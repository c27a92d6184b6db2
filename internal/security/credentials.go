package security

import "crypto/subtle"

// CredentialStore validates an admin credential pair and returns the
// authenticated identity. The indirection keeps call sites unchanged
// if single-admin env credentials ever grow into a real user table.
type CredentialStore interface {
	Validate(username, password string) (string, bool)
}

// EnvCredentials is the single configured admin pair.
type EnvCredentials struct {
	username string
	password string
}

func NewEnvCredentials(username, password string) *EnvCredentials {
	return &EnvCredentials{username: username, password: password}
}

func (c *EnvCredentials) Validate(username, password string) (string, bool) {
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(c.username)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(password), []byte(c.password)) == 1
	if userOK && passOK {
		return c.username, true
	}
	return "", false
}
