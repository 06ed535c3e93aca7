package core

import "crypto/subtle"

type Authenticator struct {
	secret []byte
}

func NewAuthenticator(secret string) *Authenticator {
	return &Authenticator{secret: []byte(secret)}
}

func (a *Authenticator) Configured() bool {
	return a != nil && len(a.secret) > 0
}

// IsAuthorized fails closed: with no secret configured nothing matches,
// including the empty key.
func (a *Authenticator) IsAuthorized(key string) bool {
	if !a.Configured() {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(key), a.secret) == 1
}
