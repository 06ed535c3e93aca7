package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAuthenticator_MatchesExactSecret(t *testing.T) {
	a := NewAuthenticator("s3cret")

	assert.True(t, a.IsAuthorized("s3cret"))
	assert.False(t, a.IsAuthorized("s3cre"))
	assert.False(t, a.IsAuthorized("s3cret "))
	assert.False(t, a.IsAuthorized("S3CRET"))
	assert.False(t, a.IsAuthorized(""))
	assert.False(t, a.IsAuthorized("a much longer key than the secret"))
}

func TestAuthenticator_FailsClosedWithoutSecret(t *testing.T) {
	a := NewAuthenticator("")

	assert.False(t, a.Configured())
	for _, key := range []string{"", "anything", "\x00"} {
		assert.False(t, a.IsAuthorized(key), "key %q", key)
	}

	var nilAuth *Authenticator
	assert.False(t, nilAuth.IsAuthorized(""))
}

func TestAuthenticator_NonUTF8Input(t *testing.T) {
	a := NewAuthenticator("key")

	assert.NotPanics(t, func() {
		assert.False(t, a.IsAuthorized("\xff\xfe"))
	})
}
