package hasher

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashVerifyRoundTrip(t *testing.T) {
	digest, err := Hash("s3cret")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(digest, "$argon2id$"))

	ok, err := Verify("s3cret", digest)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestHashSaltsEveryCall(t *testing.T) {
	a, err := Hash("same input")
	require.NoError(t, err)
	b, err := Hash("same input")
	require.NoError(t, err)

	assert.NotEqual(t, a, b)

	ok, err := Verify("same input", a)
	require.NoError(t, err)
	assert.True(t, ok)
	ok, err = Verify("same input", b)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestVerifyWrongPassword(t *testing.T) {
	digest, err := Hash("right")
	require.NoError(t, err)

	ok, err := Verify("wrong", digest)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestVerifyMalformedDigest(t *testing.T) {
	cases := []string{
		"",
		"not-a-digest",
		"$bcrypt$v=19$m=65536,t=1,p=4$c2FsdA$aGFzaA",
		"$argon2id$v=19$m=65536,t=1,p=4$!!!$aGFzaA",
	}
	for _, digest := range cases {
		_, err := Verify("whatever", digest)
		assert.ErrorIs(t, err, ErrMalformedDigest, "digest %q", digest)
	}
}
