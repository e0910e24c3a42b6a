package token

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueVerifyRoundTrip(t *testing.T) {
	m := NewManager("test-secret", time.Hour)

	signed, err := m.Issue("a@x.com")
	require.NoError(t, err)

	subject, err := m.Verify(signed)
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", subject)
}

func TestVerifyExpired(t *testing.T) {
	m := NewManager("test-secret", -time.Minute)

	signed, err := m.Issue("a@x.com")
	require.NoError(t, err)

	_, err = m.Verify(signed)
	assert.ErrorIs(t, err, ErrExpired)
}

func TestVerifyWrongKey(t *testing.T) {
	issuer := NewManager("key-one", time.Hour)
	verifier := NewManager("key-two", time.Hour)

	signed, err := issuer.Issue("a@x.com")
	require.NoError(t, err)

	_, err = verifier.Verify(signed)
	assert.ErrorIs(t, err, ErrInvalid)
}

func TestVerifyMalformed(t *testing.T) {
	m := NewManager("test-secret", time.Hour)

	for _, tok := range []string{"", "garbage", "a.b.c"} {
		_, err := m.Verify(tok)
		assert.ErrorIs(t, err, ErrInvalid, "token %q", tok)
	}
}

func TestVerifyRejectsUnsignedAlg(t *testing.T) {
	m := NewManager("test-secret", time.Hour)

	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.RegisteredClaims{
		Subject:   "a@x.com",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})
	tok, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = m.Verify(tok)
	assert.ErrorIs(t, err, ErrInvalid)
}

func TestVerifyRejectsEmptySubject(t *testing.T) {
	m := NewManager("test-secret", time.Hour)

	claims := jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	_, err = m.Verify(signed)
	assert.ErrorIs(t, err, ErrInvalid)
}
