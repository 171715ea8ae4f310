package cryptox

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGenerateSalt(t *testing.T) {
	a := GenerateSalt()
	b := GenerateSalt()

	require.Len(t, a, saltSize)
	require.Len(t, b, saltSize)
	require.NotEqual(t, a, b)
}

func TestVerifyPassword(t *testing.T) {
	salt := GenerateSalt()
	digest := HashPassword([]byte("pw1"), salt)

	require.True(t, VerifyPassword([]byte("pw1"), salt, digest))
	require.False(t, VerifyPassword([]byte("pw2"), salt, digest))
	require.False(t, VerifyPassword([]byte(""), salt, digest))
}

func TestHashPassword_SaltMatters(t *testing.T) {
	a := HashPassword([]byte("pw1"), GenerateSalt())
	b := HashPassword([]byte("pw1"), GenerateSalt())
	require.NotEqual(t, a, b)
}

func TestWipeByteArray(t *testing.T) {
	b := []byte("secret")
	WipeByteArray(b)
	require.Equal(t, make([]byte, len("secret")), b)

	require.NotPanics(t, func() { WipeByteArray(nil) })
}
