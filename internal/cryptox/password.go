// Package cryptox implements password handling for the credential store.
// Passwords are never stored or compared in plain text: each credential
// record keeps a random salt and an argon2id digest, and verification runs
// in constant time.
package cryptox

import (
	"crypto/rand"
	"crypto/subtle"

	"golang.org/x/crypto/argon2"
)

// Argon2id parameters shared by hashing and verification.
const (
	saltSize   = 32
	argonTime  = 1
	argonMem   = 64 * 1024
	argonLanes = 4
	digestSize = 32
)

// GenerateSalt returns a fresh random salt for a new credential record.
func GenerateSalt() []byte {
	b := make([]byte, saltSize)
	if _, err := rand.Read(b); err != nil {
		// crypto/rand does not fail on supported platforms.
		panic(err)
	}
	return b
}

// HashPassword derives the stored digest from password and salt.
func HashPassword(password, salt []byte) []byte {
	return argon2.IDKey(password, salt, argonTime, argonMem, argonLanes, digestSize)
}

// VerifyPassword reports whether password matches the stored digest.
// The comparison is constant-time.
func VerifyPassword(password, salt, digest []byte) bool {
	candidate := argon2.IDKey(password, salt, argonTime, argonMem, argonLanes, digestSize)
	return subtle.ConstantTimeCompare(candidate, digest) == 1
}

// WipeByteArray overwrites b with zeros. Useful for dropping password bytes
// from memory after use. A nil slice is a no-op.
func WipeByteArray(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
