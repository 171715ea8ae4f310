// Package session seals the active identity into a signed token for
// persistence and opens it again on startup. Signing gives the persisted
// session integrity: a token that fails to parse or verify is simply the
// "corrupt session" case and is discarded by the caller.
package session

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/promptlab/promptlab/internal/common"
	"github.com/promptlab/promptlab/internal/models"
)

// Claims carries the password-free identity inside the token.
type Claims struct {
	jwt.RegisteredClaims
	Email string `json:"email"`
	Name  string `json:"name"`
}

// Seal signs user into an HS256 token valid for ttl.
func Seal(user models.User, key []byte, ttl time.Duration) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
		},
		Email: user.Email,
		Name:  user.Name,
	})
	return token.SignedString(key)
}

// Open verifies a sealed token and returns the identity it carries.
// Any failure (malformed, tampered, expired, wrong algorithm) yields
// common.ErrInvalidToken; callers treat that as "no session".
func Open(tokenString string, key []byte) (models.User, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		return key, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !token.Valid {
		return models.User{}, common.ErrInvalidToken
	}

	return models.User{ID: claims.Subject, Email: claims.Email, Name: claims.Name}, nil
}
