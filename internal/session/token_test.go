package session

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/promptlab/promptlab/internal/common"
	"github.com/promptlab/promptlab/internal/models"
)

var testUser = models.User{ID: "u1", Email: "a@x.com", Name: "Alice"}

func TestSealOpen_RoundTrip(t *testing.T) {
	key := []byte("key")

	token, err := Seal(testUser, key, time.Hour)
	require.NoError(t, err)

	got, err := Open(token, key)
	require.NoError(t, err)
	require.Equal(t, testUser, got)
}

func TestOpen_Garbage(t *testing.T) {
	_, err := Open("not a token {{{", []byte("key"))
	require.ErrorIs(t, err, common.ErrInvalidToken)
}

func TestOpen_WrongKey(t *testing.T) {
	token, err := Seal(testUser, []byte("key"), time.Hour)
	require.NoError(t, err)

	_, err = Open(token, []byte("other-key"))
	require.ErrorIs(t, err, common.ErrInvalidToken)
}

func TestOpen_Expired(t *testing.T) {
	token, err := Seal(testUser, []byte("key"), -time.Minute)
	require.NoError(t, err)

	_, err = Open(token, []byte("key"))
	require.ErrorIs(t, err, common.ErrInvalidToken)
}

func TestOpen_Tampered(t *testing.T) {
	token, err := Seal(testUser, []byte("key"), time.Hour)
	require.NoError(t, err)

	tampered := token[:len(token)-2] + "xx"
	_, err = Open(tampered, []byte("key"))
	require.ErrorIs(t, err, common.ErrInvalidToken)
}
