// Package common defines shared sentinel errors used across PromptLab
// components. Callers should match these values with errors.Is.
package common

import "errors"

var (
	// ErrNotFound is returned by the local store when a key has no value.
	ErrNotFound = errors.New("not found")

	// ErrInvalidToken marks a persisted session token that is malformed,
	// tampered with, or expired. Callers treat it as "no session".
	ErrInvalidToken = errors.New("invalid token")
)
