// Package models defines the data types shared by the PromptLab stores.
package models

// User is the public, password-free projection of a registered account.
// Password material never leaves the credential store; every User handed to
// callers is already stripped.
type User struct {
	// ID is assigned at registration and immutable afterwards.
	ID string `json:"id"`

	// Email is unique across all registered accounts.
	Email string `json:"email"`

	// Name is the display name supplied at registration.
	Name string `json:"name"`
}
