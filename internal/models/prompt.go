package models

import "time"

// Prompt is a saved, titled prompt text block owned by exactly one user.
// Content is fixed at creation; only the title can change afterwards
// (a content edit produces a new Prompt rather than mutating this one).
type Prompt struct {
	// ID is assigned at creation and immutable afterwards.
	ID string `json:"id"`

	// Title is the user-chosen display name. Mutable via rename.
	Title string `json:"title"`

	// Content is the encoded prompt block (see promptcodec).
	Content string `json:"content"`

	// CreatedAt is the creation time in UTC, fixed at creation.
	CreatedAt time.Time `json:"createdAt"`

	// UserID ties the prompt to its owning account. A prompt is visible
	// only while that account's identity is active.
	UserID string `json:"userId"`
}
