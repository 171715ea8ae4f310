package models

// PromptFields is the seven-field structured decomposition of a prompt's
// text content. Every field is optional and defaults to empty. Input and
// Context may carry markup from the rich-text surface; the codec reduces
// them to plain text on encode.
type PromptFields struct {
	Role        string
	Goal        string
	Input       string
	Context     string
	Constraints string
	Tone        string
	Format      string
}
