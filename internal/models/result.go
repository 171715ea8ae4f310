package models

// Result reports the outcome of a credential operation. Validation failures
// (duplicate email, wrong password) are carried here as values rather than
// errors; Message is suitable for direct display to the user.
type Result struct {
	Success bool
	Message string
}
