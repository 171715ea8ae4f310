// Package optimizer expands an encoded prompt block into a fuller
// instruction. It stands in for a model-backed rewrite: the output is
// deterministic and derived purely from the input text.
package optimizer

import (
	"fmt"
	"strings"
)

const defaultRole = "an assistant"

// Enhance wraps prompt with an "act as <role>" preamble and a closing
// compliance instruction. The role is taken from the prompt's "role:" line
// when present, otherwise it defaults to "an assistant". An empty prompt
// stays empty.
func Enhance(prompt string) string {
	if prompt == "" {
		return ""
	}

	role := defaultRole
	if _, after, ok := strings.Cut(prompt, "role:"); ok {
		line, _, _ := strings.Cut(after, "\n")
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			role = trimmed
		}
	}

	return fmt.Sprintf(`I want you to act as %s.

%s

Respond according to the specification above. Be thorough and clear, and follow every constraint mentioned.`, role, prompt)
}
