package promptcodec

import (
	"strings"

	"golang.org/x/net/html"
)

// StripMarkup reduces an HTML fragment from the rich-text editor to its
// plain text content: tags are dropped, text nodes are concatenated, and
// entities are unescaped. Plain text without markup passes through
// unchanged.
func StripMarkup(s string) string {
	if !strings.ContainsAny(s, "<&") {
		return s
	}

	var b strings.Builder
	z := html.NewTokenizer(strings.NewReader(s))
	for {
		switch z.Next() {
		case html.ErrorToken:
			// io.EOF ends the fragment; anything else means the input was
			// not parseable markup, so fall back to what was collected.
			return b.String()
		case html.TextToken:
			b.Write(z.Text())
		}
	}
}
