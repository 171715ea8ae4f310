package promptcodec

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/promptlab/promptlab/internal/models"
)

func TestEncode_OnlyNonEmptyFieldsEmitLines(t *testing.T) {
	got := Encode(models.PromptFields{Role: "Helper"})
	require.Equal(t, "role: Helper\n", got)
}

func TestEncode_FixedOrder(t *testing.T) {
	f := models.PromptFields{
		Role:        "writer",
		Goal:        "summarize",
		Input:       "some text",
		Context:     "a meeting",
		Constraints: "200 words",
		Tone:        "neutral",
		Format:      "markdown",
	}

	want := "role: writer\n" +
		"goal: summarize\n" +
		"input: some text\n" +
		"context: a meeting\n" +
		"constraints: 200 words\n" +
		"tone: neutral\n" +
		"format: markdown\n"
	require.Equal(t, want, Encode(f))
}

func TestEncode_StripsMarkupFromRichTextFields(t *testing.T) {
	f := models.PromptFields{
		Role:    "<b>not stripped</b>",
		Input:   "<p>Hello <b>world</b></p>",
		Context: "<ul><li>one</li><li>two</li></ul>",
	}

	got := Encode(f)
	require.Contains(t, got, "input: Hello world\n")
	require.Contains(t, got, "context: onetwo\n")
	// Only input and context come from the rich-text surface.
	require.Contains(t, got, "role: <b>not stripped</b>\n")
}

func TestEncode_Empty(t *testing.T) {
	require.Equal(t, "", Encode(models.PromptFields{}))
}

func TestDecode_Example(t *testing.T) {
	got := Decode("role: Helper\n")
	require.Equal(t, models.PromptFields{Role: "Helper"}, got)
}

func TestDecode_MissingLabelsAreEmpty(t *testing.T) {
	got := Decode("goal: greet\ntone: warm\n")
	require.Equal(t, models.PromptFields{Goal: "greet", Tone: "warm"}, got)
}

func TestDecode_FirstOccurrenceWins(t *testing.T) {
	got := Decode("role: first\nrole: second\n")
	require.Equal(t, "first", got.Role)
}

func TestDecode_EmptyContent(t *testing.T) {
	require.Equal(t, models.PromptFields{}, Decode(""))
}

func TestRoundTrip(t *testing.T) {
	// Holds for single-line, label-free, markup-free values.
	cases := []models.PromptFields{
		{},
		{Role: "Helper"},
		{Goal: "greet the user politely"},
		{Role: "writer", Goal: "summarize", Input: "raw notes", Context: "weekly sync",
			Constraints: "200 words max", Tone: "neutral", Format: "bullet list"},
		{Tone: "warm", Format: "plain text"},
	}

	for _, f := range cases {
		require.Equal(t, f, Decode(Encode(f)))
	}
}

func TestStripMarkup(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain text unchanged", "just words", "just words"},
		{"simple tags", "<p>Hello <b>world</b></p>", "Hello world"},
		{"nested lists", "<ul><li>a</li><li>b</li></ul>", "ab"},
		{"entities unescaped", "salt &amp; pepper", "salt & pepper"},
		{"empty", "", ""},
		{"tags only", "<p></p>", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, StripMarkup(tt.in))
		})
	}
}
