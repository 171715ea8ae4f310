// Package promptcodec converts between the structured prompt form and the
// single delimited text block stored as a prompt's content.
//
// The format is line oriented: one "label: value" line per non-empty field,
// in a fixed order. Decoding takes the first occurrence of each label and
// leaves absent labels empty.
//
// The round trip Decode(Encode(f)) == f holds only for values that contain
// no newline and no other field's label pattern. That fragility is inherent
// to the stored format and is kept deliberately; changing it would orphan
// every previously saved prompt.
package promptcodec

import (
	"regexp"
	"strings"

	"github.com/promptlab/promptlab/internal/models"
)

// Field labels, in emission order.
const (
	LabelRole        = "role"
	LabelGoal        = "goal"
	LabelInput       = "input"
	LabelContext     = "context"
	LabelConstraints = "constraints"
	LabelTone        = "tone"
	LabelFormat      = "format"
)

type fieldSpec struct {
	label   string
	pattern *regexp.Regexp
	get     func(models.PromptFields) string
	set     func(*models.PromptFields, string)

	// richText marks fields fed by the rich-text surface; their values are
	// reduced to plain text before encoding.
	richText bool
}

func labelPattern(label string) *regexp.Regexp {
	// First "label: ..." occurrence, captured up to end of line.
	return regexp.MustCompile(regexp.QuoteMeta(label) + `: (.*)`)
}

var fields = []fieldSpec{
	{
		label:   LabelRole,
		pattern: labelPattern(LabelRole),
		get:     func(f models.PromptFields) string { return f.Role },
		set:     func(f *models.PromptFields, v string) { f.Role = v },
	},
	{
		label:   LabelGoal,
		pattern: labelPattern(LabelGoal),
		get:     func(f models.PromptFields) string { return f.Goal },
		set:     func(f *models.PromptFields, v string) { f.Goal = v },
	},
	{
		label:    LabelInput,
		pattern:  labelPattern(LabelInput),
		get:      func(f models.PromptFields) string { return f.Input },
		set:      func(f *models.PromptFields, v string) { f.Input = v },
		richText: true,
	},
	{
		label:    LabelContext,
		pattern:  labelPattern(LabelContext),
		get:      func(f models.PromptFields) string { return f.Context },
		set:      func(f *models.PromptFields, v string) { f.Context = v },
		richText: true,
	},
	{
		label:   LabelConstraints,
		pattern: labelPattern(LabelConstraints),
		get:     func(f models.PromptFields) string { return f.Constraints },
		set:     func(f *models.PromptFields, v string) { f.Constraints = v },
	},
	{
		label:   LabelTone,
		pattern: labelPattern(LabelTone),
		get:     func(f models.PromptFields) string { return f.Tone },
		set:     func(f *models.PromptFields, v string) { f.Tone = v },
	},
	{
		label:   LabelFormat,
		pattern: labelPattern(LabelFormat),
		get:     func(f models.PromptFields) string { return f.Format },
		set:     func(f *models.PromptFields, v string) { f.Format = v },
	},
}

// Encode renders f as the delimited content block. Empty fields emit no
// line. The input and context fields pass through StripMarkup first; a
// field counts as non-empty by its raw value, before stripping.
func Encode(f models.PromptFields) string {
	var b strings.Builder
	for _, spec := range fields {
		v := spec.get(f)
		if v == "" {
			continue
		}
		if spec.richText {
			v = StripMarkup(v)
		}
		b.WriteString(spec.label)
		b.WriteString(": ")
		b.WriteString(v)
		b.WriteByte('\n')
	}
	return b.String()
}

// Decode extracts the seven fields from content. Each field takes the first
// occurrence of its label; a label appearing twice yields only the first.
func Decode(content string) models.PromptFields {
	var f models.PromptFields
	if content == "" {
		return f
	}
	for _, spec := range fields {
		if m := spec.pattern.FindStringSubmatch(content); m != nil {
			spec.set(&f, m[1])
		}
	}
	return f
}
