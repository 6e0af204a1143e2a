// Package plantext adds display headings to generated plan text.
//
// The model is only asked informally for numbered sections, so the split is a plain
// prefix match over blank-line separated paragraphs. Text that does not follow the
// "I." ... "V." convention is returned as headless sections, never as an error.
package plantext

import (
	"strings"
)

const paragraphSeparator = "\n\n"

type marker struct {
	numeral string
	label   string
}

var markers = []marker{
	{"I.", "Workout Routine"},
	{"II.", "Recovery Strategies"},
	{"III.", "Nutrition and Diet"},
	{"IV.", "Motivation and Progress Tracking"},
	{"V.", "Important Considerations"},
}

// Section is one paragraph of a plan, optionally preceded by a heading.
type Section struct {
	Numeral string // e.g. "II.", empty when the paragraph has no heading
	Label   string // e.g. "Recovery Strategies"
	Body    string
}

func (s Section) HasHeading() bool {
	return s.Label != ""
}

// Heading is the rendered heading line, e.g. "II. Recovery Strategies".
func (s Section) Heading() string {
	if !s.HasHeading() {
		return ""
	}
	return s.Numeral + " " + s.Label
}

// Split cuts text on blank lines and tags paragraphs that open with a known numeral.
// Every paragraph is kept, in order, whether or not it got a heading.
func Split(text string) []Section {
	chunks := strings.Split(text, paragraphSeparator)
	sections := make([]Section, 0, len(chunks))
	for _, chunk := range chunks {
		section := Section{Body: chunk}
		for _, m := range markers {
			if strings.HasPrefix(chunk, m.numeral) {
				section.Numeral = m.numeral
				section.Label = m.label
				break
			}
		}
		sections = append(sections, section)
	}
	return sections
}

// Markdown renders the plan with "## " headings, the form used for archived copies.
func Markdown(text string) string {
	var b strings.Builder
	for i, s := range Split(text) {
		if i > 0 {
			b.WriteString(paragraphSeparator)
		}
		if s.HasHeading() {
			b.WriteString("## ")
			b.WriteString(s.Heading())
			b.WriteString(paragraphSeparator)
		}
		b.WriteString(s.Body)
	}
	return b.String()
}
