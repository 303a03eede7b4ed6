package sani

import "strings"

// Parse segments a document into elements, one Paragraph per blank-line
// separated chunk.
func Parse(text string) []Element {
	var elements []Element
	for _, paragraph := range strings.Split(text, "\n\n") {
		elements = append(elements, NewParagraph(paragraph))
	}
	return elements
}

// Render renders each element followed by a blank line.
func Render(elements []Element) string {
	var b strings.Builder
	for _, el := range elements {
		b.WriteString(el.Render())
		b.WriteString("\n\n")
	}
	return b.String()
}
