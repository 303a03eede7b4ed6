package sani

// Run is a contiguous span of text with the style active across all of it.
// Text is never empty and never contains a markup delimiter: Scan drops
// zero-length spans and strips delimiters while building the run list.
type Run struct {
	Text  string
	Style Style
}
