package sani

import "strings"

// RenderRuns walks a run list and emits its text interleaved with the
// minimal escape-code transitions between consecutive styles, then closes
// whatever is still open so the terminal is never left styled. An empty
// run list renders to the empty string.
func RenderRuns(runs []Run) string {
	var b strings.Builder
	var prev Style
	for _, run := range runs {
		b.WriteString(Transition(prev, run.Style))
		b.WriteString(run.Text)
		prev = run.Style
	}
	b.WriteString(Transition(prev, 0))
	return b.String()
}
