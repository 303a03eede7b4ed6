// Package sani converts a restricted inline markup dialect (bold, italic,
// strikethrough, backslash escapes, newline folding) into ANSI-styled
// terminal output. The pipeline is Scan (raw text → styled runs) followed
// by RenderRuns (styled runs → text with SGR escape codes).
package sani

import "strings"

// Style is a bit-set of independent text attributes. The zero value means
// no styling and is the initial and terminal state of every render.
type Style uint8

// Style attributes. Each occupies one bit; the declaration order is the
// canonical order in which escape codes are emitted.
const (
	Bold Style = 1 << iota
	Italic
	Strikethrough
)

// attributes lists all attributes in canonical emission order.
var attributes = [...]Style{Bold, Italic, Strikethrough}

// SGR codes per attribute. These are fixed by contract, not configurable:
// downstream consumers assert on the exact byte sequences.
var (
	startCodes = map[Style]string{
		Bold:          "\x1b[1m",
		Italic:        "\x1b[3m",
		Strikethrough: "\x1b[9m",
	}
	endCodes = map[Style]string{
		Bold:          "\x1b[22m",
		Italic:        "\x1b[23m",
		Strikethrough: "\x1b[29m",
	}
)

// Toggle returns s with the given attribute flipped.
func (s Style) Toggle(attr Style) Style { return s ^ attr }

// Has reports whether every bit of attr is set in s.
func (s Style) Has(attr Style) bool { return s&attr == attr }

// Transition returns the escape codes that move a terminal from one style
// to another: end codes for attributes present in from but not in to,
// followed by start codes for attributes present in to but not in from,
// each group in canonical attribute order. Stale styles are closed before
// new ones open so terminals never transiently double-apply. Unchanged
// attributes emit nothing; Transition(s, s) is always "".
func Transition(from, to Style) string {
	if from == to {
		return ""
	}
	var b strings.Builder
	off := from &^ to
	on := to &^ from
	for _, attr := range attributes {
		if off.Has(attr) {
			b.WriteString(endCodes[attr])
		}
	}
	for _, attr := range attributes {
		if on.Has(attr) {
			b.WriteString(startCodes[attr])
		}
	}
	return b.String()
}
