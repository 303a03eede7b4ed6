package sani

import "unicode/utf8"

// Scan lexes one paragraph of inline markup into an ordered run list.
// It is a single left-to-right pass with one rune of lookahead, tracking
// the current style and the start of the pending unflushed span. Markup is
// never validated: unbalanced toggles simply leave their attribute active
// through the end of the paragraph.
//
// Dispatch rules:
//
//   - '\'  flushes the pending span and consumes the next rune as a
//     literal (it opens the following span). A trailing backslash with
//     nothing after it is dropped.
//   - '\n' flushes the pending span with a single space appended in place
//     of the newline.
//   - '*'  flushes, then toggles bold if doubled, italic otherwise.
//   - '~~' flushes, then toggles strikethrough. A lone '~' is ordinary
//     text: no flush, no toggle, and the rune after it is NOT consumed.
//
// Every other rune accumulates into the pending span implicitly; spans are
// only materialized at flush points.
func Scan(text string) []Run {
	var runs []Run
	var style Style
	start := 0

	for i := 0; i < len(text); {
		r, size := utf8.DecodeRuneInString(text[i:])
		switch r {
		case '\\':
			runs = appendRun(runs, text[start:i], style)
			i += size
			start = i
			if i < len(text) {
				_, esc := utf8.DecodeRuneInString(text[i:])
				i += esc
			}
		case '\n':
			runs = appendRun(runs, text[start:i]+" ", style)
			i += size
			start = i
		case '*':
			runs = appendRun(runs, text[start:i], style)
			if i+1 < len(text) && text[i+1] == '*' {
				i += 2
				style = style.Toggle(Bold)
			} else {
				i += size
				style = style.Toggle(Italic)
			}
			start = i
		case '~':
			if i+1 < len(text) && text[i+1] == '~' {
				runs = appendRun(runs, text[start:i], style)
				i += 2
				style = style.Toggle(Strikethrough)
				start = i
			} else {
				i += size
			}
		default:
			i += size
		}
	}

	if start != len(text) {
		runs = appendRun(runs, text[start:], style)
	}
	return runs
}

// appendRun appends a run unless its text is empty. Empty spans carry no
// render effect; the style transition they would represent is preserved by
// the styles of the neighboring runs.
func appendRun(runs []Run, text string, style Style) []Run {
	if text == "" {
		return runs
	}
	return append(runs, Run{Text: text, Style: style})
}
