package sani

// Paragraph is a single paragraph of inline markup, scanned into styled
// runs at construction. The run list is immutable once built.
type Paragraph struct {
	runs []Run
}

// NewParagraph scans one paragraph of raw text.
func NewParagraph(text string) *Paragraph {
	return &Paragraph{runs: Scan(text)}
}

// Runs returns a copy of the paragraph's run list.
func (p *Paragraph) Runs() []Run {
	out := make([]Run, len(p.runs))
	copy(out, p.runs)
	return out
}

// Render implements Element.
func (p *Paragraph) Render() string {
	return RenderRuns(p.runs)
}
