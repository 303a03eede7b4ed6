package sani

// Element is a renderable document element. Paragraph is the only
// implementation today; the interface exists so block-level elements can
// be added without touching the document pipeline.
type Element interface {
	Render() string
}

// Interface compliance check.
var _ Element = (*Paragraph)(nil)
