package selection

import (
	"unicode/utf8"

	"github.com/rjkroege/textsel/dom"
)

// Endpoint is one boundary of a selection: a text leaf and a code-point
// offset into that leaf's own text. CharIndex may equal the leaf's
// length, meaning after the last character. X is the document-space x of
// the pointer that produced the endpoint.
type Endpoint struct {
	Element   dom.Element
	CharIndex int
	X         float64
}

// HitTestChar maps a point to the character boundary under it. client is
// handed to the document untouched. It returns false when no text leaf
// can be found at or under the hit element.
func HitTestChar(doc dom.Document, m Measurer, pt, client dom.Point) (Endpoint, bool) {
	el := doc.ElementAt(pt, client)
	if el == nil {
		return Endpoint{}, false
	}

	leaf := el
	if !el.IsText() {
		leaf = ClosestTextLeaf(el, pt.X, pt.Y)
		if leaf == nil {
			leaf = FirstTextLeaf(el)
		}
		if leaf == nil {
			return Endpoint{}, false
		}
	}

	text := leaf.Text()
	if isWhitespaceOnly(text) {
		return Endpoint{Element: leaf, CharIndex: 0, X: pt.X}, true
	}

	placement := placementFor(leaf)
	idx := FindCharAtX(m, text, fontFor(leaf), pt.X-placement.X)
	return Endpoint{Element: leaf, CharIndex: idx, X: pt.X}, true
}

// FindCharAtX returns the character boundary nearest to x pixels from the
// start of text. Each prefix is measured in turn; the first character
// whose horizontal midpoint lies beyond x snaps the result to the
// boundary before it. Past the last midpoint the result is the code-point
// count. Costs one measurement per character up to the hit.
func FindCharAtX(m Measurer, text string, f dom.FontHandle, x float64) int {
	if text == "" || x <= 0 {
		return 0
	}

	prev := 0.0
	count := 0
	for i := 0; i < len(text); {
		_, size := utf8.DecodeRuneInString(text[i:])
		i += size
		count++

		width := m.Measure(text[:i], f)
		if x < (prev+width)/2 {
			return count - 1
		}
		prev = width
	}
	return count
}
