package selection

import (
	"slices"
	"strings"

	"github.com/rjkroege/textsel/dom"
)

// Selection is a two-endpoint text selection over one document layout.
//
// It is Idle until StartAt finds a character, Pending until ExtendTo
// finds a second one, and Active from then on. Highlight rectangles are
// recomputed, in document order, on every successful ExtendTo.
type Selection struct {
	doc     dom.Document
	measure Measurer

	// gen is the document generation the endpoints were taken from.
	gen uint64

	start *Endpoint
	end   *Endpoint
	rects []dom.Rect
	order *orderCache
}

// New returns an empty selection over doc that measures text with m.
func New(doc dom.Document, m Measurer) *Selection {
	return &Selection{
		doc:     doc,
		measure: m,
		gen:     doc.Generation(),
	}
}

// StartAt discards any current selection and anchors a new one at the
// character under pt. If nothing selectable is there the selection stays
// empty.
func (s *Selection) StartAt(pt, client dom.Point) {
	s.Clear()
	s.gen = s.doc.Generation()
	if ep, ok := HitTestChar(s.doc, s.measure, pt, client); ok {
		s.start = &ep
	}
}

// ExtendTo moves the free end of the selection to the character under pt
// and recomputes the highlight. It does nothing before StartAt, and a
// miss leaves the previous end and rectangles in place.
func (s *Selection) ExtendTo(pt, client dom.Point) {
	if !s.current() || s.start == nil {
		return
	}
	ep, ok := HitTestChar(s.doc, s.measure, pt, client)
	if !ok {
		return
	}
	s.end = &ep
	s.recompute()
}

// Clear empties the selection.
func (s *Selection) Clear() {
	s.start = nil
	s.end = nil
	s.rects = nil
	s.order = nil
}

// IsActive reports whether both endpoints are set.
func (s *Selection) IsActive() bool {
	return s.current() && s.start != nil && s.end != nil
}

// Rectangles returns one highlight rectangle per selected text run, in
// document order.
func (s *Selection) Rectangles() []dom.Rect {
	if !s.current() {
		return nil
	}
	return slices.Clone(s.rects)
}

// Endpoints returns the selection's endpoints in document order.
func (s *Selection) Endpoints() (first, second Endpoint, ok bool) {
	if !s.IsActive() {
		return Endpoint{}, Endpoint{}, false
	}
	first, second = s.ordered()
	return first, second, true
}

// SelectedText returns the text between the endpoints: the tail of the
// first leaf, every leaf in between and the head of the last. It reports
// false when the selection is not active.
func (s *Selection) SelectedText() (string, bool) {
	if !s.IsActive() {
		return "", false
	}
	first, second := s.ordered()

	if first.Element == second.Element {
		lo, hi := orderedIndices(first.CharIndex, second.CharIndex)
		return sliceRunes(first.Element.Text(), lo, hi), true
	}

	var sb strings.Builder
	sb.WriteString(suffixRunes(first.Element.Text(), first.CharIndex))
	for el := NextTextLeaf(first.Element, second.Element); el != nil && el != second.Element; el = NextTextLeaf(el, second.Element) {
		sb.WriteString(el.Text())
	}
	sb.WriteString(prefixRunes(second.Element.Text(), second.CharIndex))
	return sb.String(), true
}

// current reports whether the endpoints still belong to the document's
// layout. A relayout clears the selection.
func (s *Selection) current() bool {
	if g := s.doc.Generation(); g != s.gen {
		s.Clear()
		s.gen = g
		return false
	}
	return true
}

// ordered returns the endpoints in document order, refreshing the order
// cache when the pair of elements has changed.
func (s *Selection) ordered() (first, second Endpoint) {
	a, b := *s.start, *s.end
	if a.Element != b.Element {
		if _, ok := s.order.lookup(a.Element, b.Element); !ok {
			s.order = &orderCache{
				a:        a.Element,
				b:        b.Element,
				aBeforeB: IsBefore(a.Element, b.Element),
			}
		}
	}
	return normalizeEndpoints(a, b, s.order)
}

func (s *Selection) recompute() {
	s.rects = s.rects[:0]
	first, second := s.ordered()

	if first.Element == second.Element {
		s.rects = appendTextRect(s.rects, s.measure, first.Element, first.CharIndex, second.CharIndex)
		return
	}

	s.rects = appendTextRect(s.rects, s.measure, first.Element, first.CharIndex, runeCount(first.Element.Text()))
	for el := NextTextLeaf(first.Element, second.Element); el != nil && el != second.Element; el = NextTextLeaf(el, second.Element) {
		s.rects = appendTextRect(s.rects, s.measure, el, 0, runeCount(el.Text()))
	}
	s.rects = appendTextRect(s.rects, s.measure, second.Element, 0, second.CharIndex)
}
